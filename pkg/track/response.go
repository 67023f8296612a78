package track

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/uafields/pkg/logger"
)

// Response is the JSON envelope of every endpoint.
type Response struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, code string, err error) {
	log.DebugContext(r.Context(), "request rejected",
		logger.Status(status),
		logger.Path(r.URL.Path),
		logger.Error(err),
	)
	writeJSON(w, status, Response{Error: &ErrorDetail{Code: code, Message: err.Error()}})
}
