package track

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/uafields/pkg/logger"
	"github.com/dmitrymomot/uafields/pkg/useragent"
)

// Event is an analytics event submitted to /track.
type Event struct {
	Event      string               `json:"event"`
	Properties useragent.Properties `json:"properties"`
}

const maxEventBytes = 1 << 20

type handlers struct {
	log *slog.Logger
}

// classify answers GET /classify. The ua query parameter wins over the
// request's own User-Agent header.
func (h handlers) classify(w http.ResponseWriter, r *http.Request) {
	ua := r.URL.Query().Get("ua")
	if ua == "" {
		ua = r.UserAgent()
	}
	writeJSON(w, http.StatusOK, Response{Data: useragent.Classify(ua)})
}

// track answers POST /track with the event enriched by the client fields of
// the submitting request.
func (h handlers) track(w http.ResponseWriter, r *http.Request) {
	var ev Event
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEventBytes))
	if err := dec.Decode(&ev); err != nil {
		writeError(w, r, h.log, http.StatusBadRequest, "invalid_event", errors.Join(ErrInvalidEvent, err))
		return
	}

	ev.Event = strings.TrimSpace(ev.Event)
	if ev.Event == "" {
		writeError(w, r, h.log, http.StatusBadRequest, "missing_event_name", ErrMissingEventName)
		return
	}

	res, ok := useragent.FromContext(r.Context())
	if !ok {
		res = useragent.Classify(r.UserAgent())
	}
	ev.Properties = res.Apply(ev.Properties)

	h.log.InfoContext(r.Context(), "event tracked",
		logger.Event(ev.Event),
		slog.Any("client", res),
	)
	writeJSON(w, http.StatusOK, Response{Data: ev})
}
