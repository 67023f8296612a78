package useragent

import "net/http"

// Middleware classifies the request User-Agent once and stores the result in
// the request context for downstream handlers.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithContext(r.Context(), Classify(r.UserAgent()))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
