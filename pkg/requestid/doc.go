// Package requestid propagates request correlation identifiers.
//
// Middleware reuses a client supplied "X-Request-ID" header when it is at
// most 128 characters of [a-zA-Z0-9_-], and otherwise generates a UUIDv4.
// The id is stored in the request context, echoed in the response header and
// can be added to every log record with LoggerExtractor:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	http.Handle("/", requestid.Middleware(handler))
package requestid
