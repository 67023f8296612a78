package track

import "errors"

var (
	// ErrInvalidEvent is returned when the request body is not a valid event document.
	ErrInvalidEvent = errors.New("invalid event payload")
	// ErrMissingEventName is returned when the event has no name.
	ErrMissingEventName = errors.New("event name is required")
)
