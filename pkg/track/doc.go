// Package track exposes the classifier over HTTP.
//
// GET /classify returns the fields of a user agent taken from the ua query
// parameter or, when absent, from the caller's own User-Agent header.
// POST /track accepts {"event": "...", "properties": {...}} and returns the
// event with "$browser", "$browser_version", "$os" and "$device" merged into
// its properties from the submitting client. Other properties pass through
// untouched; client fields that could not be classified are removed.
//
// Responses use a {"data": ..., "error": {"code", "message"}} envelope.
package track
