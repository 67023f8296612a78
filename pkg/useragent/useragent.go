package useragent

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Properties is an analytics record the classified fields are merged into.
type Properties map[string]any

// Result holds the classified fields of one user agent.
//
// An empty label means the corresponding classifier found no match. None of
// the labels defined by this package is empty, so "" is never a real value.
// BrowserVersion is nil when the browser has no version pattern or the
// pattern did not match.
type Result struct {
	Browser        string   `json:"$browser,omitempty"`
	BrowserVersion *float64 `json:"$browser_version,omitempty"`
	OS             string   `json:"$os,omitempty"`
	Device         string   `json:"$device,omitempty"`
}

// Classify runs the browser, version, OS and device classifiers against ua.
// It never fails: unknown or malformed input yields empty fields.
func Classify(ua string) Result {
	var res Result
	if browser, ok := ClassifyBrowser(ua); ok {
		res.Browser = browser
		if v, ok := ExtractVersion(browser, ua); ok {
			res.BrowserVersion = &v
		}
	}
	res.OS, _ = ClassifyOS(ua)
	res.Device, _ = ClassifyDevice(ua)
	return res
}

// Fields classifies userAgent and writes the result onto target under the
// KeyBrowser, KeyBrowserVersion, KeyOS and KeyDevice keys. A nil target is
// replaced with a new map. The returned map is target itself otherwise.
//
//	props := useragent.Fields(r.UserAgent(), event.Properties)
func Fields(userAgent string, target Properties) Properties {
	return Classify(userAgent).Apply(target)
}

// Apply writes the result onto target and returns it. Keys of fields that
// were not classified are removed so a stale value never outlives a new
// classification; every other key is left untouched.
func (r Result) Apply(target Properties) Properties {
	if target == nil {
		target = make(Properties, 4)
	}
	setOrDelete(target, KeyBrowser, r.Browser)
	if r.BrowserVersion != nil {
		target[KeyBrowserVersion] = *r.BrowserVersion
	} else {
		delete(target, KeyBrowserVersion)
	}
	setOrDelete(target, KeyOS, r.OS)
	setOrDelete(target, KeyDevice, r.Device)
	return target
}

// Properties returns the result as a fresh analytics record.
func (r Result) Properties() Properties { return r.Apply(nil) }

// Version returns the browser version and whether one was extracted.
func (r Result) Version() (float64, bool) {
	if r.BrowserVersion == nil {
		return 0, false
	}
	return *r.BrowserVersion, true
}

// IsMobile reports whether a device class was recognised.
func (r Result) IsMobile() bool { return r.Device != "" }

// IsEmpty reports whether nothing at all was classified.
func (r Result) IsEmpty() bool {
	return r.Browser == "" && r.BrowserVersion == nil && r.OS == "" && r.Device == ""
}

// String returns a short human-readable identifier for logs and dashboards,
// e.g. "Chrome 91 (Windows)" or "Mobile Safari (iOS, iPhone)".
// Placeholders are for display only and never appear in Result fields.
func (r Result) String() string {
	if r.IsEmpty() {
		return "Unknown client"
	}

	browser := r.Browser
	if browser == "" {
		browser = "Unknown browser"
	}
	if v, ok := r.Version(); ok {
		browser += " " + strconv.FormatFloat(v, 'f', -1, 64)
	}

	os := r.OS
	if os == "" {
		os = "Unknown OS"
	}
	if r.Device == "" {
		return fmt.Sprintf("%s (%s)", browser, os)
	}
	return fmt.Sprintf("%s (%s, %s)", browser, os, r.Device)
}

// LogValue implements slog.LogValuer. Only classified fields are emitted.
func (r Result) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	if r.Browser != "" {
		attrs = append(attrs, slog.String("browser", r.Browser))
	}
	if v, ok := r.Version(); ok {
		attrs = append(attrs, slog.Float64("browser_version", v))
	}
	if r.OS != "" {
		attrs = append(attrs, slog.String("os", r.OS))
	}
	if r.Device != "" {
		attrs = append(attrs, slog.String("device", r.Device))
	}
	return slog.GroupValue(attrs...)
}

func setOrDelete(target Properties, key, value string) {
	if value == "" {
		delete(target, key)
		return
	}
	target[key] = value
}
