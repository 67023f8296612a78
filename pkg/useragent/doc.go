// Package useragent extracts analytics fields from HTTP User-Agent strings.
//
// It identifies:
//   - Browser family: Chrome, Safari, Mobile Safari, Firefox, Opera
//   - Browser version: numeric major.minor, e.g. 91 or 14.1
//   - Operating system: Windows, Windows Phone, iOS, Android, Mac OS X
//   - Device class: iPhone, iPad, iPod Touch, Android, BlackBerry
//
// Classification is a pure function of the input string. There is no state,
// no I/O and no error path: a string no rule recognises simply leaves the
// corresponding field empty. Callers decide what an empty field means for
// them; the package never substitutes "unknown".
//
// # Architecture
//
// Each classifier is an ordered table of (predicate, label) rules evaluated
// top to bottom, first match wins. The order is part of the behaviour: real
// user agents carry the tokens of the browsers they imitate, so specific
// markers (" OPR/", "Edge", "CriOS") sit above the broad ones ("Chrome",
// "Safari", "Gecko") that would otherwise shadow them. Browser versions are
// looked up by browser label in a map of pre-compiled expressions.
//
//	┌────────────┐  UA string ┌───────────────┐  label ┌──────────────┐
//	│  Classify  │──────────▶│  browser.go   │──────▶│  version.go  │──┐
//	└────────────┘            └───────────────┘        └──────────────┘  │
//	      │                   ┌───────────────┐                          │
//	      ├──────────────────▶│   os.go       │──────────────────────────┼──► Result
//	      │                   └───────────────┘                          │
//	      │                   ┌───────────────┐                          │
//	      └──────────────────▶│  device.go    │──────────────────────────┘
//	                          └───────────────┘
//
// All tables are built once at package initialisation and never modified,
// so every function is safe for concurrent use without locking.
//
// # Usage
//
// Classify a request:
//
//	res := useragent.Classify(r.UserAgent())
//	if res.Browser == "" {
//	    // unrecognised browser
//	}
//
// Merge the fields into an analytics event under the "$browser",
// "$browser_version", "$os" and "$device" keys, leaving other properties
// untouched:
//
//	props := useragent.Fields(r.UserAgent(), event.Properties)
//
// Or let the middleware classify once per request:
//
//	http.Handle("/", useragent.Middleware(yourHandler))
//
//	res, _ := useragent.FromContext(r.Context())
//
// # Versions
//
// Versions are parsed as floating point numbers from the major and minor
// components only: "Chrome/91.0.4472.124" yields 91 and "Version/10.1.2"
// yields 10.1. Downstream consumers depend on this numeric form.
package useragent
