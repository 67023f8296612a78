package useragent

import (
	"regexp"
	"strings"
)

// matcher reports whether a user agent string satisfies a rule predicate.
type matcher func(ua string) bool

// rule pairs a predicate with the label it yields. Tables of rules are
// evaluated top to bottom and the first match wins.
type rule struct {
	label string
	match matcher
}

// first returns the label of the first matching rule.
func first(rules []rule, ua string) (string, bool) {
	for _, r := range rules {
		if r.match(ua) {
			return r.label, true
		}
	}
	return "", false
}

// contains matches when any of the tokens is a substring of the UA.
// Matching is case-sensitive.
func contains(tokens ...string) matcher {
	return func(ua string) bool {
		for _, t := range tokens {
			if strings.Contains(ua, t) {
				return true
			}
		}
		return false
	}
}

// matches wraps a compiled regular expression.
func matches(re *regexp.Regexp) matcher {
	return re.MatchString
}

// all matches when every predicate matches.
func all(ms ...matcher) matcher {
	return func(ua string) bool {
		for _, m := range ms {
			if !m(ua) {
				return false
			}
		}
		return true
	}
}

// either matches when at least one predicate matches.
func either(ms ...matcher) matcher {
	return func(ua string) bool {
		for _, m := range ms {
			if m(ua) {
				return true
			}
		}
		return false
	}
}

// BlackBerry devices announce themselves with any of these tokens in
// arbitrary case, so the same expression serves all three classifiers.
var blackBerryRe = regexp.MustCompile(`(?i)(BlackBerry|PlayBook|BB10)`)
