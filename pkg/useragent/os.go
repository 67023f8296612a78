package useragent

import "regexp"

var windowsRe = regexp.MustCompile(`(?i)Windows`)

// osRules in order of checking priority. iOS user agents say
// "like Mac OS X" and Android ones say "Linux", so both are checked before
// the desktop markers.
var osRules = []rule{
	{label: OSWindowsPhone, match: all(matches(windowsRe), contains("Phone", "WPDesktop"))},
	{label: OSWindows, match: matches(windowsRe)},
	{label: OSiOS, match: contains("iPhone", "iPad", "iPod")},
	{label: OSAndroid, match: contains("Android")},
	{label: OSBlackBerry, match: matches(blackBerryRe)},
	{label: OSMacOS, match: matches(regexp.MustCompile(`(?i)Mac`))},
	{label: OSLinux, match: contains("Linux")},
}

// ClassifyOS returns the operating system of ua. The second result is false
// when no rule matched.
func ClassifyOS(ua string) (string, bool) {
	return first(osRules, ua)
}
