package useragent

import "regexp"

var (
	operaMarker  = contains(" OPR/", "Opera")
	mobileSafari = regexp.MustCompile(`iPhone.+Safari`)
)

// browserRules in order of checking priority. Many user agents carry tokens
// of several browsers (every Chromium browser says "Safari", every WebKit
// browser says "Gecko"), so vendor specific markers come before the broader
// ones that would otherwise shadow them.
var browserRules = []rule{
	{label: BrowserOperaMini, match: all(operaMarker, contains("Mini"))},
	{label: BrowserOpera, match: operaMarker},
	{label: BrowserBlackBerry, match: matches(blackBerryRe)},
	{label: BrowserIEMobile, match: contains("IEMobile", "WPDesktop")},
	{label: BrowserEdge, match: contains("Edge")},
	{label: BrowserFacebook, match: contains("FBIOS")},
	{label: BrowserChrome, match: contains("Chrome")},
	{label: BrowserChromeIOS, match: contains("CriOS")},
	{label: BrowserMobileSafari, match: all(matches(mobileSafari), contains("Mobile"))},
	{label: BrowserSafari, match: contains("Safari")},
	{label: BrowserAndroid, match: contains("Android")},
	{label: BrowserKonqueror, match: contains("Konqueror")},
	{label: BrowserFirefox, match: contains("Firefox")},
	{label: BrowserIE, match: contains("MSIE", "Trident/")},
	{label: BrowserMozilla, match: contains("Gecko")},
}

// ClassifyBrowser returns the browser family of ua. The second result is
// false when no rule matched.
func ClassifyBrowser(ua string) (string, bool) {
	return first(browserRules, ua)
}
