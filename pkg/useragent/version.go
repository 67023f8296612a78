package useragent

import (
	"regexp"
	"strconv"
)

// versionGroup names the capture group holding "major[.minor]" in every
// version pattern.
const versionGroup = "version"

var (
	revisionVersion = regexp.MustCompile(`rv:(?P<version>\d+(\.\d+)?)`)
	chromeVersion   = regexp.MustCompile(`Chrome/(?P<version>\d+(\.\d+)?)`)
	safariVersion   = regexp.MustCompile(`Version/(?P<version>\d+(\.\d+)?)`)
)

// versionPatterns maps a browser label to the expression extracting its
// version. Several browsers share one expression because their user agents
// follow the same convention. Browsers without an entry have no version.
var versionPatterns = map[string]*regexp.Regexp{
	BrowserIEMobile:     revisionVersion,
	BrowserEdge:         regexp.MustCompile(`Edge/(?P<version>\d+(\.\d+)?)`),
	BrowserChrome:       chromeVersion,
	BrowserChromeIOS:    chromeVersion,
	BrowserSafari:       safariVersion,
	BrowserMobileSafari: safariVersion,
	BrowserOpera:        regexp.MustCompile(`(Opera|OPR)/(?P<version>\d+(\.\d+)?)`),
	BrowserFirefox:      regexp.MustCompile(`Firefox/(?P<version>\d+(\.\d+)?)`),
	BrowserKonqueror:    regexp.MustCompile(`Konqueror:(?P<version>\d+(\.\d+)?)`),
	BrowserBlackBerry:   regexp.MustCompile(`BlackBerry (?P<version>\d+(\.\d+)?)`),
	BrowserAndroid:      regexp.MustCompile(`(?i)android\s(?P<version>\d+(\.\d+)?)`),
	BrowserIE:           regexp.MustCompile(`(rv:|MSIE )(?P<version>\d+(\.\d+)?)`),
	BrowserMozilla:      revisionVersion,
}

// ExtractVersion returns the numeric version of browser found in ua.
//
// Only major and minor components are captured, so "Chrome/91.0.4472.124"
// yields 91.0 and the rest of the dotted version is dropped.
func ExtractVersion(browser, ua string) (float64, bool) {
	re, ok := versionPatterns[browser]
	if !ok {
		return 0, false
	}
	m := re.FindStringSubmatch(ua)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[re.SubexpIndex(versionGroup)], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
