package useragent

import "regexp"

// deviceRules in order of checking priority. Windows Phone user agents
// impersonate iPhone and Android, so they are recognised before both.
var deviceRules = []rule{
	{label: DeviceIPad, match: contains("iPad")},
	{label: DeviceIPod, match: contains("iPod")},
	{label: DeviceWindowsPhone, match: either(matches(windowsPhoneRe), contains("WPDesktop"))},
	{label: DeviceIPhone, match: contains("iPhone")},
	{label: DeviceBlackBerry, match: matches(blackBerryRe)},
	{label: DeviceAndroid, match: contains("Android")},
}

var windowsPhoneRe = regexp.MustCompile(`(?i)Windows Phone`)

// ClassifyDevice returns the device class of ua. The second result is false
// for desktops and anything else no rule recognises.
func ClassifyDevice(ua string) (string, bool) {
	return first(deviceRules, ua)
}
