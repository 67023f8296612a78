package useragent

// Property keys written by Fields and Result.Apply. The names are shared with
// downstream analytics pipelines and must not change.
const (
	KeyBrowser        = "$browser"
	KeyBrowserVersion = "$browser_version"
	KeyOS             = "$os"
	KeyDevice         = "$device"
)

// Browser family labels
const (
	// BrowserOpera identifies Opera (Presto and Chromium based)
	BrowserOpera = "Opera"

	// BrowserOperaMini identifies the Opera Mini proxy browser
	BrowserOperaMini = "Opera Mini"

	// BrowserBlackBerry identifies the stock BlackBerry / PlayBook / BB10 browser
	BrowserBlackBerry = "BlackBerry"

	// BrowserIEMobile identifies Internet Explorer on Windows Phone
	BrowserIEMobile = "Internet Explorer Mobile"

	// BrowserEdge identifies legacy (EdgeHTML) Microsoft Edge
	BrowserEdge = "Microsoft Edge"

	// BrowserFacebook identifies the Facebook in-app browser on iOS
	BrowserFacebook = "Facebook Mobile"

	// BrowserChrome identifies Google Chrome
	BrowserChrome = "Chrome"

	// BrowserChromeIOS identifies Chrome on iOS
	BrowserChromeIOS = "Chrome iOS"

	// BrowserMobileSafari identifies Safari on iPhone
	BrowserMobileSafari = "Mobile Safari"

	// BrowserSafari identifies desktop Safari
	BrowserSafari = "Safari"

	// BrowserAndroid identifies the stock Android browser
	BrowserAndroid = "Android Mobile"

	// BrowserKonqueror identifies KDE Konqueror
	BrowserKonqueror = "Konqueror"

	// BrowserFirefox identifies Mozilla Firefox
	BrowserFirefox = "Firefox"

	// BrowserIE identifies desktop Internet Explorer
	BrowserIE = "Internet Explorer"

	// BrowserMozilla is the catch-all for other Gecko based browsers
	BrowserMozilla = "Mozilla"
)

// Operating system labels
const (
	OSWindows      = "Windows"
	OSWindowsPhone = "Windows Phone"
	OSiOS          = "iOS"
	OSAndroid      = "Android"
	OSBlackBerry   = "BlackBerry"
	OSMacOS        = "Mac OS X"
	OSLinux        = "Linux"
)

// Device labels. No label means a desktop or otherwise unclassified device.
const (
	DeviceIPad         = "iPad"
	DeviceIPod         = "iPod Touch"
	DeviceWindowsPhone = "Windows Phone"
	DeviceIPhone       = "iPhone"
	DeviceBlackBerry   = "BlackBerry"
	DeviceAndroid      = "Android"
)
