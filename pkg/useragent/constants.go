package useragent

// Browser names, lower case, as stored in Profile.Name.
const (
	BrowserChrome    = "chrome"
	BrowserFirefox   = "firefox"
	BrowserIceweasel = "iceweasel"
	BrowserSafari    = "safari"
	BrowserOpera     = "opera"
	BrowserKonqueror = "konqueror"
	BrowserEdge      = "edge"
	BrowserMSIE      = "msie"
	BrowserUnknown   = "unknown"
)

// Platforms, as stored in Profile.Platform.
const (
	PlatformWindows = "win"
	PlatformMac     = "mac"
	PlatformLinux   = "linux"
	PlatformIPhone  = "iphone"
	PlatformIPad    = "ipad"
	PlatformUnknown = "unknown"
)

// Layout engines, as stored in Profile.Layout.
const (
	LayoutWebKit  = "webkit"
	LayoutGecko   = "gecko"
	LayoutPresto  = "presto"
	LayoutTrident = "trident"
	LayoutKHTML   = "khtml"
	LayoutUnknown = "unknown"
)
