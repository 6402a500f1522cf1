package useragent

// iOS devices announce "like Mac OS X", so they are checked before the Mac set.
var (
	iPhoneKeywords  = newKeywordSet("iphone", "ipod")
	iPadKeywords    = newKeywordSet("ipad")
	windowsKeywords = newKeywordSet("windows", "win32", "win64")
	macKeywords     = newKeywordSet("macintosh", "mac os x", "mac_powerpc")
	linuxKeywords   = newKeywordSet("linux", "x11", "ubuntu", "debian", "fedora", "cros")
)

// ParsePlatform returns the platform of a lower-cased user agent string.
func ParsePlatform(lowerUA string) string {
	switch {
	case lowerUA == "":
		return PlatformUnknown
	case iPhoneKeywords.contains(lowerUA):
		return PlatformIPhone
	case iPadKeywords.contains(lowerUA):
		return PlatformIPad
	case windowsKeywords.contains(lowerUA):
		return PlatformWindows
	case macKeywords.contains(lowerUA):
		return PlatformMac
	case linuxKeywords.contains(lowerUA):
		return PlatformLinux
	default:
		return PlatformUnknown
	}
}
