package useragent

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var leadingNumber = regexp.MustCompile(`^\d+(?:\.\d+)?`)

// Profile is the browser description used to pick client-side behaviour,
// such as the modifier keys that trigger access keys.
type Profile struct {
	UserAgent string
	Name      string
	Platform  string
	Layout    string
	Version   string

	// VersionNumber is the leading "major.minor" of Version, 0 when unknown.
	VersionNumber float64
	// VersionBase is the major version as a decimal string, "" when unknown.
	// It is compared as a string, so "10" > "1" but "2" > "10".
	VersionBase string
	// LayoutVersion is the engine build, e.g. 537 for AppleWebKit/537.36.
	LayoutVersion int
}

// Parse builds a Profile from a User-Agent header.
// The returned profile is usable even when err is not nil.
func Parse(ua string) (Profile, error) {
	if strings.TrimSpace(ua) == "" {
		return unknownProfile(ua), ErrEmptyUserAgent
	}

	lowerUA := strings.ToLower(ua)
	browser := ParseBrowser(lowerUA)
	layout, layoutVersion := ParseLayout(lowerUA)

	p := Profile{
		UserAgent:     ua,
		Name:          browser.Name,
		Platform:      ParsePlatform(lowerUA),
		Layout:        layout,
		LayoutVersion: layoutVersion,
	}
	p.setVersion(browser.Version)

	if p.Name == BrowserUnknown && p.Platform == PlatformUnknown {
		return p, ErrMalformedUserAgent
	}
	return p, nil
}

// MustParse is Parse without the error; unrecognised input yields an unknown profile.
func MustParse(ua string) Profile {
	p, _ := Parse(ua)
	return p
}

func unknownProfile(ua string) Profile {
	return Profile{
		UserAgent: ua,
		Name:      BrowserUnknown,
		Platform:  PlatformUnknown,
		Layout:    LayoutUnknown,
	}
}

func (p *Profile) setVersion(version string) {
	p.Version = version
	num := leadingNumber.FindString(version)
	if num == "" {
		return
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return
	}
	p.VersionNumber = f
	p.VersionBase = strconv.Itoa(int(math.Floor(f)))
}

func (p Profile) Is(name string) bool {
	return p.Name == name
}

func (p Profile) On(platform string) bool {
	return p.Platform == platform
}

// String returns a short label such as "Firefox 24.0 (linux)".
func (p Profile) String() string {
	name := "Unknown"
	if p.Name != BrowserUnknown && p.Name != "" {
		name = cases.Title(language.English).String(p.Name)
	}
	if p.Version == "" {
		return fmt.Sprintf("%s (%s)", name, p.Platform)
	}
	return fmt.Sprintf("%s %s (%s)", name, p.Version, p.Platform)
}
