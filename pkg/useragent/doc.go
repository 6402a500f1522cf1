// Package useragent turns a User-Agent header into a browser Profile: browser
// name, platform, rendering engine and version numbers.
//
// The profile is deliberately coarse. It answers the questions wiki pages ask
// about the client, chiefly which modifier keys activate HTML access keys:
//
//	p, _ := useragent.Parse(r.UserAgent())
//	if p.Is(useragent.BrowserSafari) && !p.On(useragent.PlatformWindows) && p.LayoutVersion > 526 {
//		// ...
//	}
//
// Detection uses substring keyword sets and precompiled expressions. Browser
// patterns are tried in OrderHint order so that derivatives (Edge, Opera,
// Iceweasel) win over the engines they embed.
package useragent
