// Package wikiurl builds and takes apart wiki URLs.
//
// It offers two percent-encoders: RawURLEncode, which leaves only
// [A-Za-z0-9-_.] literal, and WikiURLEncode, which additionally keeps ':' and
// '/' and turns spaces into underscores the way page titles appear in paths.
// GetParamValue reads a query parameter out of an arbitrary URL string.
//
// Site carries the installation paths (article path, entry-point scripts) that
// the link builder and the script resolver need:
//
//	site, err := wikiurl.New(wikiurl.Config{
//		ArticlePath: "/wiki/$1",
//		Script:      "/w/index.php",
//		LoadScript:  "/w/load.php",
//		ScriptPath:  "/w",
//		ScriptExt:   ".php",
//		MainPage:    "Main_Page",
//	})
//	site.GetURL("Help:Contents", url.Values{"action": {"edit"}})
//	// /wiki/Help:Contents?action=edit
//	site.WikiScript("api") // /w/api.php
//
// Config carries env tags and is normally loaded with pkg/config.
package wikiurl
