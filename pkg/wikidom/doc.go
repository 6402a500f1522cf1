// Package wikidom post-processes rendered wiki pages before they are sent to
// the browser. It wraps a goquery document and provides the page glue skins
// rely on:
//
//   - Content: the element holding the article text, found through a list of
//     skin-specific fallbacks ending at <body>.
//   - InstallTOCToggle and ToggleTOC: the "[hide]/[show]" link on the table of
//     contents. The collapsed state lives in the mw_hidetoc cookie (see the
//     TOCCookie constants); callers read and write it.
//   - AddPortletLink: inserts a link into a navigation menu such as the
//     toolbox, creating the list when the menu is empty.
//   - UpdateTooltipAccessKeys and AccessKeyPrefix: rewrite "[e]" style hints in
//     titles to the modifier keys of the requesting browser.
//   - AddCSS and Notify: inject a style block or a notice box.
//
// Typical use in a handler:
//
//	page, err := wikidom.Parse(src,
//		wikidom.WithProfile(useragent.MustParse(r.UserAgent())),
//	)
//	if err != nil {
//		return err
//	}
//	page.InstallTOCToggle(hidden)
//	page.UpdateTooltipAccessKeys()
//	return page.Render(w)
package wikidom
