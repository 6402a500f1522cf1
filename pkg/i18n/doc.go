// Package i18n loads interface messages in several languages and picks the
// language of each request.
//
// Messages live in one file per language, named by language code:
//
//	messages/
//		en.json   {"@metadata": {...}, "hidetoc": "hide", "showtoc": "show"}
//		de.yaml   hidetoc: verbergen
//		qqq.json  message documentation, ignored
//
// A Catalog fills the gaps of a language from its base language and then
// from the fallback language, so a partial de-at.yaml works.
//
//	cat, err := i18n.LoadDir(ctx, "./messages")
//	if err != nil {
//		return err
//	}
//	r.Use(i18n.Middleware(cat.DefaultExtractor()))
//
//	// in a handler
//	msgs := cat.Messages(i18n.LanguageFromContext(ctx))
//
// DefaultExtractor honours ?uselang=, then the "language" cookie, then the
// Accept-Language header.
package i18n
