package i18n

import "context"

type languageContextKey struct{}

// WithLanguage stores lang in ctx.
func WithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, languageContextKey{}, lang)
}

// LanguageFromContext returns the language stored by Middleware, or
// DefaultLanguage.
func LanguageFromContext(ctx context.Context) string {
	if lang, _ := ctx.Value(languageContextKey{}).(string); lang != "" {
		return lang
	}
	return DefaultLanguage
}
