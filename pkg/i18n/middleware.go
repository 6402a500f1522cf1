package i18n

import "net/http"

// Middleware stores the language chosen by extract in the request context
// and sets Content-Language on the response.
func Middleware(extract Extractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := extract(r)
			if lang == "" {
				lang = DefaultLanguage
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLanguage(r.Context(), lang)))
		})
	}
}
