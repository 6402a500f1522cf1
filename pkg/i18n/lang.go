package i18n

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header parsed by Negotiate.
const maxAcceptLanguageLength = 4096

// languageCode matches the codes used for message files, e.g. "en", "pt-br"
// or "zh-hant".
var languageCode = regexp.MustCompile(`^[a-z]{2,3}(?:-[a-z0-9]{2,8})*$`)

// Normalize lower-cases code and turns '_' into '-', so "pt_BR" becomes "pt-br".
func Normalize(code string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(code), "_", "-"))
}

// IsValidCode reports whether code, once normalized, looks like a language code.
func IsValidCode(code string) bool {
	code = Normalize(code)
	return len(code) <= 35 && languageCode.MatchString(code)
}

// Match returns the entry of supported that serves lang: an exact match,
// or else its base language. It returns "" when neither is supported.
func Match(lang string, supported []string) string {
	lang = Normalize(lang)
	if !IsValidCode(lang) {
		return ""
	}
	if slices.Contains(supported, lang) {
		return lang
	}
	if base, _, ok := strings.Cut(lang, "-"); ok && slices.Contains(supported, base) {
		return base
	}
	return ""
}

// Negotiate picks the supported language that best fits an Accept-Language
// header. All tags are tried for an exact match in order of preference
// before any tag falls back to its base language. It returns fallback when
// nothing fits.
func Negotiate(header string, supported []string, fallback string) string {
	if header == "" || len(supported) == 0 {
		return fallback
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	codes := make([]string, 0, len(tags))
	for _, t := range tags {
		if t == language.Und {
			continue
		}
		codes = append(codes, Normalize(t.String()))
	}

	for _, code := range codes {
		if slices.Contains(supported, code) {
			return code
		}
	}
	for _, code := range codes {
		if m := Match(code, supported); m != "" {
			return m
		}
	}
	return fallback
}
