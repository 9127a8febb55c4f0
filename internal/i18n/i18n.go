// Package i18n holds the Portuguese, English and Spanish copy of the site.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is a supported UI language.
type Language string

const (
	PT Language = "pt"
	EN Language = "en"
	ES Language = "es"
)

// Default is used when nothing else is known.
const Default = PT

var tables = map[Language]*table{
	PT: &pt,
	EN: &en,
	ES: &es,
}

var matcher = language.NewMatcher([]language.Tag{
	language.Portuguese,
	language.English,
	language.Spanish,
})

// Languages lists every supported language in switcher order.
func Languages() []Language { return []Language{PT, EN, ES} }

// ParseLanguage accepts a language code such as "pt", "en-US" or "es_MX".
func ParseLanguage(v string) (Language, error) {
	code := strings.ToLower(strings.TrimSpace(v))
	if i := strings.IndexAny(code, "-_."); i >= 0 {
		code = code[:i]
	}
	switch Language(code) {
	case PT, EN, ES:
		return Language(code), nil
	}
	return "", fmt.Errorf("unsupported language: %q", v)
}

// Detect picks the closest supported language for POSIX locale strings
// (LC_ALL, LANG, ...). Unmatched or empty locales give Default.
func Detect(locales ...string) Language {
	var cleaned []string
	for _, l := range locales {
		if l == "" || l == "C" || l == "POSIX" {
			continue
		}
		if i := strings.IndexAny(l, ".@"); i >= 0 {
			l = l[:i]
		}
		cleaned = append(cleaned, strings.ReplaceAll(l, "_", "-"))
	}
	if len(cleaned) == 0 {
		return Default
	}
	_, idx := language.MatchStrings(matcher, cleaned...)
	return Languages()[idx]
}

// Next returns the language after l in switcher order.
func (l Language) Next() Language {
	langs := Languages()
	for i, v := range langs {
		if v == l {
			return langs[(i+1)%len(langs)]
		}
	}
	return Default
}

// Key is the entry that names l in every table.
func (l Language) Key() Key {
	switch l {
	case EN:
		return LanguageEN
	case ES:
		return LanguageES
	default:
		return LanguagePT
	}
}

// T returns the copy for k in l, falling back to Default.
func T(l Language, k Key) string {
	if k < 0 || k >= keyCount {
		return ""
	}
	tbl, ok := tables[l]
	if !ok {
		tbl = tables[Default]
	}
	return tbl[k]
}

// Translator carries the active language. Pages receive it explicitly.
type Translator struct {
	Lang Language
}

// New returns a Translator for l; unknown languages become Default.
func New(l Language) Translator {
	if _, ok := tables[l]; !ok {
		l = Default
	}
	return Translator{Lang: l}
}

// T looks up k in the active language.
func (t Translator) T(k Key) string { return T(t.Lang, k) }

// Tf formats the copy for k with args.
func (t Translator) Tf(k Key, args ...any) string { return fmt.Sprintf(t.T(k), args...) }
