package quant

import "slices"

// Language identifies which per-language stemming algorithm a [Stemmer] runs.
// The zero value, [LanguageNone], selects the no-op stemmer.
type Language uint16

const (
	// LanguageNone selects the no-op stemmer: Stem returns its input unchanged.
	LanguageNone Language = iota
	LanguageDanish
	LanguageDutch
	LanguageEnglish
	LanguageFinnish
	LanguageFrench
	LanguageGerman
	LanguageItalian
	LanguageNorwegian
	LanguagePortuguese
	LanguageSpanish
	LanguageSwedish
	LanguageRussian
)

var languageNames = [...]string{
	LanguageNone:       "none",
	LanguageDanish:     "danish",
	LanguageDutch:      "dutch",
	LanguageEnglish:    "english",
	LanguageFinnish:    "finnish",
	LanguageFrench:     "french",
	LanguageGerman:     "german",
	LanguageItalian:    "italian",
	LanguageNorwegian:  "norwegian",
	LanguagePortuguese: "portuguese",
	LanguageSpanish:    "spanish",
	LanguageSwedish:    "swedish",
	LanguageRussian:    "russian",
}

// String returns the lowercase name of the language, or "unknown" for any
// value outside the enumeration.
func (l Language) String() string {
	if int(l) < len(languageNames) {
		return languageNames[l]
	}
	return "unknown"
}

// In returns true if langs contains l.
func (l Language) In(langs ...Language) bool {
	return slices.Contains(langs, l)
}

// ParseLanguage returns the [Language] matching name (case-sensitive, as
// returned by [Language.String]), or [LanguageNone] and false if name does
// not match a supported language.
func ParseLanguage(name string) (lang Language, ok bool) {
	for l, n := range languageNames {
		if n == name {
			return Language(l), true
		}
	}
	return LanguageNone, false
}
