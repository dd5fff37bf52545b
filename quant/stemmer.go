package quant

// Stemmer reduces a single inflected word to its stem. Implementations are
// pure functions of their input: no shared state survives between calls, and
// the same Stemmer value may be used concurrently from multiple goroutines.
type Stemmer interface {
	// Stem returns the stem of word. Words shorter than the implementation's
	// minimum length are returned unchanged. There is no error return: every
	// input is accepted.
	Stem(word string) string

	// Language returns the language this Stemmer implements.
	Language() Language
}

// NewStemmer returns the Stemmer for lang, configured by opts. Unrecognized
// language values fall back to the no-op stemmer, the same as
// [LanguageNone]; the dispatcher never fails.
func NewStemmer(lang Language, opts ...StemmerOption) Stemmer {
	cfg := defaultStemmerConfig()
	for _, fn := range opts {
		fn(&cfg)
	}

	switch lang {
	case LanguageDanish:
		return &danishStemmer{}
	case LanguageDutch:
		return &dutchStemmer{}
	case LanguageEnglish:
		return &englishStemmer{}
	case LanguageFinnish:
		return &finnishStemmer{}
	case LanguageFrench:
		return &frenchStemmer{}
	case LanguageGerman:
		return &germanStemmer{cfg: cfg}
	case LanguageItalian:
		return &italianStemmer{}
	case LanguageNorwegian:
		return &norwegianStemmer{}
	case LanguagePortuguese:
		return &portugueseStemmer{}
	case LanguageSpanish:
		return &spanishStemmer{}
	case LanguageSwedish:
		return &swedishStemmer{}
	case LanguageRussian:
		return &russianStemmer{}
	default:
		return noOpStemmer{}
	}
}

// noOpStemmer implements [Stemmer] for [LanguageNone]: Stem always returns
// its input unchanged.
type noOpStemmer struct{}

func (noOpStemmer) Stem(word string) string { return word }
func (noOpStemmer) Language() Language       { return LanguageNone }

// preprocess runs the shared skeleton steps common to every per-language
// stemmer (spec §4.4, steps 1-2): full-width narrowing/NFC composition and
// trailing possessive trim. It returns the resulting rune buffer.
func preprocess(word string) []rune {
	word = normalizeInput(word)
	return trimPossessive([]rune(word))
}
