package quant_test

import (
	"testing"

	"go.rtnl.ai/stem/assert"
	"go.rtnl.ai/stem/quant"
)

// ############################################################################
// Universal properties (spec §8)
// ############################################################################

var allLanguages = []quant.Language{
	quant.LanguageNone,
	quant.LanguageDanish,
	quant.LanguageDutch,
	quant.LanguageEnglish,
	quant.LanguageFinnish,
	quant.LanguageFrench,
	quant.LanguageGerman,
	quant.LanguageItalian,
	quant.LanguageNorwegian,
	quant.LanguagePortuguese,
	quant.LanguageSpanish,
	quant.LanguageSwedish,
	quant.LanguageRussian,
}

// hashSentinels mirrors hash.go's reserved C0 range; none of these may ever
// appear in a Stem result (spec §8 property 4).
var hashSentinels = []rune{0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E}

func TestNoneIdentity(t *testing.T) {
	s := quant.NewStemmer(quant.LanguageNone)
	for _, w := range []string{"running", "", "café", "ПРИВЕТ"} {
		assert.Equal(t, w, s.Stem(w), "none stemmer must return input unchanged")
	}
}

func TestIdempotenceOnShortWords(t *testing.T) {
	short := []string{"a", "an", "it", "ox", "go"}
	for _, lang := range allLanguages {
		s := quant.NewStemmer(lang)
		for _, w := range short {
			got := s.Stem(w)
			assert.Equal(t, w, got, "expected short word '%s' unchanged for %s", w, lang)
		}
	}
}

func TestHashEscape(t *testing.T) {
	words := map[quant.Language][]string{
		quant.LanguageEnglish: {"ability", "beauty", "yellow", "playing"},
		quant.LanguageDutch:   {"mooie", "fietsen", "typen"},
		quant.LanguageGerman:  {"bäume", "läufer", "typen"},
		quant.LanguageFrench:  {"naïve", "payer", "quitter", "employer"},
		quant.LanguageItalian: {"quando", "piuttosto", "studio"},
	}
	for lang, ws := range words {
		s := quant.NewStemmer(lang)
		for _, w := range ws {
			got := s.Stem(w)
			for _, r := range got {
				for _, h := range hashSentinels {
					assert.NotEqual(t, h, r, "hash sentinel escaped for %s stemming '%s': %q", lang, w, got)
				}
			}
		}
	}
}

func TestPurity(t *testing.T) {
	for _, lang := range allLanguages {
		s := quant.NewStemmer(lang)
		for _, w := range []string{"testing", "running", "consignment"} {
			first := s.Stem(w)
			second := s.Stem(w)
			assert.Equal(t, first, second, "repeated Stem calls must be pure for %s", lang)
		}
	}
}

func TestLengthNonIncrease(t *testing.T) {
	words := []string{"running", "consignment", "generate", "relational", "testing", "happiness"}
	for _, lang := range allLanguages {
		s := quant.NewStemmer(lang)
		for _, w := range words {
			got := s.Stem(w)
			assert.LessEqual(t, len([]rune(w))+2, len([]rune(got)), "stem of '%s' grew more than the allowed slack for %s", w, lang)
		}
	}
}

func TestPossessiveStripping(t *testing.T) {
	s := quant.NewStemmer(quant.LanguageEnglish)
	base := "cats"
	assert.Equal(t, s.Stem(base), s.Stem(base+"'s"), "'s possessive must strip before stemming")
	assert.Equal(t, s.Stem(base), s.Stem(base+"'"), "bare apostrophe must strip before stemming")
}

func TestFullWidthNormalization(t *testing.T) {
	s := quant.NewStemmer(quant.LanguageEnglish)
	narrow := s.Stem("running")
	fullWidth := "ｒｕｎｎｉｎｇ" // fullwidth "running"
	assert.Equal(t, narrow, s.Stem(fullWidth), "full-width input must normalize to the same stem")
}

// ############################################################################
// Concrete end-to-end scenarios (spec §8)
// ############################################################################

func TestEndToEndScenarios(t *testing.T) {
	testcases := []struct {
		Lang     quant.Language
		Input    string
		Expected string
	}{
		{quant.LanguageEnglish, "consignment", "consign"},
		{quant.LanguageEnglish, "generate", "generat"},
		{quant.LanguageEnglish, "relational", "relat"},
		{quant.LanguageGerman, "aufeinanderfolgen", "aufeinanderfolg"},
		{quant.LanguagePortuguese, "qualidades", "qualid"},
		{quant.LanguageSwedish, "fullständigheterna", "fullständig"},
	}

	for _, tc := range testcases {
		s := quant.NewStemmer(tc.Lang)
		got := s.Stem(tc.Input)
		assert.Equal(t, tc.Expected, got, "stemming '%s' (%s): expected '%s', got '%s'", tc.Input, tc.Lang, tc.Expected, got)
	}
}

// ############################################################################
// English exception invariants and literal replacements (spec §8 properties 9, 10)
// ############################################################################

func TestEnglishInvariantExceptions(t *testing.T) {
	s := quant.NewStemmer(quant.LanguageEnglish)
	for _, w := range []string{"sky", "news", "howe", "atlas", "cosmos", "bias", "andes"} {
		assert.Equal(t, w, s.Stem(w), "'%s' must be returned unchanged", w)
	}
}

func TestEnglishLiteralReplacements(t *testing.T) {
	testcases := map[string]string{
		"skis":   "ski",
		"skies":  "sky",
		"dying":  "die",
		"lying":  "lie",
		"tying":  "tie",
		"idly":   "idl",
		"gently": "gentl",
		"ugly":   "ugli",
		"early":  "earli",
		"only":   "onli",
		"singly": "singl",
	}
	s := quant.NewStemmer(quant.LanguageEnglish)
	for in, exp := range testcases {
		got := s.Stem(in)
		assert.Equal(t, exp, got, "stemming '%s': expected '%s', got '%s'", in, exp, got)
	}
}

// ############################################################################
// Dispatcher
// ############################################################################

func TestNewStemmerUnrecognizedLanguage(t *testing.T) {
	s := quant.NewStemmer(quant.Language(9999))
	assert.Equal(t, quant.LanguageNone, s.Language(), "unrecognized language must fall back to the no-op stemmer")
	assert.Equal(t, "word", s.Stem("word"), "no-op fallback must return input unchanged")
}

// ############################################################################
// Benchmarking
// ############################################################################

func BenchmarkStem(b *testing.B) {
	words := map[quant.Language]string{
		quant.LanguageEnglish:    "consignment",
		quant.LanguageGerman:     "aufeinanderfolgen",
		quant.LanguagePortuguese: "qualidades",
		quant.LanguageSwedish:    "fullständigheterna",
		quant.LanguageFrench:     "naïvement",
		quant.LanguageItalian:    "piuttosto",
		quant.LanguageSpanish:    "organizaciones",
		quant.LanguageDutch:      "fietsen",
		quant.LanguageDanish:     "hunden",
		quant.LanguageNorwegian:  "hundene",
		quant.LanguageFinnish:    "taloissani",
		quant.LanguageRussian:    "привет",
	}
	for lang, w := range words {
		s := quant.NewStemmer(lang)
		b.Run(lang.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = s.Stem(w)
			}
		})
	}
}

func TestLanguageStringAndParse(t *testing.T) {
	for _, lang := range allLanguages {
		name := lang.String()
		parsed, ok := quant.ParseLanguage(name)
		assert.True(t, ok, "expected %s to parse back from its own name", lang)
		assert.Equal(t, lang, parsed, "round-tripping %s through String/ParseLanguage", lang)
	}

	if _, ok := quant.ParseLanguage("klingon"); ok {
		t.Fatalf("expected ParseLanguage to reject an unsupported language name")
	}
}
