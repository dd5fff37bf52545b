package quant_test

import (
	"testing"

	"go.rtnl.ai/stem/assert"
	"go.rtnl.ai/stem/quant"
)

func TestGermanStemmer(t *testing.T) {
	testcases := map[string]string{
		"lachen":            "lach",
		"rufen":             "ruf",
		"bringen":           "bring",
		"kinder":            "kind",
		"blumen":            "blum",
		"tische":            "tisch",
		"spielen":           "spiel",
		"aufeinanderfolgen": "aufeinanderfolg",
	}

	s := quant.NewStemmer(quant.LanguageGerman)
	for in, exp := range testcases {
		got := s.Stem(in)
		assert.Equal(t, exp, got, "stemming '%s': expected '%s', got '%s'", in, exp, got)
	}
}

// Step 1 endings beyond the em/er/en/es/e/s cascade: erinnen/erin (feminine
// agent nouns), ern (dative plural), and lns/ln ("-eln" infinitives).
func TestGermanStep1Endings(t *testing.T) {
	testcases := map[string]string{
		"lehrerin":    "lehr",
		"lehrerinnen": "lehr",
		"kindern":     "kind",
		"sammeln":     "sammel",
		"segelns":     "segel",
	}

	s := quant.NewStemmer(quant.LanguageGerman)
	for in, exp := range testcases {
		got := s.Stem(in)
		assert.Equal(t, exp, got, "stemming '%s': expected '%s', got '%s'", in, exp, got)
	}
}

// The "em" deletion in step 1 must not fire on the whole word "system".
func TestGermanSystemGuard(t *testing.T) {
	s := quant.NewStemmer(quant.LanguageGerman)
	got := s.Stem("system")
	assert.Equal(t, "system", got, "'system' must not be stemmed to 'syst': got '%s'", got)
}

// Step 2's "et"-ending deletion uses a valid-preceding-letter set that
// excludes b/h (so those stay unstemmed) but includes s (so those stem).
func TestGermanETEndingValidChars(t *testing.T) {
	s := quant.NewStemmer(quant.LanguageGerman)

	for _, w := range []string{"labet", "lahet"} {
		got := s.Stem(w)
		assert.Equal(t, w, got, "'%s' must not be stemmed: got '%s'", w, got)
	}

	got := s.Stem("laset")
	assert.Equal(t, "las", got, "stemming 'laset': expected 'las', got '%s'", got)
}

func TestGermanUmlautTransliteration(t *testing.T) {
	s := quant.NewStemmer(quant.LanguageGerman)
	// default config transliterates ae/oe/ue and ß before stemming
	got := s.Stem("straße")
	assert.Equal(t, "strass", got, "ß must transliterate to ss: got '%s'", got)
}

func TestGermanWithoutUmlautTransliteration(t *testing.T) {
	s := quant.NewStemmer(quant.LanguageGerman, quant.WithTransliterateUmlauts(false))
	// with transliteration disabled, ae/oe/ue are left alone but ß->ss still happens
	got := s.Stem("straße")
	assert.Equal(t, "strass", got, "ß->ss must still happen with transliteration disabled: got '%s'", got)
}
