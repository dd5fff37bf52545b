package quant_test

import (
	"testing"

	"go.rtnl.ai/stem/assert"
	"go.rtnl.ai/stem/quant"
)

func TestPortugueseStemmer(t *testing.T) {
	testcases := map[string]string{
		"qualidades": "qualid",
		"qualidade":  "qualid",
	}

	s := quant.NewStemmer(quant.LanguagePortuguese)
	for in, exp := range testcases {
		got := s.Stem(in)
		assert.Equal(t, exp, got, "stemming '%s': expected '%s', got '%s'", in, exp, got)
	}
}

func TestPortugueseNasalVowelRoundTrip(t *testing.T) {
	s := quant.NewStemmer(quant.LanguagePortuguese)
	// nasal vowels (ã/õ) must never leak the internal a~/o~ encoding
	got := s.Stem("organizações")
	for _, r := range got {
		assert.NotEqual(t, '~', r, "nasal vowel encoding leaked into output: %q", got)
	}
}
