package quant_test

import (
	"testing"

	"go.rtnl.ai/stem/assert"
	"go.rtnl.ai/stem/quant"
)

func TestSwedishStemmer(t *testing.T) {
	testcases := map[string]string{
		"fullständigheterna": "fullständig",
		"hunden":             "hund",
	}

	s := quant.NewStemmer(quant.LanguageSwedish)
	for in, exp := range testcases {
		got := s.Stem(in)
		assert.Equal(t, exp, got, "stemming '%s': expected '%s', got '%s'", in, exp, got)
	}
}

// Step 1 suffixes added to the main table: heter, andet, aren, erns, ades, ad.
func TestSwedishMainSuffixTable(t *testing.T) {
	testcases := map[string]string{
		"kastad":       "kast",
		"möjligheter":  "möj",
		"förklarandet": "förklar",
		"städaren":     "städ",
		"vinterns":     "vint",
		"kallades":     "kall",
	}

	s := quant.NewStemmer(quant.LanguageSwedish)
	for in, exp := range testcases {
		got := s.Stem(in)
		assert.Equal(t, exp, got, "stemming '%s': expected '%s', got '%s'", in, exp, got)
	}
}
