package quant_test

import (
	"testing"

	"go.rtnl.ai/stem/assert"
	"go.rtnl.ai/stem/quant"
)

func TestEnglishStemmer(t *testing.T) {
	testcases := map[string]string{
		"caresses":    "caress",
		"ponies":      "poni",
		"ties":        "tie",
		"caress":      "caress",
		"cats":        "cat",
		"feed":        "feed",
		"agreed":      "agre",
		"plastered":   "plaster",
		"bled":        "bled",
		"motoring":    "motor",
		"sing":        "sing",
		"conflated":   "conflat",
		"troubled":    "troubl",
		"sized":       "size",
		"hopping":     "hop",
		"tanned":      "tan",
		"falling":     "fall",
		"hissing":     "hiss",
		"fizzed":      "fizz",
		"failing":     "fail",
		"filing":      "file",
		"happy":       "happi",
		"sky":         "sky",
		"relational":  "relat",
		"conditional": "condit",
		"rational":    "ration",
		"hopeful":     "hope",
		"goodness":    "good",
		"revival":     "reviv",
		"allowance":   "allow",
		"inference":   "infer",
		"airliner":    "airlin",
		"gyroscopic":  "gyroscop",
		"adjustable":  "adjust",
		"irritant":    "irrit",
		"replacement": "replac",
		"adjustment":  "adjust",
		"dependent":   "depend",
		"adoption":    "adopt",
		"activate":    "activ",
		"effective":   "effect",
		"bowdlerize":  "bowdler",
		"probate":     "probat",
		"rate":        "rate",
		"cease":       "ceas",
		"consignment": "consign",
		"generate":    "generat",
	}

	s := quant.NewStemmer(quant.LanguageEnglish)
	for in, exp := range testcases {
		got := s.Stem(in)
		assert.Equal(t, exp, got, "stemming '%s': expected '%s', got '%s'", in, exp, got)
	}
}
