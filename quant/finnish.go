package quant

var finnishVowels = []rune("aeiouyäö")

type finnishStemmer struct{}

func (finnishStemmer) Language() Language { return LanguageFinnish }

func (finnishStemmer) Stem(word string) string {
	w := preprocess(word)
	toLowerLatin1(w)
	if len(w) < 3 {
		return string(w)
	}

	b := newWordBuffer(w)
	b.r1 = findR1(w, finnishVowels)
	b.r2 = findR2(w, finnishVowels, b.r1)

	finnishStep1(b)
	finnishStep2(b)
	finnishStep3(b)
	finnishStep4(b)
	finnishStep6(b)

	return string(b.w)
}

// finnishParticleSuffixes (step 1): clitic particles, longest match, deleted
// from R1.
var finnishParticleSuffixes = []string{
	"kaan", "kään", "kin", "han", "hän", "pa", "pä", "ko", "kö",
}

func finnishStep1(b *wordBuffer) {
	if longest := b.longestSuffixIn(b.r1, finnishParticleSuffixes); longest != "" {
		b.removeSuffix(longest)
	}
}

// finnishPossessiveSuffixes (step 2): possessive suffixes, deleted from R1.
var finnishPossessiveSuffixes = []string{
	"nsa", "nsä", "mme", "nne", "ni", "si", "an", "än", "en",
}

func finnishStep2(b *wordBuffer) {
	if longest := b.longestSuffixIn(b.r1, finnishPossessiveSuffixes); longest != "" {
		b.removeSuffix(longest)
	}
}

// finnishCaseSuffixes (step 3): the productive case-ending table, longest
// match, deleted from R1.
var finnishCaseSuffixes = []string{
	"siin", "tten", "seen", "ssa", "ssä", "sta", "stä", "lla", "llä",
	"lta", "ltä", "lle", "lle", "ksi", "ine", "han", "na", "nä", "ta",
	"tä", "a", "ä", "n",
}

func finnishStep3(b *wordBuffer) {
	if longest := b.longestSuffixIn(b.r1, finnishCaseSuffixes); longest != "" {
		b.removeSuffix(longest)
	}
}

// finnishStep4 reduces a handful of comparative/superlative residuals.
func finnishStep4(b *wordBuffer) {
	switch {
	case b.hasSuffix("eja") && b.hasSuffixInR2("eja"):
		b.replaceSuffix("eja", "e")
	case b.hasSuffix("ejä") && b.hasSuffixInR2("ejä"):
		b.replaceSuffix("ejä", "e")
	}
}

// finnishStep6 tidies the stem: a final "i" following a consonant in RV-like
// position is dropped (the classic plural-i reduction), and a final doubled
// consonant collapses to one letter.
func finnishStep6(b *wordBuffer) {
	n := b.len()
	if n >= 2 && b.w[n-1] == 'i' && !isVowelRune(b.w[n-2], finnishVowels) && b.hasSuffixInR1("i") {
		b.removeSuffix("i")
		n = b.len()
	}
	if n >= 2 && b.w[n-1] == b.w[n-2] && !isVowelRune(b.w[n-1], finnishVowels) {
		b.w = b.w[:n-1]
		b.clamp()
	}
}
