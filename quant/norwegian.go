package quant

var norwegianVowels = []rune("aeiouyæøå")

type norwegianStemmer struct{}

func (norwegianStemmer) Language() Language { return LanguageNorwegian }

func (norwegianStemmer) Stem(word string) string {
	w := preprocess(word)
	toLowerLatin1(w)
	if len(w) < 3 {
		return string(w)
	}

	b := newWordBuffer(w)
	b.r1 = findR1(w, norwegianVowels)
	if b.r1 < 3 {
		b.r1 = 3
	}
	b.clamp()

	norwegianStep1(b)
	norwegianStep2(b)
	norwegianStep3(b)

	return string(b.w)
}

var norwegianMainSuffixes = []string{
	"hetenes", "hetene", "hetens", "endes", "heter", "heten", "ande",
	"ende", "edes", "enes", "ene", "ens", "ast", "ers", "er", "en", "et", "a", "e",
}

func isNorwegianValidSEnding(r rune) bool {
	switch r {
	case 'b', 'c', 'd', 'f', 'g', 'h', 'j', 'l', 'm', 'n', 'o', 'p', 'r', 't', 'v', 'y', 'z':
		return true
	}
	return false
}

func norwegianStep1(b *wordBuffer) {
	if longest := b.longestSuffixIn(b.r1, norwegianMainSuffixes); longest != "" {
		b.removeSuffix(longest)
		return
	}
	if b.hasSuffix("s") && b.hasSuffixInR1("s") && b.len() >= 2 {
		if isNorwegianValidSEnding(b.w[b.len()-2]) {
			b.removeSuffix("s")
		}
	}
}

// norwegianStep2 reduces a final "ert" in R1 to "er" by dropping the "t".
func norwegianStep2(b *wordBuffer) {
	switch {
	case b.hasSuffix("ert") && b.hasSuffixInR1("ert"):
		b.w = b.w[:b.len()-1]
		b.clamp()
	}
}

func norwegianStep3(b *wordBuffer) {
	switch {
	case b.hasSuffix("leg") && b.hasSuffixInR1("leg"):
		b.removeSuffix("leg")
	case b.hasSuffix("eleg") && b.hasSuffixInR1("eleg"):
		b.removeSuffix("eleg")
	case b.hasSuffix("ig") && b.hasSuffixInR1("ig"):
		b.removeSuffix("ig")
	}
}
