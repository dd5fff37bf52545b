package quant

var danishVowels = []rune("aeiouyæøå")

type danishStemmer struct{}

func (danishStemmer) Language() Language { return LanguageDanish }

func (danishStemmer) Stem(word string) string {
	w := preprocess(word)
	toLowerLatin1(w)
	if len(w) < 3 {
		return string(w)
	}

	b := newWordBuffer(w)
	b.r1 = findR1(w, danishVowels)
	if b.r1 < 3 {
		b.r1 = 3
	}
	b.clamp()

	danishStep1(b)
	danishStep2(b)
	danishStep3(b)

	return string(b.w)
}

var danishMainSuffixes = []string{
	"erendes", "erende", "hedens", "endes", "heden", "heder", "heds",
	"erede", "ethed", "erens", "heder", "eren", "ered", "ende", "erne",
	"ene", "ere", "hed", "et", "es", "en", "er", "e",
}

func isDanishValidSEnding(r rune) bool {
	switch r {
	case 'b', 'c', 'd', 'f', 'g', 'h', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'r', 't', 'v', 'y', 'z':
		return true
	}
	return false
}

func danishStep1(b *wordBuffer) {
	if longest := b.longestSuffixIn(b.r1, danishMainSuffixes); longest != "" {
		b.removeSuffix(longest)
		return
	}
	if b.hasSuffix("s") && b.hasSuffixInR1("s") && b.len() >= 2 {
		if isDanishValidSEnding(b.w[b.len()-2]) {
			b.removeSuffix("s")
		}
	}
}

// danishStep2 drops the last letter of a final gd/dt/gt/kt pair in R1.
func danishStep2(b *wordBuffer) {
	pairs := []string{"gd", "dt", "gt", "kt"}
	for _, p := range pairs {
		if b.hasSuffix(p) && b.hasSuffixInR1(p) {
			b.w = b.w[:b.len()-1]
			b.clamp()
			return
		}
	}
}

// danishStep3 reduces "igst" to "ig" when in R1.
func danishStep3(b *wordBuffer) {
	if b.hasSuffix("igst") && b.hasSuffixInR1("igst") {
		b.replaceSuffix("igst", "ig")
	}
}
