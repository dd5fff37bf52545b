package quant

var swedishVowels = []rune("aeiouyäåö")

type swedishStemmer struct{}

func (swedishStemmer) Language() Language { return LanguageSwedish }

func (swedishStemmer) Stem(word string) string {
	w := preprocess(word)
	toLowerLatin1(w)
	if len(w) < 3 {
		return string(w)
	}

	b := newWordBuffer(w)
	b.r1 = findR1(w, swedishVowels)
	if b.r1 < 3 {
		b.r1 = 3
	}
	b.clamp()

	swedishStep1(b)
	swedishStep2(b)
	swedishStep3(b)

	return string(b.w)
}

// swedishMainSuffixes is the Snowball Swedish step 1 suffix list (longest
// match, deleted when the match lies in R1). "et"/"ets" are handled
// separately by swedishValidETEnding and "s" by its own preceding-letter
// guard, so neither appears here.
var swedishMainSuffixes = []string{
	"heterna", "hetens", "arnas", "ernas", "ornas", "andes", "anden", "heten",
	"heter", "arens", "arna", "erna", "orna", "aste", "ade", "ande", "arne",
	"are", "aren", "andet", "ades", "ens", "erns", "ern", "het", "ast", "ad",
	"en", "ar", "er", "or", "as", "es", "at", "a", "e",
}

// isSwedishValidSEnding: a final "s" in R1 deletes only if preceded by one
// of these.
func isSwedishValidSEnding(r rune) bool {
	switch r {
	case 'b', 'c', 'd', 'f', 'g', 'h', 'j', 'k', 'l', 'm', 'n', 'o', 'p', 'r', 't', 'v', 'y':
		return true
	}
	return false
}

// swedishETNegatives: a stem ending in one of these disqualifies an
// otherwise-valid "et"/"ets" ending from deletion (spec §4.4.4, §9: bespoke,
// must be reproduced verbatim).
var swedishETNegatives = []string{
	"h", "stak", "ilit", "kvit", "ivit", "alit", "pak", "rak", "kom", "xit",
	"sit", "tit", "nit", "dit", "rit", "pit", "mit", "iet", "uit", "fab", "cit",
}

func swedishStep1(b *wordBuffer) {
	if longest := b.longestSuffixIn(b.r1, swedishMainSuffixes); longest != "" {
		b.removeSuffix(longest)
		return
	}

	switch {
	case b.hasSuffix("ets") && b.hasSuffixInR1("ets"):
		if swedishValidETEnding(b.w[:b.len()-3]) {
			b.removeSuffix("ets")
		}
		return
	case b.hasSuffix("et") && b.hasSuffixInR1("et"):
		if swedishValidETEnding(b.w[:b.len()-2]) {
			b.removeSuffix("et")
		}
		return
	}

	if b.hasSuffix("s") && b.hasSuffixInR1("s") && b.len() >= 2 {
		if isSwedishValidSEnding(b.w[b.len()-2]) {
			b.removeSuffix("s")
		}
	}
}

// swedishValidETEnding implements the bespoke validity check from spec
// §4.4.4: stem length >= 3, the letter before the vowel before "et" is not a
// vowel, and the stem doesn't end in an entry of the negative list.
func swedishValidETEnding(stem []rune) bool {
	n := len(stem)
	if n < 3 {
		return false
	}
	for _, neg := range swedishETNegatives {
		if hasRuneSuffix(stem, []rune(neg)) {
			return false
		}
	}
	i := n - 1
	for i >= 0 && !isVowelRune(stem[i], swedishVowels) {
		i--
	}
	if i <= 0 {
		return false
	}
	return !isVowelRune(stem[i-1], swedishVowels)
}

// step2 collapses a final doubled consonant of a fixed set to a single letter.
func swedishStep2(b *wordBuffer) {
	if b.len() < 2 {
		return
	}
	pairs := []string{"dd", "gd", "nn", "dt", "gt", "kt", "tt"}
	for _, p := range pairs {
		if b.hasSuffix(p) && b.hasSuffixInR1(p) {
			b.w = b.w[:b.len()-1]
			b.clamp()
			return
		}
	}
}

func swedishStep3(b *wordBuffer) {
	switch {
	case b.hasSuffix("fullt") && b.hasSuffixInR1("fullt"):
		b.replaceSuffix("fullt", "full")
	case b.hasSuffix("öst") && b.hasSuffixInR1("öst") && b.len() >= 4:
		switch b.w[b.len()-4] {
		case 'i', 'k', 'l', 'n', 'p', 'r', 't', 'u', 'v':
			b.replaceSuffix("öst", "ös")
		}
	case b.hasSuffix("lig") && b.hasSuffixInR1("lig"):
		b.removeSuffix("lig")
	case b.hasSuffix("els") && b.hasSuffixInR1("els"):
		b.removeSuffix("els")
	case b.hasSuffix("ig") && b.hasSuffixInR1("ig"):
		b.removeSuffix("ig")
	}
}
