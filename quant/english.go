package quant

var englishVowels = []rune("aeiouy")

// englishR1Prefixes set R1 to the prefix length outright instead of running
// findR1, per spec §3.
var englishR1Prefixes = []string{
	"gener", "commun", "arsen", "past", "univers", "later", "emerg", "organ",
}

// englishInvariantExceptions return the word unchanged: stemming would
// otherwise mangle a word that isn't actually inflected.
var englishInvariantExceptions = map[string]bool{
	"sky": true, "news": true, "howe": true, "atlas": true,
	"cosmos": true, "bias": true, "andes": true,
}

// englishReplacementExceptions are literal replacements applied before any
// region is computed.
var englishReplacementExceptions = map[string]string{
	"skis": "ski", "skies": "sky", "dying": "die", "lying": "lie",
	"tying": "tie", "idly": "idl", "gently": "gentl", "ugly": "ugli",
	"early": "earli", "only": "onli", "singly": "singl",
}

// englishShortWordExceptions: step 1b's ed/edly/ing/ingly deletion is
// skipped if performing it would produce one of these stems.
var englishShortWordExceptions = map[string]bool{
	"inn": true, "out": true, "cann": true, "herr": true, "even": true, "earr": true,
}

// english1bLiteralExceptions pass through step 1b untouched.
var english1bLiteralExceptions = map[string]bool{
	"proceed": true, "succeed": true, "exceed": true,
	"proceededly": true, "succeededly": true, "exceededly": true,
}

type englishStemmer struct{}

func (englishStemmer) Language() Language { return LanguageEnglish }

func (englishStemmer) Stem(word string) string {
	w := preprocess(word)
	toLowerLatin1(w)

	if len(w) < 3 {
		return string(w)
	}
	s := string(w)
	if englishInvariantExceptions[s] {
		return s
	}
	if r, ok := englishReplacementExceptions[s]; ok {
		return r
	}

	hashY(w, englishVowels)
	b := newWordBuffer(w)
	b.r1 = englishFindR1(w)
	b.r2 = findR2(w, englishVowels, b.r1)

	englishStep1a(b)
	if !english1bLiteralExceptions[string(unhashedCopy(b.w))] {
		englishStep1b(b)
	}
	englishStep1c(b)
	englishStep2(b)
	englishStep3(b)
	englishStep4(b)
	englishStep5a(b)
	englishStep5b(b)

	unhashY(b.w)
	return string(b.w)
}

func unhashedCopy(w []rune) []rune {
	out := make([]rune, len(w))
	copy(out, w)
	unhashY(out)
	return out
}

func englishFindR1(w []rune) int {
	s := string(w)
	for _, p := range englishR1Prefixes {
		if len(s) >= len(p) && s[:len(p)] == p {
			return len(p)
		}
	}
	return findR1(w, englishVowels)
}

// step1a: sses->ss; ied/ies->i (or ie for short stems); trailing s deleted
// under the distance-2 vowel rule.
func englishStep1a(b *wordBuffer) {
	switch {
	case b.hasSuffix("sses"):
		b.replaceSuffix("sses", "ss")
	case b.hasSuffix("ied") || b.hasSuffix("ies"):
		repl := "i"
		if b.len()-3 <= 1 {
			repl = "ie"
		}
		if b.hasSuffix("ied") {
			b.replaceSuffix("ied", repl)
		} else {
			b.replaceSuffix("ies", repl)
		}
	case b.hasSuffix("s") && !b.hasSuffix("ss"):
		n := b.len()
		if n >= 3 {
			preceding := b.w[n-2]
			hasVowel := false
			for _, r := range b.w[:n-2] {
				if isVowelRune(r, englishVowels) {
					hasVowel = true
					break
				}
			}
			if hasVowel && preceding != 's' && preceding != 'u' {
				b.removeSuffix("s")
			}
		}
	}
}

// step1b: eed/eedly reduce to ee in R1; ed/edly/ing/ingly drop when preceded
// by a vowel, then the stem is patched (append e / undouble / append e for
// short words).
func englishStep1b(b *wordBuffer) {
	switch {
	case b.hasSuffix("eedly"):
		if b.hasSuffixInR1("eedly") {
			b.replaceSuffix("eedly", "ee")
		}
		return
	case b.hasSuffix("eed"):
		if b.hasSuffixInR1("eed") {
			b.replaceSuffix("eed", "ee")
		}
		return
	}

	var suffix string
	switch {
	case b.hasSuffix("ingly"):
		suffix = "ingly"
	case b.hasSuffix("edly"):
		suffix = "edly"
	case b.hasSuffix("ing"):
		suffix = "ing"
	case b.hasSuffix("ed"):
		suffix = "ed"
	default:
		return
	}

	n := b.len()
	sufLen := len([]rune(suffix))
	stem := b.w[:n-sufLen]
	hasVowel := false
	for _, r := range stem {
		if isVowelRune(r, englishVowels) {
			hasVowel = true
			break
		}
	}
	if !hasVowel {
		return
	}
	if englishShortWordExceptions[string(unhashedCopy(stem))] {
		return
	}

	// R1/R2 are positions in the original word: an appended "e" must not fall
	// inside a region that began beyond the end of the shortened stem.
	r1, r2 := b.r1, b.r2
	b.removeSuffix(suffix)
	switch {
	case b.hasSuffix("at") || b.hasSuffix("bl") || b.hasSuffix("iz"):
		b.appendSuffix("e")
	case endsDoubledConsonant(b.w):
		b.w = b.w[:b.len()-1]
		b.clamp()
	case isEnglishShortWord(b):
		b.appendSuffix("e")
	}
	b.r1, b.r2 = min(r1, b.len()), min(r2, b.len())
}

var doubledConsonants = []string{"bb", "dd", "ff", "gg", "mm", "nn", "pp", "rr", "tt"}

func endsDoubledConsonant(w []rune) bool {
	if len(w) < 2 {
		return false
	}
	tail := string(w[len(w)-2:])
	for _, d := range doubledConsonants {
		if tail == d {
			return true
		}
	}
	return false
}

// step1c: trailing y/Y -> i if preceded by a consonant that isn't the first letter.
func englishStep1c(b *wordBuffer) {
	n := b.len()
	if n < 2 {
		return
	}
	last := b.w[n-1]
	if last != 'y' && last != 'Y' {
		return
	}
	if !isVowelRune(b.w[n-2], englishVowels) && n-2 > 0 {
		b.w[n-1] = 'i'
		b.clamp()
	}
}

type englishRule struct {
	suffix string
	repl   string
	region func(b *wordBuffer) int
}

func (b *wordBuffer) applyLongestMatch(rules []englishRule) bool {
	best := -1
	for i, r := range rules {
		if b.hasSuffix(r.suffix) {
			if best == -1 || len(rules[i].suffix) > len(rules[best].suffix) {
				best = i
			}
		}
	}
	if best == -1 {
		return false
	}
	r := rules[best]
	region := b.r1
	if r.region != nil {
		region = r.region(b)
	}
	if !b.hasSuffixInRegion(region, r.suffix) {
		return false
	}
	if r.suffix == "li" {
		n := b.len()
		if n < 3 {
			return false
		}
		switch b.w[n-3] {
		case 'c', 'd', 'e', 'g', 'h', 'k', 'm', 'n', 'r', 't':
		default:
			return false
		}
	}
	b.replaceSuffix(r.suffix, r.repl)
	return true
}

func englishStep2(b *wordBuffer) {
	b.applyLongestMatch([]englishRule{
		{"ational", "ate", nil}, {"tional", "tion", nil},
		{"enci", "ence", nil}, {"anci", "ance", nil},
		{"izer", "ize", nil}, {"ization", "ize", nil},
		{"abli", "able", nil}, {"alli", "al", nil},
		{"entli", "ent", nil}, {"eli", "e", nil},
		{"ousli", "ous", nil}, {"fulness", "ful", nil},
		{"ousness", "ous", nil}, {"iveness", "ive", nil},
		{"iviti", "ive", nil}, {"biliti", "ble", nil},
		{"bli", "ble", nil}, {"ogi", "og", nil},
		{"fulli", "ful", nil}, {"lessli", "less", nil},
		{"li", "", nil},
	})
}

func englishStep3(b *wordBuffer) {
	b.applyLongestMatch([]englishRule{
		{"ational", "ate", nil}, {"tional", "tion", nil},
		{"alize", "al", nil}, {"icate", "ic", nil},
		{"iciti", "ic", nil}, {"ical", "ic", nil},
		{"ful", "", nil}, {"ness", "", nil},
		{"ative", "", func(b *wordBuffer) int { return b.r2 }},
	})
}

func englishStep4(b *wordBuffer) {
	rules := []englishRule{
		{"al", "", nil}, {"ance", "", nil}, {"ence", "", nil},
		{"er", "", nil}, {"ic", "", nil}, {"able", "", nil},
		{"ible", "", nil}, {"ant", "", nil}, {"ement", "", nil},
		{"ment", "", nil}, {"ent", "", nil}, {"ism", "", nil},
		{"ate", "", nil}, {"iti", "", nil}, {"ous", "", nil},
		{"ive", "", nil}, {"ize", "", nil},
	}
	for i := range rules {
		rules[i].region = func(b *wordBuffer) int { return b.r2 }
	}
	best := -1
	for i, r := range rules {
		if b.hasSuffix(r.suffix) {
			if best == -1 || len(rules[i].suffix) > len(rules[best].suffix) {
				best = i
			}
		}
	}
	if best >= 0 && b.hasSuffixInR2(rules[best].suffix) {
		b.removeSuffix(rules[best].suffix)
		return
	}
	if b.hasSuffix("ion") && b.hasSuffixInR2("ion") {
		n := b.len()
		if n >= 4 && (b.w[n-4] == 's' || b.w[n-4] == 't') {
			b.removeSuffix("ion")
		}
	}
}

func englishStep5a(b *wordBuffer) {
	if b.len() == 0 || b.w[b.len()-1] != 'e' {
		return
	}
	if b.hasSuffixInR2("e") {
		b.removeSuffix("e")
		return
	}
	if b.hasSuffixInR1("e") {
		stem := b.w[:b.len()-1]
		if !endsShortSyllableEnglish(stem) {
			b.removeSuffix("e")
		}
	}
}

func englishStep5b(b *wordBuffer) {
	if b.hasSuffix("ll") && b.hasSuffixInR2("ll") {
		b.w = b.w[:b.len()-1]
		b.clamp()
	}
}

// endsShortSyllableEnglish implements spec §4.4.1's "short syllable"
// definition directly over a rune slice (used on intermediate stems, not
// just the full buffer).
func endsShortSyllableEnglish(w []rune) bool {
	n := len(w)
	if n == 2 {
		return isVowelRune(w[0], englishVowels) && !isVowelRune(w[1], englishVowels)
	}
	if string(unhashedCopy(w)) == "past" {
		return true
	}
	if n < 3 {
		return false
	}
	c, v, f := w[n-3], w[n-2], w[n-1]
	if isVowelRune(c, englishVowels) || !isVowelRune(v, englishVowels) || isVowelRune(f, englishVowels) {
		return false
	}
	return f != 'w' && f != 'x' && f != lowerYHash && f != upperYHash
}

func isEnglishShortWord(b *wordBuffer) bool {
	return endsShortSyllableEnglish(b.w) && b.r1 == b.len()
}
