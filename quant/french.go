package quant

var frenchVowels = []rune("aeiouyâàëéêèïîôûù")

type frenchStemmer struct{}

func (frenchStemmer) Language() Language { return LanguageFrench }

func (frenchStemmer) Stem(word string) string {
	w := preprocess(word)
	toLowerLatin1(w)
	if len(w) < 3 {
		return string(w)
	}

	w = splitFrenchDiaeresis(w)
	hashYUI(w, frenchVowels)

	b := newWordBuffer(w)
	b.r1 = findR1(w, frenchVowels)
	b.r2 = findR2(w, frenchVowels, b.r1)
	b.rv = findFrenchRV(w, frenchVowels)

	altered := frenchStep1(b)
	if !altered {
		if !frenchStep2a(b) {
			frenchStep2b(b)
		}
	}
	frenchStep3(b)
	frenchStep4(b)
	frenchStep5(b)
	frenchStep6(b)

	unhashYUI(b.w)
	return string(joinFrenchDiaeresis(b.w))
}

var frenchStandardDeleteR2 = []string{
	"iqUes", "ances", "ismes", "ables", "istes",
	"ance", "iqUe", "isme", "able", "iste", "eux",
}

func frenchStep1(b *wordBuffer) bool {
	if longest := b.longestSuffixIn(b.r2, frenchStandardDeleteR2); longest != "" {
		b.removeSuffix(longest)
		return true
	}

	switch {
	case matchAndRemove(b, b.r2, []string{"atrices", "ateurs", "ations", "atrice", "ateur", "ation"}):
		if b.hasSuffix("ic") && b.hasSuffixInR2("ic") {
			b.removeSuffix("ic")
		} else if b.hasSuffix("ic") {
			b.replaceSuffix("ic", "iqU")
		}
		return true

	case matchAndReplace(b, b.r2, "logies", "log"), matchAndReplace(b, b.r2, "logie", "log"):
		return true
	case matchAndReplace(b, b.r2, "usions", "u"), matchAndReplace(b, b.r2, "utions", "u"),
		matchAndReplace(b, b.r2, "usion", "u"), matchAndReplace(b, b.r2, "ution", "u"):
		return true
	case matchAndReplace(b, b.r2, "ences", "ent"), matchAndReplace(b, b.r2, "ence", "ent"):
		return true

	case b.hasSuffix("ements") && b.hasSuffixInRV("ements"):
		b.removeSuffix("ements")
		frenchEmentFollowup(b)
		return true
	case b.hasSuffix("ement") && b.hasSuffixInRV("ement"):
		b.removeSuffix("ement")
		frenchEmentFollowup(b)
		return true

	case b.hasSuffix("ités") && b.hasSuffixInR2("ités"):
		b.removeSuffix("ités")
		frenchIteFollowup(b)
		return true
	case b.hasSuffix("ité") && b.hasSuffixInR2("ité"):
		b.removeSuffix("ité")
		frenchIteFollowup(b)
		return true

	case matchAndRemove(b, b.r2, []string{"ivement", "ivements"}):
		return true
	case b.hasSuffix("ives") && b.hasSuffixInR2("ives"):
		b.removeSuffix("ives")
		frenchIfFollowup(b)
		return true
	case b.hasSuffix("ive") && b.hasSuffixInR2("ive"):
		b.removeSuffix("ive")
		frenchIfFollowup(b)
		return true
	case b.hasSuffix("ifs") && b.hasSuffixInR2("ifs"):
		b.removeSuffix("ifs")
		frenchIfFollowup(b)
		return true
	case b.hasSuffix("if") && b.hasSuffixInR2("if"):
		b.removeSuffix("if")
		frenchIfFollowup(b)
		return true

	case matchAndReplace(b, 0, "eaux", "eau"):
		return true
	case b.hasSuffix("aux") && b.hasSuffixInR1("aux"):
		b.replaceSuffix("aux", "al")
		return true

	case b.hasSuffix("euses") && b.hasSuffixInR2("euses"):
		b.removeSuffix("euses")
		return true
	case b.hasSuffix("euse") && b.hasSuffixInR2("euse"):
		b.removeSuffix("euse")
		return true
	case b.hasSuffix("euses") && b.hasSuffixInR1("euses"):
		b.replaceSuffix("euses", "eux")
		return true
	case b.hasSuffix("euse") && b.hasSuffixInR1("euse"):
		b.replaceSuffix("euse", "eux")
		return true

	case b.hasSuffix("issements") && b.hasSuffixInR1("issements") && frenchPrecededByNonVowel(b, "issements"):
		b.removeSuffix("issements")
		return true
	case b.hasSuffix("issement") && b.hasSuffixInR1("issement") && frenchPrecededByNonVowel(b, "issement"):
		b.removeSuffix("issement")
		return true

	case b.hasSuffix("amment") && b.hasSuffixInRV("amment"):
		b.replaceSuffix("amment", "ant")
		return true
	case b.hasSuffix("emment") && b.hasSuffixInRV("emment"):
		b.replaceSuffix("emment", "ent")
		return true

	case b.hasSuffix("ments") && b.hasSuffixInRV("ments") && frenchPrecededByVowel(b, "ments"):
		b.removeSuffix("ments")
		return true
	case b.hasSuffix("ment") && b.hasSuffixInRV("ment") && frenchPrecededByVowel(b, "ment"):
		b.removeSuffix("ment")
		return true
	}

	return false
}

func matchAndRemove(b *wordBuffer, region int, suffixes []string) bool {
	longest := b.longestSuffixIn(region, suffixes)
	if longest == "" {
		return false
	}
	b.removeSuffix(longest)
	return true
}

func matchAndReplace(b *wordBuffer, region int, suffix, repl string) bool {
	if !b.hasSuffix(suffix) || !b.hasSuffixInRegion(region, suffix) {
		return false
	}
	b.replaceSuffix(suffix, repl)
	return true
}

func frenchPrecededByVowel(b *wordBuffer, suffix string) bool {
	n := b.len() - len([]rune(suffix))
	return n > 0 && isVowelRune(b.w[n-1], frenchVowels)
}

func frenchPrecededByNonVowel(b *wordBuffer, suffix string) bool {
	n := b.len() - len([]rune(suffix))
	return n > 0 && !isVowelRune(b.w[n-1], frenchVowels)
}

func frenchEmentFollowup(b *wordBuffer) {
	switch {
	case b.hasSuffix("iv") && b.hasSuffixInR2("iv"):
		b.removeSuffix("iv")
		if b.hasSuffix("at") && b.hasSuffixInR2("at") {
			b.removeSuffix("at")
		}
	case b.hasSuffix("eus") && b.hasSuffixInR2("eus"):
		b.removeSuffix("eus")
	case b.hasSuffix("eus") && b.hasSuffixInR1("eus"):
		b.replaceSuffix("eus", "e")
	case b.hasSuffix("abl") && b.hasSuffixInR2("abl"):
		b.removeSuffix("abl")
	case b.hasSuffix("iqU") && b.hasSuffixInR2("iqU"):
		b.removeSuffix("iqU")
	case b.hasSuffix("ièr") && b.hasSuffixInRV("ièr"):
		b.replaceSuffix("ièr", "i")
	case b.hasSuffix("Ièr") && b.hasSuffixInRV("Ièr"):
		b.replaceSuffix("Ièr", "i")
	}
}

func frenchIteFollowup(b *wordBuffer) {
	switch {
	case b.hasSuffix("abil") && b.hasSuffixInR2("abil"):
		b.removeSuffix("abil")
	case b.hasSuffix("abil"):
		b.replaceSuffix("abil", "abl")
	case b.hasSuffix("ic") && b.hasSuffixInR2("ic"):
		b.removeSuffix("ic")
	case b.hasSuffix("ic"):
		b.replaceSuffix("ic", "iqU")
	case b.hasSuffix("iv") && b.hasSuffixInR2("iv"):
		b.removeSuffix("iv")
	}
}

func frenchIfFollowup(b *wordBuffer) {
	switch {
	case b.hasSuffix("icat") && b.hasSuffixInR2("icat"):
		b.removeSuffix("icat")
	case b.hasSuffix("icat"):
		b.replaceSuffix("icat", "iqU")
	case b.hasSuffix("at") && b.hasSuffixInR2("at"):
		b.removeSuffix("at")
		if b.hasSuffix("ic") && b.hasSuffixInR2("ic") {
			b.removeSuffix("ic")
		} else if b.hasSuffix("ic") {
			b.replaceSuffix("ic", "iqU")
		}
	}
}

// frenchVerbEndingsGroup2a: the second/third-conjugation verb suffixes
// (step 2a), deleted from RV when preceded by a non-vowel.
var frenchVerbEndingsGroup2a = []string{
	"iraIent", "issaIent", "issantes", "irions", "issions", "irions",
	"issante", "issants", "issant", "issiez", "issons", "irent", "irait",
	"issais", "issait", "issent", "issez", "îmes", "îtes", "irai", "iras",
	"irez", "isses", "ies", "ira", "ir", "is", "it", "ie", "i",
}

func frenchStep2a(b *wordBuffer) bool {
	longest := b.longestSuffixIn(b.rv, frenchVerbEndingsGroup2a)
	if longest == "" {
		return false
	}
	if !frenchPrecededByNonVowel(b, longest) {
		return false
	}
	b.removeSuffix(longest)
	return true
}

// frenchVerbEndingsGroup2b: the first-conjugation/auxiliary verb suffixes
// (step 2b), applied only when 2a found nothing.
var frenchVerbEndingsGroup2b = []string{
	"eraIent", "assions", "eriez", "erions", "assent", "assiez",
	"èrent", "erai", "eras", "erez", "âmes", "âtes", "ante", "ants",
	"asse", "ant", "ait", "ais", "aIent", "a", "ai", "as", "ât", "é", "ée", "ées", "és", "er",
}

func frenchStep2b(b *wordBuffer) bool {
	if b.hasSuffix("e") && b.hasSuffixInRV("e") {
		b.removeSuffix("e")
		return true
	}
	longest := b.longestSuffixIn(b.rv, frenchVerbEndingsGroup2b)
	if longest == "" {
		return false
	}
	b.removeSuffix(longest)
	return true
}

// frenchStep3 replaces a final hashed Y or I with a plain "i", and a final ç
// with c.
func frenchStep3(b *wordBuffer) {
	if b.len() == 0 {
		return
	}
	switch b.w[b.len()-1] {
	case upperYHash, lowerYHash:
		b.w[b.len()-1] = 'i'
	case upperIHash, lowerIHash:
		b.w[b.len()-1] = 'i'
	case 'ç':
		b.w[b.len()-1] = 'c'
	}
}

// frenchStep4 deletes a final "s" not preceded by a, i, o, u, è or s. It
// removes no other residual ending; a final "e" is left in place.
func frenchStep4(b *wordBuffer) {
	if b.len() >= 2 && b.w[b.len()-1] == 's' {
		p := b.w[b.len()-2]
		switch p {
		case 'a', 'i', 'o', 'u', 'è', 's':
		default:
			b.removeSuffix("s")
		}
	}
}

func frenchStep5(b *wordBuffer) {
	pairs := []string{"enn", "onn", "ett", "ell", "eill"}
	for _, p := range pairs {
		if b.hasSuffix(p) {
			b.w = b.w[:b.len()-1]
			b.clamp()
			return
		}
	}
}

func frenchStep6(b *wordBuffer) {
	if b.len() == 0 {
		return
	}
	if b.w[b.len()-1] == 'é' || b.w[b.len()-1] == 'è' {
		b.w[b.len()-1] = 'e'
	}
}
