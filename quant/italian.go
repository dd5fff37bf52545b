package quant

var italianVowels = []rune("aeiouàèìòù")

type italianStemmer struct{}

func (italianStemmer) Language() Language { return LanguageItalian }

func (italianStemmer) Stem(word string) string {
	w := preprocess(word)
	toLowerLatin1(w)
	if len(w) < 3 {
		return string(w)
	}

	hashUI(w, italianVowels)

	b := newWordBuffer(w)
	b.r1 = findR1(w, italianVowels)
	b.r2 = findR2(w, italianVowels, b.r1)
	b.rv = findRomanceRV(w, italianVowels)

	italianStep0(b)
	altered := italianStep1(b)
	if !altered {
		italianStep2(b)
	}
	italianStep3a(b)
	italianStep3b(b)

	unhashUI(b.w)
	return string(b.w)
}

var italianAttachedPronouns = []string{
	"gliela", "gliele", "glieli", "glielo", "gliene", "sene",
	"mela", "mele", "meli", "melo", "mene", "tela", "tele", "teli", "telo", "tene",
	"cela", "cele", "celi", "celo", "cene", "vela", "vele", "veli", "velo", "vene",
	"gli", "ci", "la", "le", "li", "lo", "mi", "ne", "si", "ti", "vi",
}

var italianGerundParticipleEndings = []string{"ando", "endo", "ar", "er", "ir", "are", "ere", "ire"}

func italianStep0(b *wordBuffer) {
	pron := b.longestSuffixIn(b.rv, italianAttachedPronouns)
	if pron == "" {
		return
	}
	stem := b.w[:b.len()-len([]rune(pron))]
	stemBuf := &wordBuffer{w: stem, r1: b.r1, r2: b.r2, rv: b.rv}
	stemBuf.clamp()
	if ending := stemBuf.longestSuffixIn(0, italianGerundParticipleEndings); ending != "" {
		b.removeSuffix(pron)
	}
}

var italianStandardDeleteR2 = []string{
	"abilità", "ivamente", "osamente", "icamente", "amente",
	"amento", "amenti", "imento", "imenti",
	"atrice", "atrici", "abile", "abili", "ibile", "ibili",
	"ismo", "ismi", "ista", "iste", "isti", "istà", "istè", "istì",
	"ante", "anti", "anza", "anze", "iche", "ichi", "ico", "ici", "ica",
	"oso", "osa", "osi", "ose", "mente",
}

func italianStep1(b *wordBuffer) bool {
	if longest := b.longestSuffixIn(b.r2, italianStandardDeleteR2); longest != "" {
		b.removeSuffix(longest)
		return true
	}

	switch {
	case b.hasSuffix("azione") && b.hasSuffixInR2("azione"):
		b.removeSuffix("azione")
		if b.hasSuffix("ic") && b.hasSuffixInR2("ic") {
			b.removeSuffix("ic")
		}
		return true
	case b.hasSuffix("azioni") && b.hasSuffixInR2("azioni"):
		b.removeSuffix("azioni")
		if b.hasSuffix("ic") && b.hasSuffixInR2("ic") {
			b.removeSuffix("ic")
		}
		return true
	case b.hasSuffix("atore") && b.hasSuffixInR2("atore"):
		b.removeSuffix("atore")
		return true
	case b.hasSuffix("atori") && b.hasSuffixInR2("atori"):
		b.removeSuffix("atori")
		return true

	case b.hasSuffix("logia") && b.hasSuffixInR2("logia"):
		b.replaceSuffix("logia", "log")
		return true
	case b.hasSuffix("logie") && b.hasSuffixInR2("logie"):
		b.replaceSuffix("logie", "log")
		return true
	case b.hasSuffix("uzione") && b.hasSuffixInR2("uzione"):
		b.replaceSuffix("uzione", "u")
		return true
	case b.hasSuffix("uzioni") && b.hasSuffixInR2("uzioni"):
		b.replaceSuffix("uzioni", "u")
		return true
	case b.hasSuffix("enza") && b.hasSuffixInR2("enza"):
		b.replaceSuffix("enza", "ente")
		return true
	case b.hasSuffix("enze") && b.hasSuffixInR2("enze"):
		b.replaceSuffix("enze", "ente")
		return true

	case b.hasSuffix("ità") && b.hasSuffixInR2("ità"):
		b.removeSuffix("ità")
		switch {
		case b.hasSuffix("abil") && b.hasSuffixInR2("abil"):
			b.removeSuffix("abil")
		case b.hasSuffix("ic") && b.hasSuffixInR2("ic"):
			b.removeSuffix("ic")
		case b.hasSuffix("iv") && b.hasSuffixInR2("iv"):
			b.removeSuffix("iv")
		}
		return true

	case b.hasSuffix("ivo") && b.hasSuffixInR2("ivo"):
		b.removeSuffix("ivo")
		italianIvoFollowup(b)
		return true
	case b.hasSuffix("ivi") && b.hasSuffixInR2("ivi"):
		b.removeSuffix("ivi")
		italianIvoFollowup(b)
		return true
	case b.hasSuffix("iva") && b.hasSuffixInR2("iva"):
		b.removeSuffix("iva")
		italianIvoFollowup(b)
		return true
	case b.hasSuffix("ive") && b.hasSuffixInR2("ive"):
		b.removeSuffix("ive")
		italianIvoFollowup(b)
		return true
	}

	return false
}

func italianIvoFollowup(b *wordBuffer) {
	if b.hasSuffix("at") && b.hasSuffixInR2("at") {
		b.removeSuffix("at")
	}
}

// italianVerbSuffixes (step 2): the regular-conjugation ending table,
// deleted from RV; longest match wins.
var italianVerbSuffixes = []string{
	"erebbero", "irebbero", "assimo", "assero", "essero", "issero",
	"arono", "erono", "irono", "avamo", "evamo", "ivamo", "eremmo", "iremmo",
	"ammo", "emmo", "immo", "ando", "endo", "erebbe", "irebbe", "isco", "iscono",
	"ano", "ono", "iamo", "ate", "ete", "ite", "ano", "uto", "ato", "ito",
	"are", "ere", "ire", "avo", "evo", "ivo", "ava", "eva", "iva",
	"asse", "esse", "isse", "aste", "este", "iste", "ò", "i", "a", "e",
}

func italianStep2(b *wordBuffer) {
	if longest := b.longestSuffixIn(b.rv, italianVerbSuffixes); longest != "" {
		b.removeSuffix(longest)
	}
}

func italianStep3a(b *wordBuffer) {
	endings := []string{"a", "e", "i", "o", "à", "è", "ì", "ò"}
	if longest := b.longestSuffixIn(b.rv, endings); longest != "" {
		b.removeSuffix(longest)
	}
}

func italianStep3b(b *wordBuffer) {
	switch {
	case b.hasSuffix("ch") && b.hasSuffixInRV("ch"):
		b.replaceSuffix("ch", "c")
	case b.hasSuffix("gh") && b.hasSuffixInRV("gh"):
		b.replaceSuffix("gh", "g")
	}
}
