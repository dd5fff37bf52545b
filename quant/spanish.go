package quant

var spanishVowels = []rune("aeiouáéíóúü")

type spanishStemmer struct{}

func (spanishStemmer) Language() Language { return LanguageSpanish }

func (spanishStemmer) Stem(word string) string {
	w := preprocess(word)
	toLowerLatin1(w)
	if len(w) < 3 {
		return string(w)
	}

	b := newWordBuffer(w)
	b.r1 = findR1(w, spanishVowels)
	b.r2 = findR2(w, spanishVowels, b.r1)
	b.rv = findRomanceRV(w, spanishVowels)

	spanishStep0(b)
	altered := spanishStep1(b)
	if !altered {
		if !spanishStep2a(b) {
			spanishStep2b(b)
		}
	}
	spanishStep3(b)

	return string(b.w)
}

// spanishAttachedPronouns are step 0's enclitic pronouns (me, se, la, ...),
// removed when they sit in RV and follow one of a fixed set of verb-form
// endings.
var spanishAttachedPronouns = []string{
	"selas", "selos", "sela", "selo", "las", "les", "los", "nos",
	"me", "se", "la", "le", "lo",
}

var spanishGerundInfinitiveEndings = []string{
	"iéndo", "ándo", "ár", "ér", "ír", "ando", "iendo", "yendo", "ado", "ido", "ar", "er", "ir",
}

func spanishStep0(b *wordBuffer) {
	pron := b.longestSuffixIn(b.rv, spanishAttachedPronouns)
	if pron == "" {
		return
	}
	stem := b.w[:b.len()-len([]rune(pron))]
	stemBuf := &wordBuffer{w: stem, r1: b.r1, r2: b.r2, rv: b.rv}
	stemBuf.clamp()
	if ending := stemBuf.longestSuffixIn(0, spanishGerundInfinitiveEndings); ending != "" {
		b.removeSuffix(pron)
	}
}

var spanishStandardDeleteR2 = []string{
	"amientos", "imientos", "amiento", "imiento",
	"adoras", "adores", "aciones", "adora", "ador", "ación",
	"antes", "ancias", "ancia", "ismos", "istas", "ables", "ibles",
	"osos", "osas", "ante", "icos", "icas", "ismo", "able", "ible", "ista",
	"oso", "osa", "anzas", "anza", "ico", "ica",
}

func spanishStep1(b *wordBuffer) bool {
	if longest := b.longestSuffixIn(b.r2, spanishStandardDeleteR2); longest != "" {
		b.removeSuffix(longest)
		return true
	}

	switch {
	case b.hasSuffix("logías") && b.hasSuffixInR2("logías"):
		b.replaceSuffix("logías", "log")
		return true
	case b.hasSuffix("logía") && b.hasSuffixInR2("logía"):
		b.replaceSuffix("logía", "log")
		return true
	case b.hasSuffix("uciones") && b.hasSuffixInR2("uciones"):
		b.replaceSuffix("uciones", "u")
		return true
	case b.hasSuffix("ución") && b.hasSuffixInR2("ución"):
		b.replaceSuffix("ución", "u")
		return true
	case b.hasSuffix("encias") && b.hasSuffixInR2("encias"):
		b.replaceSuffix("encias", "ente")
		return true
	case b.hasSuffix("encia") && b.hasSuffixInR2("encia"):
		b.replaceSuffix("encia", "ente")
		return true

	case b.hasSuffix("amente") && b.hasSuffixInR1("amente"):
		b.removeSuffix("amente")
		switch {
		case b.hasSuffix("iv") && b.hasSuffixInR2("iv"):
			b.removeSuffix("iv")
			if b.hasSuffix("at") && b.hasSuffixInR2("at") {
				b.removeSuffix("at")
			}
		case b.hasSuffix("os") && b.hasSuffixInR2("os"):
			b.removeSuffix("os")
		case b.hasSuffix("ic") && b.hasSuffixInR2("ic"):
			b.removeSuffix("ic")
		case b.hasSuffix("ad") && b.hasSuffixInR2("ad"):
			b.removeSuffix("ad")
		}
		return true

	case b.hasSuffix("mente") && b.hasSuffixInR2("mente"):
		b.removeSuffix("mente")
		switch {
		case b.hasSuffix("ante") && b.hasSuffixInR2("ante"):
			b.removeSuffix("ante")
		case b.hasSuffix("able") && b.hasSuffixInR2("able"):
			b.removeSuffix("able")
		case b.hasSuffix("ible") && b.hasSuffixInR2("ible"):
			b.removeSuffix("ible")
		}
		return true

	case b.hasSuffix("idades") && b.hasSuffixInR2("idades"):
		b.removeSuffix("idades")
		spanishIdadFollowup(b)
		return true
	case b.hasSuffix("idad") && b.hasSuffixInR2("idad"):
		b.removeSuffix("idad")
		spanishIdadFollowup(b)
		return true

	case b.hasSuffix("ivas") && b.hasSuffixInR2("ivas"):
		b.removeSuffix("ivas")
		spanishIvaFollowup(b)
		return true
	case b.hasSuffix("ivos") && b.hasSuffixInR2("ivos"):
		b.removeSuffix("ivos")
		spanishIvaFollowup(b)
		return true
	case b.hasSuffix("iva") && b.hasSuffixInR2("iva"):
		b.removeSuffix("iva")
		spanishIvaFollowup(b)
		return true
	case b.hasSuffix("ivo") && b.hasSuffixInR2("ivo"):
		b.removeSuffix("ivo")
		spanishIvaFollowup(b)
		return true
	}

	return false
}

func spanishIdadFollowup(b *wordBuffer) {
	switch {
	case b.hasSuffix("abil") && b.hasSuffixInR2("abil"):
		b.removeSuffix("abil")
	case b.hasSuffix("ic") && b.hasSuffixInR2("ic"):
		b.removeSuffix("ic")
	case b.hasSuffix("iv") && b.hasSuffixInR2("iv"):
		b.removeSuffix("iv")
	}
}

func spanishIvaFollowup(b *wordBuffer) {
	if b.hasSuffix("at") && b.hasSuffixInR2("at") {
		b.removeSuffix("at")
	}
}

// spanishYVerbSuffixes (step 2a): deleted from RV only when immediately
// preceded by "u".
var spanishYVerbSuffixes = []string{
	"yeron", "yendo", "yamos", "yais", "yan", "yen", "yas", "yes", "ya", "ye", "yo", "yó",
}

func spanishStep2a(b *wordBuffer) bool {
	longest := b.longestSuffixIn(b.rv, spanishYVerbSuffixes)
	if longest == "" {
		return false
	}
	n := b.len() - len([]rune(longest))
	if n < 1 || b.w[n-1] != 'u' {
		return false
	}
	b.removeSuffix(longest)
	return true
}

// spanishVerbSuffixes (step 2b): the large regular-conjugation ending table,
// deleted from RV; longest match wins.
var spanishVerbSuffixes = []string{
	"aríamos", "eríamos", "iríamos", "iéramos", "iésemos", "aríais", "eríais",
	"iríais", "áramos", "ábamos", "ásemos", "aremos", "eremos",
	"iremos", "ariais", "eriais", "iriais", "arían", "erían", "irían",
	"abais", "arais", "aseis", "ierais", "ieseis", "asteis", "isteis",
	"ando", "iendo", "aron", "ieron", "arán", "erán", "irán", "ería", "aría",
	"iría", "iera", "iese", "aste", "iste", "aban", "aran", "asen", "ieran",
	"iesen", "ado", "ido", "ías", "ára",
	"ar", "er", "ir", "as", "ía", "ad", "ed", "id", "an", "ió",
	"ís", "en", "es",
}

func spanishStep2b(b *wordBuffer) bool {
	longest := b.longestSuffixIn(b.rv, spanishVerbSuffixes)
	if longest == "" {
		return false
	}
	b.removeSuffix(longest)
	if longest == "en" || longest == "es" || longest == "éis" || longest == "emos" {
		switch {
		case b.hasSuffix("gu"):
			b.removeSuffix("u")
		}
	}
	return true
}

// spanishStep3 removes residual vowel endings in RV (o/a/e family) and
// applies the gu-loses-u adjustment the same way Portuguese does.
func spanishStep3(b *wordBuffer) {
	endings1 := []string{"os", "a", "o", "á", "í", "ó"}
	if longest := b.longestSuffixIn(b.rv, endings1); longest != "" {
		b.removeSuffix(longest)
		return
	}
	endings2 := []string{"e", "é"}
	if longest := b.longestSuffixIn(b.rv, endings2); longest != "" {
		b.removeSuffix(longest)
		if b.hasSuffix("gu") && b.hasSuffixInRV("u") {
			b.removeSuffix("u")
		}
	}
}
