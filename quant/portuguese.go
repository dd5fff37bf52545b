package quant

var portugueseVowels = []rune("aeiouáéíóúâêôãõ")

type portugueseStemmer struct{}

func (portugueseStemmer) Language() Language { return LanguagePortuguese }

func (portugueseStemmer) Stem(word string) string {
	w := preprocess(word)
	toLowerLatin1(w)
	if len(w) < 3 {
		return string(w)
	}

	w = portugueseEncodeNasals(w)

	b := newWordBuffer(w)
	b.r1 = findR1(w, portugueseVowels)
	b.r2 = findR2(w, portugueseVowels, b.r1)
	b.rv = findRomanceRV(w, portugueseVowels)

	altered := portugueseStep1(b)
	if !altered {
		portugueseStep2(b)
	}
	if !portugueseStep4(b) {
		portugueseStep5(b)
	}
	portugueseStep6(b)

	return string(portugueseDecodeNasals(b.w))
}

// portugueseEncodeNasals rewrites ã/õ as a two-rune a~/o~ sequence (spec
// §4.4.3) so the nasal vowel's "tilde" doesn't need special-casing inside
// every suffix comparison; portugueseDecodeNasals reverses it.
func portugueseEncodeNasals(w []rune) []rune {
	out := make([]rune, 0, len(w)+2)
	for _, r := range w {
		switch r {
		case 'ã':
			out = append(out, 'a', '~')
		case 'õ':
			out = append(out, 'o', '~')
		default:
			out = append(out, r)
		}
	}
	return out
}

func portugueseDecodeNasals(w []rune) []rune {
	out := make([]rune, 0, len(w))
	for i := 0; i < len(w); i++ {
		if w[i] == '~' {
			continue
		}
		if i+1 < len(w) && w[i+1] == '~' && (w[i] == 'a' || w[i] == 'o') {
			if w[i] == 'a' {
				out = append(out, 'ã')
			} else {
				out = append(out, 'õ')
			}
			i++
			continue
		}
		out = append(out, w[i])
	}
	return out
}

// portugueseStep1 runs the standard-suffix cascade and reports whether it
// altered the buffer (spec §4.4.3's step1_step2_altered flag).
func portugueseStep1(b *wordBuffer) bool {
	deleteGroup := []string{
		"amentos", "imentos", "amento", "imento",
		"adoras", "adores", "ações", "adora", "ador", "aça~o",
		"antes", "ância", "ismos", "istas", "áveis", "íveis",
		"ezas", "icos", "icas", "ismo", "ável", "ível", "ista",
		"osos", "osas", "ante", "eza", "ico", "ica", "oso", "osa",
	}
	if longest := b.longestSuffixIn(b.r2, deleteGroup); longest != "" {
		b.removeSuffix(longest)
		return true
	}

	switch {
	case b.hasSuffix("logias") && b.hasSuffixInR2("logias"):
		b.replaceSuffix("logias", "log")
		return true
	case b.hasSuffix("logia") && b.hasSuffixInR2("logia"):
		b.replaceSuffix("logia", "log")
		return true
	case b.hasSuffix("uções") && b.hasSuffixInR2("uções"):
		b.replaceSuffix("uções", "u")
		return true
	case b.hasSuffix("ução") && b.hasSuffixInR2("ução"):
		b.replaceSuffix("ução", "u")
		return true
	case b.hasSuffix("ências") && b.hasSuffixInR2("ências"):
		b.replaceSuffix("ências", "ente")
		return true
	case b.hasSuffix("ência") && b.hasSuffixInR2("ência"):
		b.replaceSuffix("ência", "ente")
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
		case b.hasSuffix("avel") && b.hasSuffixInR2("avel"):
			b.removeSuffix("avel")
		case b.hasSuffix("ível") && b.hasSuffixInR2("ível"):
			b.removeSuffix("ível")
		}
		return true

	case b.hasSuffix("ades") && b.hasSuffixInR2("ades"):
		b.removeSuffix("ades")
		portugueseIdadeFollowup(b)
		return true
	case b.hasSuffix("ade") && b.hasSuffixInR2("ade"):
		b.removeSuffix("ade")
		portugueseIdadeFollowup(b)
		return true

	case b.hasSuffix("ivas") && b.hasSuffixInR2("ivas"):
		b.removeSuffix("ivas")
		portugueseIvaFollowup(b)
		return true
	case b.hasSuffix("ivos") && b.hasSuffixInR2("ivos"):
		b.removeSuffix("ivos")
		portugueseIvaFollowup(b)
		return true
	case b.hasSuffix("iva") && b.hasSuffixInR2("iva"):
		b.removeSuffix("iva")
		portugueseIvaFollowup(b)
		return true
	case b.hasSuffix("ivo") && b.hasSuffixInR2("ivo"):
		b.removeSuffix("ivo")
		portugueseIvaFollowup(b)
		return true

	case b.hasSuffix("iras") && b.hasSuffixInRV("iras") && b.len() >= 5 && b.w[b.len()-5] == 'e':
		b.replaceSuffix("iras", "ir")
		return true
	case b.hasSuffix("ira") && b.hasSuffixInRV("ira") && b.len() >= 4 && b.w[b.len()-4] == 'e':
		b.replaceSuffix("ira", "ir")
		return true
	}

	return false
}

func portugueseIdadeFollowup(b *wordBuffer) {
	switch {
	case b.hasSuffix("abil") && b.hasSuffixInR2("abil"):
		b.removeSuffix("abil")
	case b.hasSuffix("ic") && b.hasSuffixInR2("ic"):
		b.removeSuffix("ic")
	case b.hasSuffix("iv") && b.hasSuffixInR2("iv"):
		b.removeSuffix("iv")
	}
}

func portugueseIvaFollowup(b *wordBuffer) {
	if b.hasSuffix("at") && b.hasSuffixInR2("at") {
		b.removeSuffix("at")
	}
}

// portugueseVerbSuffixes covers the standard conjugation endings (spec
// §4.4.3's step 2), deleted when found in RV; longest match wins.
var portugueseVerbSuffixes = []string{
	"aríamos", "eríamos", "iríamos", "ássemos", "êssemos", "íssemos",
	"aríeis", "eríeis", "iríeis", "ásseis", "ésseis", "ísseis",
	"áramos", "éramos", "íramos", "ariam", "eriam", "iriam",
	"assem", "essem", "issem", "ariam", "aremos", "eremos", "iremos",
	"ariam", "avam", "arem", "erem", "irem", "ando", "endo", "indo",
	"ara", "era", "ira", "ava", "asse", "esse", "isse", "aste", "este", "iste",
	"arias", "erias", "irias", "ariam", "ard", "ería", "aria", "eria", "iria",
	"ámos", "emos", "imos", "iam", "adas", "idas", "aras", "eras", "iras",
	"avas", "aram", "eram", "iram", "avam", "arei", "erei", "irei",
	"ei", "am", "em", "im", "ou", "ia", "ar", "er", "ir", "as", "es", "is",
	"eu", "iu", "ou",
}

func portugueseStep2(b *wordBuffer) {
	if longest := b.longestSuffixIn(b.rv, portugueseVerbSuffixes); longest != "" {
		b.removeSuffix(longest)
	}
}

// portugueseStep4 removes residual vowel endings in RV.
func portugueseStep4(b *wordBuffer) bool {
	endings := []string{"os", "a", "i", "o", "á", "í", "ó"}
	if longest := b.longestSuffixIn(b.rv, endings); longest != "" {
		b.removeSuffix(longest)
		return true
	}
	return false
}

// portugueseStep5 deletes a final e/é/ê in RV and then the u of a final "gu"
// or the i of a final "ci" when that letter is in RV. It runs only when
// step4 didn't fire.
func portugueseStep5(b *wordBuffer) {
	endings := []string{"e", "é", "ê"}
	if longest := b.longestSuffixIn(b.rv, endings); longest != "" {
		b.removeSuffix(longest)
		switch {
		case b.hasSuffix("gu") && b.hasSuffixInRV("u"):
			b.removeSuffix("u")
		case b.hasSuffix("ci") && b.hasSuffixInRV("i"):
			b.removeSuffix("i")
		}
	}
}

func portugueseStep6(b *wordBuffer) {
	if b.hasSuffix("ç") {
		b.replaceSuffix("ç", "c")
	}
}
