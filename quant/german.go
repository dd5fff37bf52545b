package quant

var germanVowels = []rune("aeiouyäöü")

type germanStemmer struct {
	cfg stemmerConfig
}

func (germanStemmer) Language() Language { return LanguageGerman }

func (g germanStemmer) Stem(word string) string {
	w := preprocess(word)
	toLowerLatin1(w)
	if len(w) < 3 {
		return string(w)
	}

	w = germanTransliterate(w, g.cfg.transliterateUmlauts)
	hashYU(w, germanVowels)

	b := newWordBuffer(w)
	b.r1 = findR1(w, germanVowels)
	if b.r1 < 3 {
		b.r1 = 3
	}
	if b.r1 > b.len() {
		b.r1 = b.len()
	}
	b.r2 = findR2(w, germanVowels, b.r1)

	germanStep1(b)
	germanStep2(b)
	germanStep3(b)

	unhashYU(b.w)
	return germanUnumlaut(string(b.w))
}

// germanTransliterate applies the pre-rule-application substitutions: ß->ss
// unconditionally, and (when enabled) ae/oe/ue -> ä/ö/ü, skipping ue after q.
func germanTransliterate(w []rune, umlauts bool) []rune {
	out := make([]rune, 0, len(w))
	for i := 0; i < len(w); i++ {
		switch {
		case w[i] == 'ß':
			out = append(out, 's', 's')
		case umlauts && w[i] == 'a' && i+1 < len(w) && w[i+1] == 'e':
			out = append(out, 'ä')
			i++
		case umlauts && w[i] == 'o' && i+1 < len(w) && w[i+1] == 'e':
			out = append(out, 'ö')
			i++
		case umlauts && w[i] == 'u' && i+1 < len(w) && w[i+1] == 'e' && (i == 0 || w[i-1] != 'q'):
			out = append(out, 'ü')
			i++
		default:
			out = append(out, w[i])
		}
	}
	return out
}

func germanUnumlaut(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case 'ä':
			out = append(out, 'a')
		case 'ö':
			out = append(out, 'o')
		case 'ü':
			out = append(out, 'u')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}

// isGermanValidSEnding reports whether r may precede a deleted final "s" in
// step 1 (original_source/src/german_stem.h step_1's bespoke list, narrower
// than the general German consonant set).
func isGermanValidSEnding(r rune) bool {
	switch r {
	case 'b', 'd', 'f', 'g', 'h', 'k', 'l', 'm', 'n', 'r', 't':
		return true
	}
	return false
}

// step1 handles plurals/person endings in R1, tracking "group C" (es/en/e
// endings) so a following niss-ending s can be dropped. Ordered exactly as
// original_source/src/german_stem.h step_1's if/else-if cascade: first match
// wins, and several branches ("em"/"erinnen"/"erin"/"ern"/"lns"/"ln"/"er"/a
// valid "s") return immediately without falling through to the niss check.
func germanStep1(b *wordBuffer) {
	groupC := false
	switch {
	// "em", but not if the word ends in "system".
	case b.hasSuffixInR1("em") && !b.hasSuffix("system"):
		b.removeSuffix("em")
		return
	case b.hasSuffixInR1("erinnen"):
		b.removeSuffix("erinnen")
		return
	case b.hasSuffixInR1("erin"):
		b.removeSuffix("erin")
		return
	case b.hasSuffixInR1("ern"):
		b.removeSuffix("ern")
		return
	case b.hasSuffixInR1("lns"):
		b.w = b.w[:b.len()-2]
		b.clamp()
		return
	case b.hasSuffixInR1("ln"):
		b.w = b.w[:b.len()-1]
		b.clamp()
		return
	case b.hasSuffixInR1("er"):
		b.removeSuffix("er")
		return
	case b.hasSuffixInR1("es"):
		b.removeSuffix("es")
		groupC = true
	case b.hasSuffixInR1("en"):
		b.removeSuffix("en")
		groupC = true
	case b.hasSuffixInR1("e"):
		b.removeSuffix("e")
		groupC = true
	case b.hasSuffixInR1("s") && b.len() >= 2:
		if isGermanValidSEnding(b.w[b.len()-2]) {
			b.removeSuffix("s")
		}
		return
	}
	if groupC && b.len() > 4 && b.hasSuffix("niss") {
		b.w = b.w[:b.len()-1]
		b.clamp()
	}
}

// isGermanValidETChar reports whether r may precede a deleted "et" ending in
// step 2 (original_source/src/german_stem.h's VALID_ET_SUFFIX_CHARACTERS
// table). Notably excludes b/h, unlike the st-ending's valid-char set, and
// includes s/z/ä plus the hashed-U sentinel left behind by hashYU.
func isGermanValidETChar(r rune) bool {
	switch r {
	case 'd', 'f', 'g', 'k', 'l', 'm', 'n', 'r', 's', 't', 'z', 'ä', upperUHash, lowerUHash:
		return true
	}
	return false
}

// germanETExclusions are prefixes that disqualify an otherwise-valid "et"
// ending from step 2's deletion (spec §9: the "tr" entry intentionally
// narrows the negative list beyond the published Snowball German spec).
var germanETExclusions = []string{"geordn", "intern", "tick", "plan", "tr"}

func germanStep2(b *wordBuffer) {
	switch {
	case b.hasSuffix("est") && b.hasSuffixInR1("est"):
		b.removeSuffix("est")
	case b.hasSuffix("er") && b.hasSuffixInR1("er"):
		b.removeSuffix("er")
	case b.hasSuffix("en") && b.hasSuffixInR1("en"):
		b.removeSuffix("en")
	case b.hasSuffix("st") && b.hasSuffixInR1("st") && b.len() >= 3:
		switch b.w[b.len()-3] {
		case 'b', 'd', 'f', 'g', 'h', 'k', 'l', 'm', 'n', 't':
			if b.len() >= 5 {
				b.removeSuffix("st")
			}
		}
	case b.hasSuffix("et") && b.hasSuffixInR1("et") && b.len() >= 3:
		stem := b.w[:b.len()-2]
		excluded := false
		s := string(stem)
		for _, p := range germanETExclusions {
			if len(s) >= len(p) && s[len(s)-len(p):] == p {
				excluded = true
				break
			}
		}
		if !excluded && isGermanValidETChar(stem[len(stem)-1]) {
			b.removeSuffix("et")
		}
	}
}

// step3 handles the derivational suffixes, each guarded by R2, with chained
// sub-deletions for keit.
func germanStep3(b *wordBuffer) {
	switch {
	case b.hasSuffix("end") && b.hasSuffixInR2("end"):
		b.removeSuffix("end")
	case b.hasSuffix("ung") && b.hasSuffixInR2("ung"):
		b.removeSuffix("ung")
		if b.hasSuffix("ig") && b.hasSuffixInR2("ig") && !b.hasSuffix("eig") {
			b.removeSuffix("ig")
		}
	case b.hasSuffix("heit") && b.hasSuffixInR2("heit"):
		b.removeSuffix("heit")
	case b.hasSuffix("keit") && b.hasSuffixInR2("keit"):
		b.removeSuffix("keit")
		switch {
		case b.hasSuffix("lich") && b.hasSuffixInR2("lich"):
			b.removeSuffix("lich")
		case b.hasSuffix("ig") && b.hasSuffixInR2("ig"):
			b.removeSuffix("ig")
		}
	case b.hasSuffix("lich") && b.hasSuffixInR2("lich"):
		b.removeSuffix("lich")
	case b.hasSuffix("isch") && b.hasSuffixInR2("isch") && !b.hasSuffix("eisch"):
		b.removeSuffix("isch")
	case b.hasSuffix("ik") && b.hasSuffixInR2("ik") && !b.hasSuffix("atik"):
		b.removeSuffix("ik")
	case b.hasSuffix("ig") && b.hasSuffixInR2("ig") && !b.hasSuffix("eig"):
		b.removeSuffix("ig")
	}
}
