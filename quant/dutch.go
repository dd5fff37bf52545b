package quant

var dutchVowels = []rune("aeiouyè")

type dutchStemmer struct{}

func (dutchStemmer) Language() Language { return LanguageDutch }

func (dutchStemmer) Stem(word string) string {
	w := preprocess(word)
	toLowerLatin1(w)
	if len(w) < 3 {
		return string(w)
	}

	hashYI(w, dutchVowels)

	b := newWordBuffer(w)
	b.r1 = findR1(w, dutchVowels)
	if b.r1 < 3 {
		b.r1 = 3
	}
	b.clamp()
	b.r2 = findR2(w, dutchVowels, b.r1)

	removedEnEnding := dutchStep1(b)
	dutchStep2(b)
	dutchStep3a(b, removedEnEnding)
	dutchStep3b(b, removedEnEnding)

	unhashYI(b.w)
	return string(b.w)
}

func isDutchConsonant(r rune) bool { return !isVowelRune(r, dutchVowels) }

// dutchValidEnEnding reports whether the letters preceding an "en"/"ene"
// suffix are a consonant (not a vowel) and the stem doesn't end in "gem".
func dutchValidEnEnding(stem []rune) bool {
	n := len(stem)
	if n == 0 || isVowelRune(stem[n-1], dutchVowels) {
		return false
	}
	if n >= 3 && string(stem[n-3:]) == "gem" {
		return false
	}
	return true
}

func dutchValidSEnding(stem []rune) bool {
	n := len(stem)
	if n == 0 {
		return false
	}
	return isDutchConsonant(stem[n-1]) && stem[n-1] != 'j'
}

// dutchUndouble drops the final letter if the buffer ends in a doubled
// consonant from the kk/dd/tt family.
func dutchUndouble(b *wordBuffer) {
	n := b.len()
	if n < 2 {
		return
	}
	if b.w[n-1] == b.w[n-2] {
		switch b.w[n-1] {
		case 'k', 'd', 't':
			b.w = b.w[:n-1]
			b.clamp()
		}
	}
}

func dutchStep1(b *wordBuffer) bool {
	switch {
	case b.hasSuffix("heden") && b.hasSuffixInR1("heden"):
		b.replaceSuffix("heden", "heid")
		return false

	case b.hasSuffix("ene") && b.hasSuffixInR1("ene"):
		stem := b.w[:b.len()-3]
		if dutchValidEnEnding(stem) {
			b.removeSuffix("ene")
			dutchUndouble(b)
			return true
		}
	case b.hasSuffix("en") && b.hasSuffixInR1("en"):
		stem := b.w[:b.len()-2]
		if dutchValidEnEnding(stem) {
			b.removeSuffix("en")
			dutchUndouble(b)
			return true
		}

	case b.hasSuffix("se") && b.hasSuffixInR1("se"):
		stem := b.w[:b.len()-2]
		if dutchValidSEnding(stem) {
			b.removeSuffix("se")
		}
	case b.hasSuffix("s") && b.hasSuffixInR1("s"):
		stem := b.w[:b.len()-1]
		if dutchValidSEnding(stem) {
			b.removeSuffix("s")
		}
	}
	return false
}

// dutchStep2 deletes a final "e" in R1 preceded by a consonant, then undoubles.
func dutchStep2(b *wordBuffer) {
	n := b.len()
	if n == 0 || b.w[n-1] != 'e' || !b.hasSuffixInR1("e") {
		return
	}
	if n >= 2 && isDutchConsonant(b.w[n-2]) {
		b.removeSuffix("e")
		dutchUndouble(b)
	}
}

// dutchStep3a removes "heid" in R2 (not preceded by "c"), and a following
// valid "en"-ending if the step1 en-chain didn't already fire.
func dutchStep3a(b *wordBuffer, alreadyRemovedEn bool) {
	if !b.hasSuffix("heid") || !b.hasSuffixInR2("heid") {
		return
	}
	n := b.len()
	if n >= 5 && b.w[n-5] == 'c' {
		return
	}
	b.removeSuffix("heid")
	if !alreadyRemovedEn && b.hasSuffix("en") && b.hasSuffixInR1("en") {
		stem := b.w[:b.len()-2]
		if dutchValidEnEnding(stem) {
			b.removeSuffix("en")
			dutchUndouble(b)
		}
	}
}

func dutchStep3b(b *wordBuffer, removedEnEnding bool) {
	switch {
	case b.hasSuffix("end") && b.hasSuffixInR2("end"):
		b.removeSuffix("end")
		dutchUndouble(b)
	case b.hasSuffix("ing") && b.hasSuffixInR2("ing"):
		b.removeSuffix("ing")
		dutchUndouble(b)
	case b.hasSuffix("ig") && b.hasSuffixInR2("ig"):
		n := b.len()
		if !(n >= 3 && b.w[n-3] == 'e') {
			b.removeSuffix("ig")
		}
	case b.hasSuffix("lijk") && b.hasSuffixInR2("lijk"):
		b.removeSuffix("lijk")
		dutchStep2(b)
	case b.hasSuffix("baar") && b.hasSuffixInR2("baar"):
		b.removeSuffix("baar")
	case b.hasSuffix("bar") && b.hasSuffixInR2("bar") && removedEnEnding:
		b.removeSuffix("bar")
	}
}
