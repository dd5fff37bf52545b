package quant

// Hash sentinels: reserved C0 control code points used to temporarily mark
// the consonantal role of Y/U/I and to carry a diaeresis vowel during rule
// application. Mirrors the UPPER_Y_HASH/LOWER_Y_HASH/... constants in the
// reference's stemming.h; values are chosen out of the way of any Latin-1
// letter so they can never collide with real input.
const (
	upperYHash   = 0x07
	lowerYHash   = 0x09
	upperIHash   = 0x0A
	lowerIHash   = 0x0B
	upperUHash   = 0x0C
	lowerUHash   = 0x0D
	diaeresisHash = 0x0E
)

func isVowelRune(r rune, vowels []rune) bool { return isVowelSet(r, vowels) }

// hashY rewrites the English "hash_y" rule: an initial Y, or any Y preceded
// by a vowel, becomes the Y sentinel so later rules treat it as a consonant
// only where that's actually true.
func hashY(w []rune, vowels []rune) {
	for i, r := range w {
		if r != 'y' && r != 'Y' {
			continue
		}
		if i == 0 || isVowelRune(w[i-1], vowels) {
			w[i] = yHashFor(r)
		}
	}
}

func yHashFor(r rune) rune {
	if r == 'Y' {
		return upperYHash
	}
	return lowerYHash
}

func unhashY(w []rune) {
	for i, r := range w {
		switch r {
		case upperYHash:
			w[i] = 'Y'
		case lowerYHash:
			w[i] = 'y'
		}
	}
}

// hashYI implements Dutch's "hash_yi": initial Y hashed, Y after a vowel
// hashed, and I between two vowels hashed.
func hashYI(w []rune, vowels []rune) {
	hashY(w, vowels)
	for i := 1; i < len(w)-1; i++ {
		if (w[i] == 'i' || w[i] == 'I') && isVowelRune(w[i-1], vowels) && isVowelRune(w[i+1], vowels) {
			w[i] = iHashFor(w[i])
		}
	}
}

func iHashFor(r rune) rune {
	if r == 'I' {
		return upperIHash
	}
	return lowerIHash
}

func unhashYI(w []rune) {
	unhashY(w)
	for i, r := range w {
		switch r {
		case upperIHash:
			w[i] = 'I'
		case lowerIHash:
			w[i] = 'i'
		}
	}
}

// hashYU implements German's "hash_yu": Y or U between two vowels hashed.
func hashYU(w []rune, vowels []rune) {
	for i := 1; i < len(w)-1; i++ {
		if !isVowelRune(w[i-1], vowels) || !isVowelRune(w[i+1], vowels) {
			continue
		}
		switch w[i] {
		case 'y', 'Y':
			w[i] = yHashFor(w[i])
		case 'u', 'U':
			w[i] = uHashFor(w[i])
		}
	}
}

func uHashFor(r rune) rune {
	if r == 'U' {
		return upperUHash
	}
	return lowerUHash
}

func unhashYU(w []rune) {
	for i, r := range w {
		switch r {
		case upperYHash:
			w[i] = 'Y'
		case lowerYHash:
			w[i] = 'y'
		case upperUHash:
			w[i] = 'U'
		case lowerUHash:
			w[i] = 'u'
		}
	}
}

// hashYUI implements French's "hash_yui": U or I between two vowels hashed,
// Y adjacent to any vowel hashed, and U after Q hashed.
func hashYUI(w []rune, vowels []rune) {
	for i := range w {
		switch w[i] {
		case 'y', 'Y':
			if (i > 0 && isVowelRune(w[i-1], vowels)) || (i < len(w)-1 && isVowelRune(w[i+1], vowels)) {
				w[i] = yHashFor(w[i])
			}
		case 'u', 'U':
			if i > 0 && (w[i-1] == 'q' || w[i-1] == 'Q') {
				w[i] = uHashFor(w[i])
			} else if i > 0 && i < len(w)-1 && isVowelRune(w[i-1], vowels) && isVowelRune(w[i+1], vowels) {
				w[i] = uHashFor(w[i])
			}
		case 'i', 'I':
			if i > 0 && i < len(w)-1 && isVowelRune(w[i-1], vowels) && isVowelRune(w[i+1], vowels) {
				w[i] = iHashFor(w[i])
			}
		}
	}
}

func unhashYUI(w []rune) {
	for i, r := range w {
		switch r {
		case upperYHash:
			w[i] = 'Y'
		case lowerYHash:
			w[i] = 'y'
		case upperUHash:
			w[i] = 'U'
		case lowerUHash:
			w[i] = 'u'
		case upperIHash:
			w[i] = 'I'
		case lowerIHash:
			w[i] = 'i'
		}
	}
}

// hashUI implements Italian's "hash_ui": U or I between two vowels hashed,
// and U after Q hashed.
func hashUI(w []rune, vowels []rune) {
	for i := range w {
		switch w[i] {
		case 'u', 'U':
			if i > 0 && (w[i-1] == 'q' || w[i-1] == 'Q') {
				w[i] = uHashFor(w[i])
			} else if i > 0 && i < len(w)-1 && isVowelRune(w[i-1], vowels) && isVowelRune(w[i+1], vowels) {
				w[i] = uHashFor(w[i])
			}
		case 'i', 'I':
			if i > 0 && i < len(w)-1 && isVowelRune(w[i-1], vowels) && isVowelRune(w[i+1], vowels) {
				w[i] = iHashFor(w[i])
			}
		}
	}
}

func unhashUI(w []rune) {
	for i, r := range w {
		switch r {
		case upperUHash:
			w[i] = 'U'
		case lowerUHash:
			w[i] = 'u'
		case upperIHash:
			w[i] = 'I'
		case lowerIHash:
			w[i] = 'i'
		}
	}
}

// splitFrenchDiaeresis rewrites each ë/ï (and uppercase) as the diaeresis
// sentinel followed by its base vowel, so the hashing and rule-application
// passes see a single consonant-like marker rather than a precomposed vowel
// with a diacritic. joinFrenchDiaeresis reverses it before the word is
// returned to the caller.
func splitFrenchDiaeresis(w []rune) []rune {
	out := make([]rune, 0, len(w)+2)
	for _, r := range w {
		switch r {
		case 'ë', 'Ë', 'ï', 'Ï':
			out = append(out, diaeresisHash, baseVowelOf(r))
		default:
			out = append(out, r)
		}
	}
	return out
}

func baseVowelOf(r rune) rune {
	switch r {
	case 'ë', 'Ë':
		return 'e'
	case 'ï', 'Ï':
		return 'i'
	}
	return r
}

func joinFrenchDiaeresis(w []rune) []rune {
	out := make([]rune, 0, len(w))
	for i := 0; i < len(w); i++ {
		if w[i] == diaeresisHash && i+1 < len(w) {
			i++
			switch w[i] {
			case 'e':
				out = append(out, 'ë')
			case 'i':
				out = append(out, 'ï')
			default:
				out = append(out, w[i])
			}
			continue
		}
		out = append(out, w[i])
	}
	return out
}
