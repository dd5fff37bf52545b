package quant

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// caseFolder performs a full Unicode case fold, used only by the Russian
// stemmer (spec §9: "Russian and any non-Latin input must use a full
// Unicode case fold"). The Latin-alphabet stemmers fold case themselves
// over the ASCII/Latin-1 range only, which is cheaper and sufficient.
var caseFolder = cases.Fold()

// normalizeInput narrows full-width ASCII/Latin-1 code points to their
// narrow equivalents and composes the result to NFC, so that precomposed
// accented letters (French ë, Portuguese ã, German ü, ...) are single code
// points before any per-language rune-by-rune inspection runs. This is the
// boundary step every Stemmer implementation calls before touching its word
// buffer (spec §6: "UTF-8 input MUST be decoded to code points at the
// boundary... Full-width ASCII/Latin-1 code points are mapped to their
// narrow equivalents before processing").
func normalizeInput(word string) string {
	word = width.Narrow.String(word)
	return norm.NFC.String(word)
}

// apostrophes recognized at a word's trailing edge (spec §6): ASCII 0x27,
// Latin-1 0x92/0xB4, and the Unicode right single quote U+2019.
func isApostrophe(r rune) bool {
	switch r {
	case '\'', '\u0092', '\u00B4', '\u2019':
		return true
	}
	return false
}

// trimPossessive strips a trailing "'s", "'", or lone apostrophe sequence
// from word, per spec §6.
func trimPossessive(word []rune) []rune {
	if n := len(word); n >= 2 && isApostrophe(word[n-2]) && (word[n-1] == 's' || word[n-1] == 'S') {
		word = word[:n-2]
	}
	for len(word) > 0 && isApostrophe(word[len(word)-1]) {
		word = word[:len(word)-1]
	}
	return word
}

// toLowerLatin1 lowercases only the ASCII and Latin-1 Supplement alphabetic
// range in place, leaving hash sentinels (which sit in the C0 control range)
// and any character outside that range untouched. Per spec §9, this is the
// permitted alternative to carrying paired (lowercase, uppercase) suffix
// literals: the word is folded once at the boundary, and every suffix table
// in this package is written in lowercase.
func toLowerLatin1(word []rune) {
	for i, r := range word {
		switch {
		case r >= 'A' && r <= 'Z':
			word[i] = r + ('a' - 'A')
		case r >= 0x00C0 && r <= 0x00DE && r != 0x00D7:
			// Latin-1 Supplement uppercase block (minus the multiplication sign)
			word[i] = r + 0x20
		}
	}
}

// foldRussianCase applies a full Unicode case fold across word, used instead
// of toLowerLatin1 for Cyrillic input (spec §9).
func foldRussianCase(word string) string {
	return caseFolder.String(word)
}
