package quant

// wordBuffer is the mutable rune buffer every per-language stemmer operates
// on, plus the R1/R2/RV region indices computed over it. It is created fresh
// at the start of every Stem call and discarded on return; nothing about it
// outlives a single call.
type wordBuffer struct {
	w      []rune
	r1, r2 int
	rv     int
}

func newWordBuffer(word []rune) *wordBuffer {
	return &wordBuffer{w: word, r1: len(word), r2: len(word), rv: len(word)}
}

func (b *wordBuffer) len() int { return len(b.w) }

// clamp caps R1, R2 and RV at the current length after any in-place edit; it
// does not reorder the three indices. Every mutating method on wordBuffer calls
// this before returning; forgetting to do so after an edit produces subtly
// wrong results on short words (spec §9).
func (b *wordBuffer) clamp() {
	n := len(b.w)
	if b.r1 > n {
		b.r1 = n
	}
	if b.r2 > n {
		b.r2 = n
	}
	if b.rv > n {
		b.rv = n
	}
}

// isVowelSet reports whether r is one of the marked vowel code points.
func isVowelSet(r rune, vowels []rune) bool {
	for _, v := range vowels {
		if r == v {
			return true
		}
	}
	return false
}

// findR1 scans left to right for the first vowel, then from the character
// after it for the first non-vowel, and returns one past that non-vowel. If
// either scan fails it returns len(word).
func findR1(word []rune, vowels []rune) int {
	n := len(word)
	i := 0
	for i < n && !isVowelSet(word[i], vowels) {
		i++
	}
	if i >= n {
		return n
	}
	i++
	for i < n && isVowelSet(word[i], vowels) {
		i++
	}
	if i >= n {
		return n
	}
	return i + 1
}

// findR2 applies findR1 again, starting the scan at start (normally R1).
func findR2(word []rune, vowels []rune, start int) int {
	n := len(word)
	if start > n {
		start = n
	}
	rest := findR1(word[start:], vowels)
	if rest == len(word[start:]) {
		return n
	}
	return start + rest
}

// findRomanceRV implements the Spanish/Portuguese RV rule: if the second
// letter is a consonant, RV is after the next vowel; if the first two
// letters are both vowels, RV is after the next consonant; otherwise RV = 3.
func findRomanceRV(word []rune, vowels []rune) int {
	n := len(word)
	if n < 2 {
		return n
	}
	switch {
	case !isVowelSet(word[1], vowels):
		for i := 2; i < n; i++ {
			if isVowelSet(word[i], vowels) {
				return i + 1
			}
		}
		return n
	case isVowelSet(word[0], vowels) && isVowelSet(word[1], vowels):
		for i := 2; i < n; i++ {
			if !isVowelSet(word[i], vowels) {
				return i + 1
			}
		}
		return n
	default:
		if n < 3 {
			return n
		}
		return 3
	}
}

// findFrenchRV is the Romance rule plus a fixed-prefix override: words
// beginning with "par", "col", or "tap" set RV = 3 regardless.
func findFrenchRV(word []rune, vowels []rune) int {
	if hasRunePrefix(word, []rune("par")) ||
		hasRunePrefix(word, []rune("col")) ||
		hasRunePrefix(word, []rune("tap")) {
		if len(word) < 3 {
			return len(word)
		}
		return 3
	}
	return findRomanceRV(word, vowels)
}

// findRussianRV returns the position just past the first vowel.
func findRussianRV(word []rune, vowels []rune) int {
	for i, r := range word {
		if isVowelSet(r, vowels) {
			return i + 1
		}
	}
	return len(word)
}

func hasRunePrefix(word, prefix []rune) bool {
	if len(word) < len(prefix) {
		return false
	}
	for i, r := range prefix {
		if word[i] != r {
			return false
		}
	}
	return true
}

// hasSuffix reports whether word ends in literal. The buffer is assumed
// already lowercased over the ASCII/Latin-1 range (spec §9's permitted
// simplification over the reference's paired lower/upper literal overloads),
// so this is a plain rune-slice comparison.
func (b *wordBuffer) hasSuffix(literal string) bool {
	return hasRuneSuffix(b.w, []rune(literal))
}

func hasRuneSuffix(word, suffix []rune) bool {
	n, m := len(word), len(suffix)
	if m > n {
		return false
	}
	for i := 0; i < m; i++ {
		if word[n-m+i] != suffix[i] {
			return false
		}
	}
	return true
}

// suffixStart returns the index at which literal would begin if it matches
// the end of the buffer, or -1 if it does not match at all.
func (b *wordBuffer) suffixStart(literal string) int {
	s := []rune(literal)
	if !hasRuneSuffix(b.w, s) {
		return -1
	}
	return len(b.w) - len(s)
}

// hasSuffixInRegion reports whether literal matches the end of the buffer
// and the match starts at or after region.
func (b *wordBuffer) hasSuffixInRegion(region int, literal string) bool {
	start := b.suffixStart(literal)
	return start >= 0 && start >= region
}

func (b *wordBuffer) hasSuffixInR1(literal string) bool { return b.hasSuffixInRegion(b.r1, literal) }
func (b *wordBuffer) hasSuffixInR2(literal string) bool { return b.hasSuffixInRegion(b.r2, literal) }
func (b *wordBuffer) hasSuffixInRV(literal string) bool { return b.hasSuffixInRegion(b.rv, literal) }

// removeSuffix deletes literal from the end of the buffer (caller must have
// already verified the match) and re-clamps regions.
func (b *wordBuffer) removeSuffix(literal string) {
	n := len([]rune(literal))
	b.w = b.w[:len(b.w)-n]
	b.clamp()
}

// replaceSuffix deletes literal from the end of the buffer and appends
// replacement, re-clamping regions afterward.
func (b *wordBuffer) replaceSuffix(literal, replacement string) {
	n := len([]rune(literal))
	b.w = append(b.w[:len(b.w)-n], []rune(replacement)...)
	b.clamp()
}

// appendSuffix appends s to the buffer and re-clamps regions. Used for the
// English "append e" rules in step 1b/5a.
func (b *wordBuffer) appendSuffix(s string) {
	b.w = append(b.w, []rune(s)...)
	b.clamp()
}

// deleteIfInR1/R2/RV erase literal from the end of the buffer and return true
// if the suffix matches and lies entirely within the region; if it matches
// but lies outside the region, they return successOnFind without editing;
// otherwise they return false. This mirrors the reference's
// delete_if_in_rX(word, literal, success_on_find) short-circuit so later
// rules in a step can be skipped without actually touching the buffer.
func (b *wordBuffer) deleteIfInR1(literal string, successOnFind bool) bool {
	return b.deleteIfInRegion(b.r1, literal, successOnFind)
}

func (b *wordBuffer) deleteIfInR2(literal string, successOnFind bool) bool {
	return b.deleteIfInRegion(b.r2, literal, successOnFind)
}

func (b *wordBuffer) deleteIfInRV(literal string, successOnFind bool) bool {
	return b.deleteIfInRegion(b.rv, literal, successOnFind)
}

func (b *wordBuffer) deleteIfInRegion(region int, literal string, successOnFind bool) bool {
	start := b.suffixStart(literal)
	if start < 0 {
		return false
	}
	if start < region {
		return successOnFind
	}
	b.removeSuffix(literal)
	return true
}

// longestSuffixIn returns the longest literal in suffixes that matches the
// end of the buffer and starts at or after region, or "" if none do. This is
// the shared "longest-match" primitive (spec §4.3's ordering policy) used by
// every per-language step table that isn't English's (English keeps its own
// applyLongestMatch because its rules carry per-suffix region overrides and
// the li- preceding-letter guard).
func (b *wordBuffer) longestSuffixIn(region int, suffixes []string) string {
	best := ""
	for _, s := range suffixes {
		if len(s) > len(best) && b.hasSuffixInRegion(region, s) {
			best = s
		}
	}
	return best
}

// runeAt returns the rune at index i, or 0 if i is out of bounds.
func (b *wordBuffer) runeAt(i int) rune {
	if i < 0 || i >= len(b.w) {
		return 0
	}
	return b.w[i]
}

func (b *wordBuffer) String() string { return string(b.w) }
