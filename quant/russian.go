package quant

// russianVowels lists the Cyrillic vowels used by [findRussianRV] and every
// suffix-region check below (grounded in the classic Russian Porter-style
// algorithm: а е ё и о у ы э ю я).
var russianVowels = []rune("аеёиоуыэюя")

type russianStemmer struct{}

func (russianStemmer) Language() Language { return LanguageRussian }

func (russianStemmer) Stem(word string) string {
	word = foldRussianCase(normalizeInput(word))
	w := trimPossessive([]rune(word))
	if len(w) < 3 {
		return string(w)
	}

	r1 := findR1(w, russianVowels)
	b := newWordBuffer(w)
	b.r1 = r1
	b.r2 = findR2(w, russianVowels, r1)
	b.rv = findRussianRV(w, russianVowels)

	russianStep1(b)
	russianStep2(b)
	russianStep3(b)
	russianStep4(b)

	return string(b.w)
}

var russianPerfectiveGerund1 = []string{"вши", "вшись", "в"}
var russianPerfectiveGerund2 = []string{"ившись", "ывшись", "ивши", "ывши", "ив", "ыв"}
var russianReflexive = []string{"ся", "сь"}

var russianAdjective = []string{
	"ими", "ыми", "его", "ого", "ему", "ому", "ее", "ие", "ые", "ое",
	"ей", "ий", "ый", "ой", "ем", "им", "ым", "ом", "их", "ых",
	"ую", "юю", "ая", "яя", "ою", "ею",
}
var russianParticiple1 = []string{"ющ", "вш", "ем", "нн", "щ"}
var russianParticiple2 = []string{"ивш", "ывш", "ующ"}

var russianVerb1 = []string{
	"ейте", "уйте", "ила", "ыла", "ите", "или", "ыли", "ена", "ило", "ыло",
	"ено", "ешь", "нно", "ла", "на", "ете", "йте", "ли", "й", "л", "ем",
	"н", "ло", "но", "ет", "ют", "ны", "ть",
}
var russianVerb2 = []string{
	"ила", "ыла", "ена", "ейте", "уйте", "ите", "или", "ыли", "ило", "ыло",
	"ено", "ят", "ует", "уют", "ить", "ыть", "ишь", "ую", "ей", "уй", "ил",
	"ыл", "им", "ым", "ен", "ит", "ыт", "ены", "ю",
}

var russianNoun = []string{
	"иями", "ями", "ами", "иях", "иям", "ией", "ами",
	"ья", "ье", "ьи", "ью", "ию", "ия",
	"ев", "ов", "ие", "ье", "еи", "ии", "ией", "ей", "ой", "ий", "ям",
	"ием", "ем", "ам", "ом", "ах", "ях", "е", "и", "й", "о", "у", "ы", "ь", "ю", "я", "а",
}

var russianSuperlative = []string{"ейше", "ейш"}
var russianDerivational = []string{"ость", "ост"}

// russianPrecededByAOrYA reports whether the rune immediately before a
// candidate suffix match is а or я (the "group 1" gerund/participle/verb
// condition in the classic algorithm).
func russianPrecededByAOrYA(b *wordBuffer, suffix string) bool {
	start := b.suffixStart(suffix)
	if start <= 0 {
		return false
	}
	r := b.w[start-1]
	return r == 'а' || r == 'я'
}

func russianStep1(b *wordBuffer) {
	if longest := b.longestSuffixIn(b.rv, russianPerfectiveGerund1); longest != "" && russianPrecededByAOrYA(b, longest) {
		b.removeSuffix(longest)
		return
	}
	if longest := b.longestSuffixIn(b.rv, russianPerfectiveGerund2); longest != "" {
		b.removeSuffix(longest)
		return
	}

	if longest := b.longestSuffixIn(b.rv, russianReflexive); longest != "" {
		b.removeSuffix(longest)
	}

	if russianAdjectival(b) {
		return
	}
	if russianVerbal(b) {
		return
	}
	if longest := b.longestSuffixIn(b.rv, russianNoun); longest != "" {
		b.removeSuffix(longest)
	}
}

// russianAdjectival tries participle+adjective (group 1 requires а/я before
// the participle part, group 2 doesn't), falling back to bare adjective.
func russianAdjectival(b *wordBuffer) bool {
	for _, p := range russianParticiple1 {
		for _, a := range russianAdjective {
			combo := p + a
			if b.hasSuffixInRV(combo) && russianPrecededByAOrYA(b, combo) {
				b.removeSuffix(combo)
				return true
			}
		}
	}
	for _, p := range russianParticiple2 {
		for _, a := range russianAdjective {
			combo := p + a
			if b.hasSuffixInRV(combo) {
				b.removeSuffix(combo)
				return true
			}
		}
	}
	if longest := b.longestSuffixIn(b.rv, russianAdjective); longest != "" {
		b.removeSuffix(longest)
		return true
	}
	return false
}

func russianVerbal(b *wordBuffer) bool {
	if longest := b.longestSuffixIn(b.rv, russianVerb1); longest != "" && russianPrecededByAOrYA(b, longest) {
		b.removeSuffix(longest)
		return true
	}
	if longest := b.longestSuffixIn(b.rv, russianVerb2); longest != "" {
		b.removeSuffix(longest)
		return true
	}
	return false
}

// russianStep2 deletes a final "и" in RV.
func russianStep2(b *wordBuffer) {
	if b.hasSuffix("и") && b.hasSuffixInRV("и") {
		b.removeSuffix("и")
	}
}

// russianStep3 deletes a derivational ending in R2.
func russianStep3(b *wordBuffer) {
	if longest := b.longestSuffixIn(b.r2, russianDerivational); longest != "" {
		b.removeSuffix(longest)
	}
}

// russianStep4 collapses a final doubled "нн" to a single "н", then applies
// the superlative and soft-sign cleanups.
func russianStep4(b *wordBuffer) {
	if b.hasSuffix("нн") && b.hasSuffixInRV("нн") {
		b.removeSuffix("нн")
		b.appendSuffix("н")
	}
	if longest := b.longestSuffixIn(b.rv, russianSuperlative); longest != "" {
		b.removeSuffix(longest)
	}
	if b.hasSuffix("ь") && b.hasSuffixInRV("ь") {
		b.removeSuffix("ь")
	}
}
