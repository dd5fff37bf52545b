package quant

import (
	"regexp"
)

/*
tokens.go provides tokenization and counting functionality.

Types:
* StringModifier
* Tokenizer

Functions:
* TokenizeStringNaive(corpus string, lang Language) (tokens []string, err error)
* TypeCountStringTokens(tokens []string, tokenModifiers ...StringModifier) (types map[string]int64)
*/

// StringModifier transforms a token string before counting, e.g. strings.ToLower.
type StringModifier func(string) string

// ############################################################################
// TokenizeStringNaive
// ############################################################################

// tokenExprs maps each supported language to the regexp character class used
// to recognize word characters when tokenizing naively. English uses ASCII
// letters and digits; the other Latin-script languages share an
// accented-Latin-1 class; Russian gets the Cyrillic block.
var tokenExprs = map[Language]string{
	LanguageEnglish:    `[A-Za-z0-9]+`,
	LanguageDanish:     `[A-Za-zÀ-ÖØ-öø-ÿ]+`,
	LanguageDutch:      `[A-Za-zÀ-ÖØ-öø-ÿ]+`,
	LanguageFinnish:    `[A-Za-zÀ-ÖØ-öø-ÿ]+`,
	LanguageFrench:     `[A-Za-zÀ-ÖØ-öø-ÿ]+`,
	LanguageGerman:     `[A-Za-zÀ-ÖØ-öø-ÿß]+`,
	LanguageItalian:    `[A-Za-zÀ-ÖØ-öø-ÿ]+`,
	LanguageNorwegian:  `[A-Za-zÀ-ÖØ-öø-ÿ]+`,
	LanguagePortuguese: `[A-Za-zÀ-ÖØ-öø-ÿ]+`,
	LanguageSpanish:    `[A-Za-zÀ-ÖØ-öø-ÿ]+`,
	LanguageSwedish:    `[A-Za-zÀ-ÖØ-öø-ÿ]+`,
	LanguageRussian:    `[\x{0400}-\x{04FF}]+`,
}

// Tokenizes a string (naively) by grouping the word characters recognized for
// lang, ignoring everything else. Does not modify the corpus before
// tokenizing.
func TokenizeStringNaive(corpus string, lang Language) (tokens []string, err error) {
	expr, ok := tokenExprs[lang]
	if !ok {
		return nil, ErrLanguageNotSupported
	}

	var r *regexp.Regexp
	if r, err = regexp.Compile(expr); err != nil {
		return nil, err
	}

	return r.FindAllString(corpus, -1), nil
}

// ############################################################################
// TypeCountStringTokens
// ############################################################################

// Returns a map of type strings and their counts. For each token, all of the
// modifiers provided will be performed before counting. An example of a
// [StringModifier] would be the function [strings.ToLower] or many others in
// the Go [strings] package.
func TypeCountStringTokens(tokens []string, tokenModifiers ...StringModifier) (types map[string]int64) {
	// Make the types map (variable sz was selected arbitrarily)
	sz := len(tokens) / 4
	types = make(map[string]int64, sz)

	// Modify and count the tokens
	for _, t := range tokens {
		// Apply all token modifiers to the token
		for _, modFn := range tokenModifiers {
			t = modFn(t)
		}

		// Count the token
		types[t] += 1
	}

	return types
}

// ############################################################################
// Tokenizer
// ############################################################################

// Tokenizer tokenizes and type-counts text for one language, applying a
// configurable set of token modifiers before counting. It is the thin
// collaborator [TypeCounter] and [Vectorizer] build on; it does not itself
// stem anything.
type Tokenizer struct {
	language  Language
	modifiers []StringModifier
}

// TokenizerOption functions configure a [Tokenizer].
type TokenizerOption func(t *Tokenizer)

// WithTokenizerLanguage sets the language a [Tokenizer] recognizes word
// characters for. Defaults to [LanguageEnglish].
func WithTokenizerLanguage(lang Language) TokenizerOption {
	return func(t *Tokenizer) { t.language = lang }
}

// WithTokenizerModifiers sets the [StringModifier]s a [Tokenizer] applies to
// every token before counting.
func WithTokenizerModifiers(mods ...StringModifier) TokenizerOption {
	return func(t *Tokenizer) { t.modifiers = mods }
}

// NewTokenizer returns a [Tokenizer] defaulting to [LanguageEnglish] and no
// token modifiers.
func NewTokenizer(opts ...TokenizerOption) *Tokenizer {
	t := &Tokenizer{language: LanguageEnglish}
	for _, fn := range opts {
		fn(t)
	}
	return t
}

// Tokenize splits chunk into tokens using the Tokenizer's language.
func (t *Tokenizer) Tokenize(chunk string) (tokens []string, err error) {
	return TokenizeStringNaive(chunk, t.language)
}

// TypeCount tokenizes chunk and returns the count of each resulting type,
// after applying the Tokenizer's modifiers.
func (t *Tokenizer) TypeCount(chunk string) (types map[string]int64, err error) {
	var tokens []string
	if tokens, err = t.Tokenize(chunk); err != nil {
		return nil, err
	}
	return TypeCountStringTokens(tokens, t.modifiers...), nil
}
