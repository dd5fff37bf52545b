package quant

// ############################################################################
// TypeCounter
// ############################################################################

// TypeCounter performs type counting on text: it tokenizes a chunk, stems
// each token, and counts the resulting types. Create with [NewTypeCounter].
type TypeCounter struct {
	tokenizer *Tokenizer
	stemmer   Stemmer
}

// NewTypeCounter returns a new [TypeCounter]. Defaults to the default
// [Tokenizer] (English, no modifiers) and the no-op [Stemmer]; override either
// with [WithTokenizer] or [WithStemmer].
func NewTypeCounter(opts ...TypeCounterOption) *TypeCounter {
	c := &TypeCounter{
		tokenizer: NewTokenizer(),
		stemmer:   NewStemmer(LanguageNone),
	}
	for _, fn := range opts {
		fn(c)
	}
	return c
}

// TypeCount returns a map of type strings and their counts. Each token is
// stemmed before counting, so inflected forms collapse onto the same type.
func (c *TypeCounter) TypeCount(chunk string, opts ...TypeCounterOption) (types map[string]int64, err error) {
	// Set TypeCounter options
	for _, fn := range opts {
		fn(c)
	}

	// Tokenizing
	var tokens []string
	if tokens, err = c.tokenizer.Tokenize(chunk); err != nil {
		return nil, err
	}

	// Stemming
	for i, tok := range tokens {
		tokens[i] = c.stemmer.Stem(tok)
	}

	// Counting
	return c.CountTypes(tokens), nil
}

// CountTypes returns the count of each type (unique word) in the given token
// list.
func (c *TypeCounter) CountTypes(tokens []string) (types map[string]int64) {
	sz := len(tokens) / 5 // map size selected arbitrarily
	types = make(map[string]int64, sz)
	for _, tok := range tokens {
		types[tok] += 1
	}
	return types
}

// ############################################################################
// TypeCounterOptions
// ############################################################################

// TypeCounterOption functions modify a [TypeCounter].
type TypeCounterOption func(t *TypeCounter)

// WithTokenizer sets the [Tokenizer] to be used for the [TypeCounter].
func WithTokenizer(tokenizer *Tokenizer) TypeCounterOption {
	return func(t *TypeCounter) {
		t.tokenizer = tokenizer
	}
}

// WithStemmer sets the [Stemmer] to be used for the [TypeCounter].
func WithStemmer(stemmer Stemmer) TypeCounterOption {
	return func(t *TypeCounter) {
		t.stemmer = stemmer
	}
}
