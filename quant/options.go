package quant

// stemmerConfig holds the per-call options threaded through [NewStemmer].
// Only the German stemmer currently reads a field off of it, but the type
// is shared across languages the way [TypeCounterOption] is shared across
// [NewTypeCounter] and [NewVectorizer].
type stemmerConfig struct {
	// transliterateUmlauts controls the German stemmer's pre-2.3.0-Snowball
	// behavior switch (spec §6): when true (the default) "ae", "oe", and
	// "ue" are folded to their umlaut before stemming.
	transliterateUmlauts bool
}

func defaultStemmerConfig() stemmerConfig {
	return stemmerConfig{transliterateUmlauts: true}
}

// StemmerOption configures a [Stemmer] at construction time.
type StemmerOption func(cfg *stemmerConfig)

// WithTransliterateUmlauts controls whether the German stemmer folds
// "ae"/"oe"/"ue" digraphs to umlauts before stemming. Defaults to true.
// Has no effect on any language other than [LanguageGerman].
func WithTransliterateUmlauts(enabled bool) StemmerOption {
	return func(cfg *stemmerConfig) {
		cfg.transliterateUmlauts = enabled
	}
}
