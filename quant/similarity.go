package quant

/*
similarity.go provides similarity metrics on strings.

Types:
* None

Functions:
* CosineSimilarity(a, b string, opts ...TypeCounterOption) (similarity float64, err error)
*/

// ############################################################################
// CosineSimilarity
// ############################################################################

// CosineSimilarity returns a value in the range [-1, 1] that indicates how
// similar two strings are. Both strings are type-counted (tokenized and
// stemmed, per opts) over their combined vocabulary, then the cosine of the
// angle between the two resulting frequency vectors is returned.
func CosineSimilarity(a, b string, opts ...TypeCounterOption) (similarity float64, err error) {
	counter := NewTypeCounter(opts...)

	var typesA, typesB map[string]int64
	if typesA, err = counter.TypeCount(a); err != nil {
		return 0.0, err
	}
	if typesB, err = counter.TypeCount(b); err != nil {
		return 0.0, err
	}

	// Build a shared vocabulary from both chunks' types
	vocab := make(map[string]int, len(typesA)+len(typesB))
	for word := range typesA {
		if _, ok := vocab[word]; !ok {
			vocab[word] = len(vocab)
		}
	}
	for word := range typesB {
		if _, ok := vocab[word]; !ok {
			vocab[word] = len(vocab)
		}
	}

	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for word, i := range vocab {
		vecA[i] = float64(typesA[word])
		vecB[i] = float64(typesB[word])
	}

	// Calculate the cosine of the angle between the vectors as the similarity
	return Cosine(vecA, vecB)
}
