package feature

import (
	"fmt"
	"math"

	"FakeNewsDetector/pkg/textutil"
)

// Vectorizer maps text onto a fixed-dimension TF-IDF vector. Vocabulary and
// IDF weights are fixed at model-load time; tokens outside the vocabulary
// contribute nothing.
type Vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// NewVectorizer validates that every vocabulary index addresses an IDF
// column.
func NewVectorizer(vocab map[string]int, idf []float64) (*Vectorizer, error) {
	for token, index := range vocab {
		if index < 0 || index >= len(idf) {
			return nil, fmt.Errorf("token %q maps to column %d outside dimension %d", token, index, len(idf))
		}
	}
	return &Vectorizer{vocab: vocab, idf: idf}, nil
}

// Dim is the fixed output dimension.
func (v *Vectorizer) Dim() int {
	return len(v.idf)
}

// Transform produces the L2-normalized term-count-times-IDF vector. It is a
// pure function of the text and the fitted vocabulary.
func (v *Vectorizer) Transform(text string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, token := range textutil.Tokens(text) {
		if column, ok := v.vocab[token]; ok {
			vec[column]++
		}
	}

	var sum float64
	for i := range vec {
		vec[i] *= v.idf[i]
		sum += vec[i] * vec[i]
	}
	if sum > 0 {
		norm := math.Sqrt(sum)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}
