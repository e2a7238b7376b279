package model

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"FakeNewsDetector/internal/feature"
	"FakeNewsDetector/internal/ports"
)

// artifact is the on-disk shape of the pre-trained model: a fitted TF-IDF
// vocabulary plus binary logistic-regression parameters. Positive logits
// favor the fake class.
type artifact struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Weights    []float64      `json:"weights"`
	Intercept  float64        `json:"intercept"`
}

// Store bundles the vectorizer and model parameters. It is immutable after
// construction and safe for concurrent readers.
type Store struct {
	vectorizer *feature.Vectorizer
	weights    []float64
	intercept  float64
}

var _ ports.Classifier = (*Store)(nil)

// Load reads the artifact once, eagerly. A missing or corrupt artifact is a
// startup failure; no request may be served past it.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return nil, fmt.Errorf("parse model artifact %s: %w", path, err)
	}

	return New(art.Vocabulary, art.IDF, art.Weights, art.Intercept)
}

// New builds a store from in-memory parameters; tests use it to inject
// hand-crafted models.
func New(vocab map[string]int, idf, weights []float64, intercept float64) (*Store, error) {
	if len(vocab) == 0 {
		return nil, fmt.Errorf("model artifact has an empty vocabulary")
	}
	if len(weights) != len(idf) {
		return nil, fmt.Errorf("weight dimension %d does not match vocabulary dimension %d", len(weights), len(idf))
	}

	vectorizer, err := feature.NewVectorizer(vocab, idf)
	if err != nil {
		return nil, fmt.Errorf("build vectorizer: %w", err)
	}

	return &Store{
		vectorizer: vectorizer,
		weights:    weights,
		intercept:  intercept,
	}, nil
}

// PredictProba vectorizes the text and returns the two-class distribution;
// pReal + pFake = 1 by construction.
func (s *Store) PredictProba(text string) (pReal, pFake float64) {
	vec := s.vectorizer.Transform(text)

	z := s.intercept
	for i, w := range s.weights {
		z += w * vec[i]
	}

	pFake = 1 / (1 + math.Exp(-z))
	return 1 - pFake, pFake
}
