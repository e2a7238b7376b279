package ports

import (
	"context"

	"FakeNewsDetector/internal/domain"
)

// Extractor resolves a URL into article text via the fallback chain.
type Extractor interface {
	Resolve(ctx context.Context, pageURL string) (domain.Extraction, error)
}

// Classifier maps article text to a two-class probability distribution.
// Implementations guarantee pReal + pFake = 1.
type Classifier interface {
	PredictProba(text string) (pReal, pFake float64)
}

// VerdictRepository persists delivered verdicts for history and audit.
type VerdictRepository interface {
	SaveVerdict(ctx context.Context, rec domain.VerdictRecord) error
}
