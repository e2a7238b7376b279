package extract

import (
	"context"
	"log/slog"

	"FakeNewsDetector/internal/domain"
	"FakeNewsDetector/internal/ports"
)

// Strategy captures one way of turning a URL into article text.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, pageURL string) (domain.Extraction, error)
}

// Chain tries strategies in registration order, taking the first extraction
// that clears the minimum word count. Strategy failures are logged and mean
// "try the next one"; only exhaustion is reported to the caller.
type Chain struct {
	strategies []Strategy
	minWords   int
	logger     *slog.Logger
}

var _ ports.Extractor = (*Chain)(nil)

// NewChain builds a chain; order of strategies is significant.
func NewChain(minWords int, logger *slog.Logger, strategies ...Strategy) *Chain {
	return &Chain{
		strategies: strategies,
		minWords:   minWords,
		logger:     logger,
	}
}

// Resolve walks the chain and returns the first qualifying extraction, or
// domain.ErrNoText once every strategy is exhausted.
func (c *Chain) Resolve(ctx context.Context, pageURL string) (domain.Extraction, error) {
	for _, strategy := range c.strategies {
		extraction, err := strategy.Extract(ctx, pageURL)
		if err != nil {
			c.debug("strategy failed", "strategy", strategy.Name(), "url", pageURL, "error", err)
			continue
		}
		if extraction.WordCount < c.minWords {
			c.debug("extraction too short", "strategy", strategy.Name(), "method", extraction.Method, "words", extraction.WordCount)
			continue
		}

		c.debug("extraction succeeded", "method", extraction.Method, "words", extraction.WordCount)
		return extraction, nil
	}

	return domain.Extraction{}, domain.ErrNoText
}

func (c *Chain) debug(msg string, args ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}
