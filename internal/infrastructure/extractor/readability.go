package extractor

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"FakeNewsDetector/internal/domain"
	"FakeNewsDetector/internal/extract"
	"FakeNewsDetector/pkg/textutil"
)

const methodReadability = "readability"

// ReadabilityStrategy is the primary extractor: structured article parsing
// that identifies the main body of the document.
type ReadabilityStrategy struct {
	fetcher *Fetcher
}

var _ extract.Strategy = (*ReadabilityStrategy)(nil)

// NewReadabilityStrategy shares the chain-wide fetcher.
func NewReadabilityStrategy(fetcher *Fetcher) *ReadabilityStrategy {
	return &ReadabilityStrategy{fetcher: fetcher}
}

// Name identifies the strategy in chain logs.
func (r *ReadabilityStrategy) Name() string {
	return methodReadability
}

// Extract downloads the page and runs readability main-content detection.
func (r *ReadabilityStrategy) Extract(ctx context.Context, pageURL string) (domain.Extraction, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return domain.Extraction{}, fmt.Errorf("invalid url %s: %w", pageURL, err)
	}

	body, err := r.fetcher.Get(ctx, pageURL)
	if err != nil {
		return domain.Extraction{}, err
	}

	article, err := readability.FromReader(bytes.NewReader(body), parsed)
	if err != nil {
		return domain.Extraction{}, fmt.Errorf("readability parse: %w", err)
	}

	text := textutil.CollapseSpace(strings.TrimSpace(article.TextContent))
	if text == "" {
		return domain.Extraction{}, fmt.Errorf("readability found no article body")
	}

	return domain.Extraction{
		Text:      text,
		Method:    methodReadability,
		WordCount: textutil.WordCount(text),
	}, nil
}
