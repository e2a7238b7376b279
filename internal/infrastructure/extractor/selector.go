package extractor

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"FakeNewsDetector/internal/domain"
	"FakeNewsDetector/internal/extract"
	"FakeNewsDetector/pkg/textutil"
)

const methodParagraphs = "paragraphs"

// contentSelectors are tried in order; the first one yielding enough words
// wins. The list mirrors the container names news sites commonly use.
var contentSelectors = []string{
	"article",
	"main",
	"div.article-body",
	"div.story-body",
	"div.post-content",
	"div.entry-content",
}

// SelectorStrategy is the secondary extractor: raw HTML plus a fixed list of
// content-container selectors, falling back to every paragraph on the page.
type SelectorStrategy struct {
	fetcher  *Fetcher
	minWords int
}

var _ extract.Strategy = (*SelectorStrategy)(nil)

// NewSelectorStrategy wires the shared fetcher; minWords gates the selector
// tier only, the paragraph fallback returns whatever it finds.
func NewSelectorStrategy(fetcher *Fetcher, minWords int) *SelectorStrategy {
	return &SelectorStrategy{fetcher: fetcher, minWords: minWords}
}

// Name identifies the strategy in chain logs.
func (s *SelectorStrategy) Name() string {
	return "selector"
}

// Extract downloads the page and walks the selector tiers in order.
func (s *SelectorStrategy) Extract(ctx context.Context, pageURL string) (domain.Extraction, error) {
	body, err := s.fetcher.Get(ctx, pageURL)
	if err != nil {
		return domain.Extraction{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return domain.Extraction{}, fmt.Errorf("parse document: %w", err)
	}

	for _, selector := range contentSelectors {
		text := textutil.CollapseSpace(doc.Find(selector).Text())
		if count := textutil.WordCount(text); count >= s.minWords {
			return domain.Extraction{
				Text:      text,
				Method:    "selector:" + selector,
				WordCount: count,
			}, nil
		}
	}

	var parts []string
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		if text := textutil.CollapseSpace(p.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	text := strings.Join(parts, " ")
	if text == "" {
		return domain.Extraction{}, fmt.Errorf("no paragraph text found")
	}

	return domain.Extraction{
		Text:      text,
		Method:    methodParagraphs,
		WordCount: textutil.WordCount(text),
	}, nil
}
