package extractor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"FakeNewsDetector/internal/domain"
	"FakeNewsDetector/internal/extract"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("word%d", i)
	}
	return strings.Join(parts, " ")
}

func TestFetcherSetsUserAgent(t *testing.T) {
	t.Parallel()

	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "FakeNewsDetector/1.0")
	if _, err := fetcher.Get(context.Background(), server.URL); err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if gotAgent != "FakeNewsDetector/1.0" {
		t.Fatalf("unexpected user agent: %q", gotAgent)
	}
}

func TestFetcherRejectsNonOK(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "")
	if _, err := fetcher.Get(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestSelectorStrategyPrefersArticleTag(t *testing.T) {
	t.Parallel()

	page := fmt.Sprintf(`<html><body>
		<article>%s</article>
		<p>%s</p>
	</body></html>`, words(80), words(200))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	strategy := NewSelectorStrategy(NewFetcher(5*time.Second, ""), 50)

	extraction, err := strategy.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if extraction.Method != "selector:article" {
		t.Fatalf("expected selector:article, got %s", extraction.Method)
	}
	if extraction.WordCount != 80 {
		t.Fatalf("expected 80 words, got %d", extraction.WordCount)
	}
}

func TestSelectorStrategyParagraphFallback(t *testing.T) {
	t.Parallel()

	page := fmt.Sprintf(`<html><body>
		<article>%s</article>
		<div><p>%s</p><p>%s</p></div>
	</body></html>`, words(5), words(40), words(30))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	strategy := NewSelectorStrategy(NewFetcher(5*time.Second, ""), 50)

	extraction, err := strategy.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if extraction.Method != methodParagraphs {
		t.Fatalf("expected paragraph fallback, got %s", extraction.Method)
	}
	if extraction.WordCount != 70 {
		t.Fatalf("expected 70 words, got %d", extraction.WordCount)
	}
}

func TestSelectorStrategyEmptyPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><div>nothing here</div></body></html>"))
	}))
	defer server.Close()

	strategy := NewSelectorStrategy(NewFetcher(5*time.Second, ""), 50)

	if _, err := strategy.Extract(context.Background(), server.URL); err == nil {
		t.Fatal("expected error for page without paragraphs")
	}
}

func TestReadabilityStrategy(t *testing.T) {
	t.Parallel()

	paragraphs := make([]string, 4)
	for i := range paragraphs {
		paragraphs[i] = "<p>" + words(60) + "</p>"
	}
	page := fmt.Sprintf(`<html><head><title>Sample Story</title></head><body>
		<header>Site navigation and menus</header>
		<article><h1>Sample Story</h1>%s</article>
		<footer>Copyright notice</footer>
	</body></html>`, strings.Join(paragraphs, "\n"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	strategy := NewReadabilityStrategy(NewFetcher(5*time.Second, ""))

	extraction, err := strategy.Extract(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Extract error: %v", err)
	}
	if extraction.Method != methodReadability {
		t.Fatalf("unexpected method: %s", extraction.Method)
	}
	if extraction.WordCount < 200 {
		t.Fatalf("expected the article body, got %d words", extraction.WordCount)
	}
}

// The chain must pick the selector tier, not the paragraph fallback, when the
// primary extractor comes back short and an article tag holds enough text.
func TestChainSelectorBeatsParagraphs(t *testing.T) {
	t.Parallel()

	page := fmt.Sprintf(`<html><body>
		<article>%s</article>
		<p>%s</p>
	</body></html>`, words(80), words(120))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "")
	chain := extract.NewChain(50, nil,
		shortPrimary{},
		NewSelectorStrategy(fetcher, 50),
	)

	extraction, err := chain.Resolve(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if extraction.Method != "selector:article" {
		t.Fatalf("expected selector:article, got %s", extraction.Method)
	}
}

func TestChainExhaustionOnUnreachableHost(t *testing.T) {
	t.Parallel()

	fetcher := NewFetcher(500*time.Millisecond, "")
	chain := extract.NewChain(50, nil,
		NewReadabilityStrategy(fetcher),
		NewSelectorStrategy(fetcher, 50),
	)

	_, err := chain.Resolve(context.Background(), "http://127.0.0.1:1/missing")
	if !errors.Is(err, domain.ErrNoText) {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}

type shortPrimary struct{}

func (shortPrimary) Name() string { return "short-primary" }

func (shortPrimary) Extract(_ context.Context, _ string) (domain.Extraction, error) {
	return domain.Extraction{Text: words(10), Method: "readability", WordCount: 10}, nil
}
