package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Fetcher downloads raw HTML with the pipeline-wide user agent and timeout.
// Both extractor strategies share one instance so every attempt uses the
// same request identity.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher wires an HTTP client with the configured timeout.
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Get downloads the page body. Timeouts surface as ordinary errors; the
// chain treats them as "try the next strategy".
func (f *Fetcher) Get(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return body, nil
}
