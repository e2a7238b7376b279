package reputation

import (
	"net/url"
	"strings"

	"FakeNewsDetector/internal/domain"
)

// Filter holds the static trusted/suspicious host sets and short-circuits
// classification for URLs whose host appears in either.
type Filter struct {
	trusted    map[string]struct{}
	suspicious map[string]struct{}
}

// NewFilter normalizes both lists once; the filter is read-only afterwards.
func NewFilter(trusted, suspicious []string) *Filter {
	return &Filter{
		trusted:    toSet(trusted),
		suspicious: toSet(suspicious),
	}
}

// Lookup returns a terminal verdict when the URL's host is on a list. A URL
// with no discernible host is never a match; the extractor chain deals with
// it downstream.
func (f *Filter) Lookup(rawURL string) (domain.Verdict, bool) {
	host := NormalizeHost(rawURL)
	if host == "" {
		return domain.Verdict{}, false
	}

	if _, ok := f.trusted[host]; ok {
		return domain.Verdict{Label: domain.LabelReal, Confidence: 1.0, Source: domain.SourceDomainList}, true
	}
	if _, ok := f.suspicious[host]; ok {
		return domain.Verdict{Label: domain.LabelFake, Confidence: 1.0, Source: domain.SourceDomainList}, true
	}

	return domain.Verdict{}, false
}

// NormalizeHost extracts the lowercased host without scheme or leading www.
// It returns "" when no host can be parsed.
func NormalizeHost(rawURL string) string {
	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return ""
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}

	host := strings.ToLower(parsed.Hostname())
	host = strings.TrimPrefix(host, "www.")
	return host
}

func toSet(hosts []string) map[string]struct{} {
	set := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		normalized := NormalizeHost(h)
		if normalized == "" {
			continue
		}
		set[normalized] = struct{}{}
	}
	return set
}
