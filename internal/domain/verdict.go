package domain

import (
	"errors"
	"time"
)

// Label is the class assigned to an article.
type Label string

const (
	LabelReal      Label = "real"
	LabelFake      Label = "fake"
	LabelUncertain Label = "uncertain"
)

// VerdictSource records which pipeline stage produced the verdict.
type VerdictSource string

const (
	SourceStatistical VerdictSource = "statistical"
	SourceHeuristic   VerdictSource = "heuristic"
	SourceDomainList  VerdictSource = "domain-list"
)

// Input carries exactly one article per request, either as raw text or as a
// URL still to be resolved.
type Input struct {
	Text string
	URL  string
}

// RawText builds an Input from pasted article text.
func RawText(text string) Input {
	return Input{Text: text}
}

// FromURL builds an Input pointing at an article to download.
func FromURL(url string) Input {
	return Input{URL: url}
}

// IsURL reports whether the input still needs content extraction.
func (i Input) IsURL() bool {
	return i.URL != ""
}

// Extraction is the text an extractor strategy recovered from a page.
type Extraction struct {
	Text      string
	Method    string
	WordCount int
}

// Verdict is the terminal outcome of one classification request. It is never
// mutated after creation.
type Verdict struct {
	Label      Label
	Confidence float64
	Source     VerdictSource
}

// Report pairs a verdict with the extraction that fed it, so callers can
// echo the resolved article text back to the user. Extraction is nil for raw
// text input and for domain-list verdicts.
type Report struct {
	Verdict    Verdict
	Extraction *Extraction
}

// VerdictRecord is the persisted snapshot of a delivered verdict.
type VerdictRecord struct {
	URL        string
	Method     string
	WordCount  int
	Label      Label
	Confidence float64
	Source     VerdictSource
	CreatedAt  time.Time
}

var (
	// ErrNoText means every extractor strategy was exhausted without
	// recovering enough article text.
	ErrNoText = errors.New("no article text available")

	// ErrEmptyInput means the request carried no usable text at all.
	ErrEmptyInput = errors.New("empty input")
)
