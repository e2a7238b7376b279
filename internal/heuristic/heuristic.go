package heuristic

import (
	"strings"

	"FakeNewsDetector/internal/domain"
	"FakeNewsDetector/pkg/textutil"
)

// Overlay flags very short, inflammatory snippets before the statistical
// classifier runs. The model is trained on full-length articles and handles
// such inputs poorly; the word-count gate keeps long legitimate articles
// that merely quote these words from triggering it.
type Overlay struct {
	keywords   []string
	maxWords   int
	confidence float64
}

// NewOverlay lowercases the keyword list once.
func NewOverlay(keywords []string, maxWords int, confidence float64) *Overlay {
	lowered := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			lowered = append(lowered, kw)
		}
	}
	return &Overlay{keywords: lowered, maxWords: maxWords, confidence: confidence}
}

// Check returns a fake verdict when the text is below the word gate and
// contains an alarm keyword, case-insensitively.
func (o *Overlay) Check(text string) (domain.Verdict, bool) {
	if textutil.WordCount(text) >= o.maxWords {
		return domain.Verdict{}, false
	}

	lowered := strings.ToLower(text)
	for _, kw := range o.keywords {
		if strings.Contains(lowered, kw) {
			return domain.Verdict{
				Label:      domain.LabelFake,
				Confidence: o.confidence,
				Source:     domain.SourceHeuristic,
			}, true
		}
	}

	return domain.Verdict{}, false
}
