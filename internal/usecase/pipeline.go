package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"FakeNewsDetector/internal/domain"
	"FakeNewsDetector/internal/heuristic"
	"FakeNewsDetector/internal/ports"
	"FakeNewsDetector/internal/reputation"
)

// PipelineDeps wires all driven adapters into the classification pipeline.
// Reputation, Overlay, and Repository are optional; Extractor and Classifier
// are required.
type PipelineDeps struct {
	Reputation *reputation.Filter
	Extractor  ports.Extractor
	Overlay    *heuristic.Overlay
	Classifier ports.Classifier
	Repository ports.VerdictRepository
	Threshold  float64
	Logger     *slog.Logger
}

// Pipeline implements the classification workflow: reputation short-circuit,
// extraction chain, heuristic overlay, statistical classifier, confidence
// policy. One request produces at most one verdict.
type Pipeline struct {
	reputation *reputation.Filter
	extractor  ports.Extractor
	overlay    *heuristic.Overlay
	classifier ports.Classifier
	repository ports.VerdictRepository
	threshold  float64
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		reputation: deps.Reputation,
		extractor:  deps.Extractor,
		overlay:    deps.Overlay,
		classifier: deps.Classifier,
		repository: deps.Repository,
		threshold:  deps.Threshold,
		logger:     deps.Logger,
	}
}

// Classify is the single entry point the presentation layer calls. URL input
// runs the domain filter and the extraction chain first; extraction always
// happens before classification and is never retried by a later stage.
func (p *Pipeline) Classify(ctx context.Context, input domain.Input) (domain.Report, error) {
	var (
		text       string
		extraction *domain.Extraction
	)

	if input.IsURL() {
		if p.reputation != nil {
			if verdict, ok := p.reputation.Lookup(input.URL); ok {
				p.debug("domain list verdict", "url", input.URL, "label", verdict.Label)
				report := domain.Report{Verdict: verdict}
				p.record(ctx, input, report)
				return report, nil
			}
		}

		resolved, err := p.extractor.Resolve(ctx, input.URL)
		if err != nil {
			return domain.Report{}, fmt.Errorf("extract %s: %w", input.URL, err)
		}
		text = resolved.Text
		extraction = &resolved
	} else {
		text = strings.TrimSpace(input.Text)
		if text == "" {
			return domain.Report{}, domain.ErrEmptyInput
		}
	}

	if p.overlay != nil {
		if verdict, ok := p.overlay.Check(text); ok {
			p.debug("heuristic verdict", "label", verdict.Label, "confidence", verdict.Confidence)
			report := domain.Report{Verdict: verdict, Extraction: extraction}
			p.record(ctx, input, report)
			return report, nil
		}
	}

	pReal, pFake := p.classifier.PredictProba(text)
	verdict := p.decide(pReal, pFake)
	p.debug("statistical verdict", "label", verdict.Label, "confidence", verdict.Confidence)

	report := domain.Report{Verdict: verdict, Extraction: extraction}
	p.record(ctx, input, report)
	return report, nil
}

// decide applies the confidence policy: a bare-majority prediction carries
// little evidential value, so anything below the threshold surfaces as
// uncertain. The boundary is inclusive; exactly-threshold is confident.
func (p *Pipeline) decide(pReal, pFake float64) domain.Verdict {
	label, confidence := domain.LabelReal, pReal
	if pFake > pReal {
		label, confidence = domain.LabelFake, pFake
	}
	if confidence < p.threshold {
		label = domain.LabelUncertain
	}
	return domain.Verdict{Label: label, Confidence: confidence, Source: domain.SourceStatistical}
}

// record persists the verdict when a repository is wired; history is
// best-effort and never fails the request.
func (p *Pipeline) record(ctx context.Context, input domain.Input, report domain.Report) {
	if p.repository == nil {
		return
	}

	rec := domain.VerdictRecord{
		URL:        input.URL,
		Label:      report.Verdict.Label,
		Confidence: report.Verdict.Confidence,
		Source:     report.Verdict.Source,
		CreatedAt:  time.Now().UTC(),
	}
	if report.Extraction != nil {
		rec.Method = report.Extraction.Method
		rec.WordCount = report.Extraction.WordCount
	}

	if err := p.repository.SaveVerdict(ctx, rec); err != nil {
		p.warn("save verdict", "error", err)
	}
}

func (p *Pipeline) debug(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
