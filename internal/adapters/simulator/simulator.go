// Package simulator stands in for the document extraction and risk scoring
// engines. Both return fixed sample results after a configurable delay.
package simulator

import (
	"context"
	"time"

	"github.com/csg33k/underwriteai/internal/domain"
	"github.com/csg33k/underwriteai/internal/mockdata"
)

const (
	DefaultExtractionDelay = 1200 * time.Millisecond
	DefaultScoringDelay    = 800 * time.Millisecond
)

// Extractor simulates OCR and field extraction.
type Extractor struct {
	Delay time.Duration
}

func NewExtractor(delay time.Duration) *Extractor { return &Extractor{Delay: delay} }

// Extract ignores the documents and returns the sample extraction.
func (e *Extractor) Extract(ctx context.Context, _ []domain.DocumentRef) (domain.ExtractedData, error) {
	if err := wait(ctx, e.Delay); err != nil {
		return domain.ExtractedData{}, err
	}
	return mockdata.Extraction(), nil
}

// Scorer simulates the risk model.
type Scorer struct {
	Delay time.Duration
}

func NewScorer(delay time.Duration) *Scorer { return &Scorer{Delay: delay} }

// Score ignores its input and returns the sample assessment.
func (s *Scorer) Score(ctx context.Context, _ domain.ExtractedData) (domain.RiskAssessment, error) {
	if err := wait(ctx, s.Delay); err != nil {
		return domain.RiskAssessment{}, err
	}
	return mockdata.RiskAssessment(), nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
