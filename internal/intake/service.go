// Package intake runs uploaded documents through extraction and scoring.
package intake

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/csg33k/underwriteai/internal/domain"
	"github.com/csg33k/underwriteai/internal/ports"
)

// Result is one extraction plus scoring round trip.
type Result struct {
	ProcessingID   string                `json:"processingId"`
	Documents      []domain.DocumentRef  `json:"documents"`
	ExtractedData  domain.ExtractedData  `json:"extractedData"`
	RiskAssessment domain.RiskAssessment `json:"riskAssessment"`
	Elapsed        time.Duration         `json:"-"`
}

// Submission converts the result into a new submission for the repository.
func (r Result) Submission() domain.Submission {
	ra := r.RiskAssessment
	return domain.FromExtraction(r.ExtractedData, &ra, r.Documents)
}

type Service struct {
	extractor ports.ExtractionService
	scorer    ports.ScoringService
	log       *slog.Logger
}

func New(extractor ports.ExtractionService, scorer ports.ScoringService, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{extractor: extractor, scorer: scorer, log: log}
}

// Process extracts applicant data from docs and scores it. Scoring starts
// only after extraction has finished.
func (s *Service) Process(ctx context.Context, docs []domain.DocumentRef) (Result, error) {
	res := Result{
		ProcessingID: uuid.NewString(),
		Documents:    docs,
	}
	if res.Documents == nil {
		res.Documents = []domain.DocumentRef{}
	}
	for i := range res.Documents {
		if res.Documents[i].ID == "" {
			res.Documents[i].ID = uuid.NewString()
		}
	}
	log := s.log.With("processing_id", res.ProcessingID, "documents", len(res.Documents))
	start := time.Now()

	extracted, err := s.extractor.Extract(ctx, res.Documents)
	if err != nil {
		log.WarnContext(ctx, "extraction failed", "err", err)
		return Result{}, fmt.Errorf("extract documents: %w", err)
	}
	res.ExtractedData = extracted

	assessment, err := s.scorer.Score(ctx, extracted)
	if err != nil {
		log.WarnContext(ctx, "scoring failed", "err", err)
		return Result{}, fmt.Errorf("score application: %w", err)
	}
	res.RiskAssessment = assessment
	res.Elapsed = time.Since(start)

	log.InfoContext(ctx, "documents processed",
		"risk_score", assessment.RiskScore,
		"risk_level", assessment.RiskLevel,
		"duration", res.Elapsed,
	)
	return res, nil
}
