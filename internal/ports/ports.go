package ports

import (
	"context"
	"io"

	"github.com/csg33k/underwriteai/internal/domain"
)

// SubmissionRepository defines persistence operations.
type SubmissionRepository interface {
	// List returns every submission in insertion order.
	List(ctx context.Context) ([]domain.Submission, error)
	// Create assigns the id, submitted-at time and pending status, stores
	// the record and returns it.
	Create(ctx context.Context, s domain.Submission) (domain.Submission, error)
	// Get returns the submission for id.
	Get(ctx context.Context, id string) (domain.Submission, error)
	// Update applies u to the submission for id and returns the result.
	Update(ctx context.Context, id string, u domain.SubmissionUpdate) (domain.Submission, error)
}

// ExtractionService pulls applicant data out of uploaded documents.
type ExtractionService interface {
	Extract(ctx context.Context, docs []domain.DocumentRef) (domain.ExtractedData, error)
}

// ScoringService produces a risk assessment for extracted applicant data.
type ScoringService interface {
	Score(ctx context.Context, data domain.ExtractedData) (domain.RiskAssessment, error)
}

// SettingsStore holds the underwriter preferences.
type SettingsStore interface {
	Get(ctx context.Context) (domain.Settings, error)
	Save(ctx context.Context, s domain.Settings) error
}

// ReportGenerator defines the PDF output port.
type ReportGenerator interface {
	// SubmissionReport writes the risk assessment report for one submission.
	SubmissionReport(s *domain.Submission, w io.Writer) error
	// Summary writes the underwriting summary built from the reports page data.
	Summary(metrics []domain.StatCard, buckets []domain.RiskBucket, w io.Writer) error
}
