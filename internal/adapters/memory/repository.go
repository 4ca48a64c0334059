// Package memory is the default submission store: an ordered in-memory list
// that lives as long as the process. Detail lookups and updates mirror the
// demo behaviour the dashboard was built against: Get serves one fixed record
// for every id and Update is never written back.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/csg33k/underwriteai/internal/domain"
	"github.com/csg33k/underwriteai/internal/mockdata"
)

type Repository struct {
	mu          sync.Mutex
	submissions []domain.Submission
	now         func() time.Time
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock replaces time.Now for submitted-at and updated-at stamps.
func WithClock(now func() time.Time) Option {
	return func(r *Repository) { r.now = now }
}

// New returns a store holding seed, in order.
func New(seed []domain.Submission, opts ...Option) *Repository {
	r := &Repository{now: time.Now}
	for _, s := range seed {
		r.submissions = append(r.submissions, clone(s))
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// NewSeeded returns a store holding the two sample submissions.
func NewSeeded(opts ...Option) *Repository {
	return New(mockdata.SeedSubmissions(), opts...)
}

func (r *Repository) List(ctx context.Context) ([]domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Submission, len(r.submissions))
	for i, s := range r.submissions {
		out[i] = clone(s)
	}
	return out, nil
}

// Create numbers the new record after the current store size. The lock
// covers both the size read and the append, so concurrent creates get
// distinct ids.
func (r *Repository) Create(ctx context.Context, s domain.Submission) (domain.Submission, error) {
	if err := ctx.Err(); err != nil {
		return domain.Submission{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	s.ID = domain.FormatSubmissionID(len(r.submissions) + 1)
	s.SubmittedAt = &now
	s.Status = domain.StatusPending
	s.UpdatedAt = nil
	s.AuditTrail = append(slices.Clone(s.AuditTrail), domain.AuditEntry{
		Timestamp: now,
		Action:    "Submission created",
		User:      "System",
		Details:   "Application submitted via web portal",
	})
	r.submissions = append(r.submissions, clone(s))
	return s, nil
}

// Get does not consult the store; every id resolves to the sample detail
// record carrying the requested id.
func (r *Repository) Get(ctx context.Context, id string) (domain.Submission, error) {
	return mockdata.SubmissionDetail(id), nil
}

// Update applies u to a record carrying only id and returns it. Nothing is
// stored.
func (r *Repository) Update(ctx context.Context, id string, u domain.SubmissionUpdate) (domain.Submission, error) {
	if err := u.Validate(); err != nil {
		return domain.Submission{}, err
	}
	s := domain.Submission{ID: id}
	u.Apply(&s, r.now().UTC())
	return s, nil
}

func clone(s domain.Submission) domain.Submission {
	s.MedicalConditions = slices.Clone(s.MedicalConditions)
	s.AuditTrail = slices.Clone(s.AuditTrail)
	if s.Documents != nil {
		d := *s.Documents
		d.Items = slices.Clone(d.Items)
		s.Documents = &d
	}
	if s.RiskAssessment != nil {
		ra := *s.RiskAssessment
		ra.Factors = slices.Clone(ra.Factors)
		s.RiskAssessment = &ra
	}
	return s
}
