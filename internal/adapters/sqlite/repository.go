package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	_ "github.com/mattn/go-sqlite3"

	"github.com/csg33k/underwriteai/internal/domain"
)

// Repository is the persistent submission store. Unlike the in-memory demo
// store it looks records up by id and writes updates back.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// New opens the SQLite database at dsn, creates the schema if needed and
// seeds it with seed when the submissions table is empty.
func New(ctx context.Context, dsn string, seed []domain.Submission) (*Repository, error) {
	db, err := sql.Open("sqlite3", dsn+"?_foreign_keys=on")
	if err != nil {
		return nil, err
	}
	// SQLite allows one writer; a single connection also keeps ":memory:"
	// databases alive across calls.
	db.SetMaxOpenConns(1)

	r := &Repository{db: db, now: time.Now}
	if err := createSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	if err := r.seed(ctx, seed); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed: %w", err)
	}
	return r, nil
}

// Close releases the database handle.
func (r *Repository) Close() error { return r.db.Close() }

// Ping checks the database is reachable.
func (r *Repository) Ping(ctx context.Context) error { return r.db.PingContext(ctx) }

func (r *Repository) seed(ctx context.Context, seed []domain.Submission) error {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	for i := range seed {
		if err := insertSubmission(ctx, tx, &seed[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ── Submissions ───────────────────────────────────────────────────────────────

func (r *Repository) List(ctx context.Context) ([]domain.Submission, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+submissionColumns+` FROM submissions ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []domain.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *Repository) Create(ctx context.Context, s domain.Submission) (domain.Submission, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Submission{}, err
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM submissions`).Scan(&n); err != nil {
		return domain.Submission{}, err
	}
	now := r.now().UTC()
	s.ID = domain.FormatSubmissionID(n + 1)
	s.SubmittedAt = &now
	s.UpdatedAt = nil
	s.Status = domain.StatusPending
	s.AuditTrail = append(s.AuditTrail, domain.AuditEntry{
		Timestamp: now,
		Action:    "Submission created",
		User:      "System",
		Details:   "Application submitted via web portal",
	})
	if err := insertSubmission(ctx, tx, &s); err != nil {
		return domain.Submission{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Submission{}, err
	}
	return s, nil
}

func (r *Repository) Get(ctx context.Context, id string) (domain.Submission, error) {
	return getSubmission(ctx, r.db, id)
}

// Update validates the status change against the stored status, applies the
// fields and records an audit entry when the status moves.
func (r *Repository) Update(ctx context.Context, id string, u domain.SubmissionUpdate) (domain.Submission, error) {
	if err := u.Validate(); err != nil {
		return domain.Submission{}, err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Submission{}, err
	}
	defer tx.Rollback()

	s, err := getSubmission(ctx, tx, id)
	if err != nil {
		return domain.Submission{}, err
	}
	from := s.Status
	if u.Status != nil {
		if err := domain.CheckTransition(from, *u.Status); err != nil {
			return domain.Submission{}, err
		}
	}
	now := r.now().UTC()
	u.Apply(&s, now)

	medical, err := json.Marshal(emptyIfNil(s.MedicalConditions))
	if err != nil {
		return domain.Submission{}, err
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE submissions
		SET applicant_name=?, date_of_birth=?, occupation=?, smoker=?,
		    medical_conditions=?, coverage_amount=?, insurance_type=?,
		    status=?, risk_score=?, decision_notes=?, updated_at=?
		WHERE id=?`,
		s.ApplicantName, s.DateOfBirth, s.Occupation, boolToInt(s.Smoker),
		string(medical), s.CoverageAmount, string(s.InsuranceType),
		string(s.Status), s.RiskScore, s.DecisionNotes, now,
		id,
	)
	if err != nil {
		return domain.Submission{}, err
	}
	if s.Status != from {
		entry := domain.AuditEntry{
			Timestamp: now,
			Action:    "Status changed",
			User:      "Underwriter",
			Details:   fmt.Sprintf("%s -> %s", from, s.Status),
		}
		if err := insertAudit(ctx, tx, id, entry); err != nil {
			return domain.Submission{}, err
		}
		s.AuditTrail = append(s.AuditTrail, entry)
	}
	if err := tx.Commit(); err != nil {
		return domain.Submission{}, err
	}
	return s, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}

const submissionColumns = `
	id, applicant_name, date_of_birth, occupation, smoker,
	medical_conditions, coverage_amount, insurance_type,
	submitted_at, updated_at, status, documents,
	risk_score, risk_assessment, decision_notes`

func getSubmission(ctx context.Context, q querier, id string) (domain.Submission, error) {
	s, err := scanSubmission(q.QueryRowContext(ctx, `SELECT `+submissionColumns+` FROM submissions WHERE id=?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Submission{}, fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}
	if err != nil {
		return domain.Submission{}, err
	}

	rows, err := q.QueryContext(ctx, `
		SELECT timestamp, action, actor, details
		FROM audit_entries WHERE submission_id=? ORDER BY id`, id)
	if err != nil {
		return domain.Submission{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var e domain.AuditEntry
		if err := rows.Scan(&e.Timestamp, &e.Action, &e.User, &e.Details); err != nil {
			return domain.Submission{}, err
		}
		s.AuditTrail = append(s.AuditTrail, e)
	}
	return s, rows.Err()
}

func scanSubmission(row scanner) (domain.Submission, error) {
	var (
		s                         domain.Submission
		smoker                    int
		medical                   string
		insuranceType, status     string
		submittedAt, updatedAt    sql.NullTime
		documents, riskAssessment sql.NullString
	)
	err := row.Scan(
		&s.ID, &s.ApplicantName, &s.DateOfBirth, &s.Occupation, &smoker,
		&medical, &s.CoverageAmount, &insuranceType,
		&submittedAt, &updatedAt, &status, &documents,
		&s.RiskScore, &riskAssessment, &s.DecisionNotes,
	)
	if err != nil {
		return domain.Submission{}, err
	}
	s.Smoker = smoker == 1
	s.InsuranceType = domain.InsuranceType(insuranceType)
	s.Status = domain.Status(status)
	if submittedAt.Valid {
		s.SubmittedAt = &submittedAt.Time
	}
	if updatedAt.Valid {
		s.UpdatedAt = &updatedAt.Time
	}
	if err := json.Unmarshal([]byte(medical), &s.MedicalConditions); err != nil {
		return domain.Submission{}, fmt.Errorf("medical_conditions for %s: %w", s.ID, err)
	}
	if documents.Valid {
		s.Documents = &domain.Documents{}
		if err := json.Unmarshal([]byte(documents.String), s.Documents); err != nil {
			return domain.Submission{}, fmt.Errorf("documents for %s: %w", s.ID, err)
		}
	}
	if riskAssessment.Valid {
		s.RiskAssessment = &domain.RiskAssessment{}
		if err := json.Unmarshal([]byte(riskAssessment.String), s.RiskAssessment); err != nil {
			return domain.Submission{}, fmt.Errorf("risk_assessment for %s: %w", s.ID, err)
		}
	}
	return s, nil
}

func insertSubmission(ctx context.Context, q querier, s *domain.Submission) error {
	medical, err := json.Marshal(emptyIfNil(s.MedicalConditions))
	if err != nil {
		return err
	}
	var documents, riskAssessment sql.NullString
	if s.Documents != nil {
		b, err := json.Marshal(s.Documents)
		if err != nil {
			return err
		}
		documents = sql.NullString{String: string(b), Valid: true}
	}
	if s.RiskAssessment != nil {
		b, err := json.Marshal(s.RiskAssessment)
		if err != nil {
			return err
		}
		riskAssessment = sql.NullString{String: string(b), Valid: true}
	}
	_, err = q.ExecContext(ctx, `
		INSERT INTO submissions (
			id, applicant_name, date_of_birth, occupation, smoker,
			medical_conditions, coverage_amount, insurance_type,
			submitted_at, updated_at, status, documents,
			risk_score, risk_assessment, decision_notes
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		s.ID, s.ApplicantName, s.DateOfBirth, s.Occupation, boolToInt(s.Smoker),
		string(medical), s.CoverageAmount, string(s.InsuranceType),
		nullTime(s.SubmittedAt), nullTime(s.UpdatedAt), string(s.Status), documents,
		s.RiskScore, riskAssessment, s.DecisionNotes,
	)
	if err != nil {
		return err
	}
	for _, e := range s.AuditTrail {
		if err := insertAudit(ctx, q, s.ID, e); err != nil {
			return err
		}
	}
	return nil
}

func insertAudit(ctx context.Context, q querier, submissionID string, e domain.AuditEntry) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO audit_entries (submission_id, timestamp, action, actor, details)
		VALUES (?,?,?,?,?)`,
		submissionID, e.Timestamp, e.Action, e.User, e.Details,
	)
	return err
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
