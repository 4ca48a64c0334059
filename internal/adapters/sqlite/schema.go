package sqlite

import (
	"context"
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	seq                INTEGER PRIMARY KEY AUTOINCREMENT,
	id                 TEXT    NOT NULL UNIQUE,
	applicant_name     TEXT    NOT NULL DEFAULT '',
	date_of_birth      TEXT    NOT NULL DEFAULT '',
	occupation         TEXT    NOT NULL DEFAULT '',
	smoker             INTEGER NOT NULL DEFAULT 0,
	medical_conditions TEXT    NOT NULL DEFAULT '[]',
	coverage_amount    REAL    NOT NULL DEFAULT 0,
	insurance_type     TEXT    NOT NULL DEFAULT '',
	submitted_at       TIMESTAMP,
	updated_at         TIMESTAMP,
	status             TEXT    NOT NULL,
	documents          TEXT,
	risk_score         INTEGER NOT NULL DEFAULT 0,
	risk_assessment    TEXT,
	decision_notes     TEXT    NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS audit_entries (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	submission_id TEXT      NOT NULL REFERENCES submissions(id) ON DELETE CASCADE,
	timestamp     TIMESTAMP NOT NULL,
	action        TEXT      NOT NULL,
	actor         TEXT      NOT NULL DEFAULT '',
	details       TEXT      NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_audit_submission ON audit_entries(submission_id);
`

// createSchema is idempotent so the server can start against a fresh or an
// existing database file.
func createSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
