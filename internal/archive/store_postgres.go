package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Schema is the DDL the Postgres store expects. Applied at startup when the
// store is configured; idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS validation_reports (
	id            UUID PRIMARY KEY,
	overall_valid BOOLEAN     NOT NULL,
	observations  JSONB       NOT NULL,
	evaluated_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS validation_reports_evaluated_at_idx
	ON validation_reports (evaluated_at DESC);
`

// PostgresStore persists records in PostgreSQL via database/sql (pgx stdlib
// driver).
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema applies the table DDL.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply archive schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) Append(ctx context.Context, record Record) error {
	observations, err := json.Marshal(record.Observations)
	if err != nil {
		return fmt.Errorf("marshal observations: %w", err)
	}

	const query = `
		INSERT INTO validation_reports (id, overall_valid, observations, evaluated_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := s.db.ExecContext(ctx, query,
		record.ID, record.OverallValid, observations, record.EvaluatedAt,
	); err != nil {
		return fmt.Errorf("append validation report: %w", err)
	}
	return nil
}

func (s *PostgresStore) ListRecent(ctx context.Context, limit int) ([]Record, error) {
	const query = `
		SELECT id, overall_valid, observations, evaluated_at
		FROM validation_reports
		ORDER BY evaluated_at DESC
		LIMIT $1
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list validation reports: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			record       Record
			id           string
			observations []byte
		)
		if err := rows.Scan(&id, &record.OverallValid, &observations, &record.EvaluatedAt); err != nil {
			return nil, fmt.Errorf("scan validation report: %w", err)
		}
		record.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse report id: %w", err)
		}
		if err := json.Unmarshal(observations, &record.Observations); err != nil {
			return nil, fmt.Errorf("unmarshal observations: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
