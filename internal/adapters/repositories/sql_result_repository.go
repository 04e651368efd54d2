package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meeting-eval-service/internal/domain"
)

// Postgres-backed implementation of the ResultRepository port.
// Same contract as the SQLite variant; only placeholders and upsert syntax
// differ.
type SQLResultRepository struct{ DB *sql.DB }

func NewSQLResultRepository(db *sql.DB) *SQLResultRepository {
	return &SQLResultRepository{DB: db}
}

// Initialize the Postgres schema.
func InitSQLSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createResultsQuery := `
	CREATE TABLE IF NOT EXISTS results (
		sample_id TEXT NOT NULL,
		task TEXT NOT NULL,
		num_people INTEGER NOT NULL,
		candidate_score INTEGER NOT NULL,
		golden_score INTEGER NOT NULL,
		correct BOOLEAN NOT NULL,
		evaluated_at TIMESTAMPTZ NOT NULL,
		PRIMARY KEY (sample_id, task)
	);
	`

	if _, err := db.ExecContext(ctx, createResultsQuery); err != nil {
		return fmt.Errorf("init schema: create results table: %w", err)
	}

	return nil
}

func (s *SQLResultRepository) SaveResults(ctx context.Context, results []domain.Evaluation) error {
	if s.DB == nil {
		return errors.New("sql result repository: DB is nil")
	}

	if len(results) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save results: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO results (
		sample_id,
		task,
		num_people,
		candidate_score,
		golden_score,
		correct,
		evaluated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (sample_id, task) DO UPDATE SET
		num_people = EXCLUDED.num_people,
		candidate_score = EXCLUDED.candidate_score,
		golden_score = EXCLUDED.golden_score,
		correct = EXCLUDED.correct,
		evaluated_at = EXCLUDED.evaluated_at
	`)
	if err != nil {
		return fmt.Errorf("save results: prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.ExecContext(
			ctx,
			r.SampleID, r.Task, r.NumPeople,
			r.CandidateScore, r.GoldenScore, r.Correct, r.EvaluatedAt,
		); err != nil {
			return fmt.Errorf("save results: sample %q: %w", r.SampleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save results: commit: %w", err)
	}

	return nil
}

func (s *SQLResultRepository) ListResults(ctx context.Context) ([]domain.Evaluation, error) {
	if s.DB == nil {
		return nil, errors.New("sql result repository: DB is nil")
	}

	query := `
	SELECT
		sample_id,
		task,
		num_people,
		candidate_score,
		golden_score,
		correct,
		evaluated_at
	FROM results
	ORDER BY evaluated_at, sample_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list results: query results table: %w", err)
	}
	defer rows.Close()

	results := make([]domain.Evaluation, 0, 64)
	for rows.Next() {
		var r domain.Evaluation
		if err := rows.Scan(
			&r.SampleID, &r.Task, &r.NumPeople,
			&r.CandidateScore, &r.GoldenScore, &r.Correct, &r.EvaluatedAt,
		); err != nil {
			return nil, fmt.Errorf("list results: scan row: %w", err)
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list results: row iteration: %w", err)
	}

	return results, nil
}
