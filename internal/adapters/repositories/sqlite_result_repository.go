package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"meeting-eval-service/internal/domain"
)

// SQLite-backed implementation of the ResultRepository port.
type SqliteResultRepository struct{ DB *sql.DB }

func NewSqliteResultRepository(db *sql.DB) *SqliteResultRepository {
	return &SqliteResultRepository{DB: db}
}

// Store a batch of evaluations, replacing earlier rows for the same sample.
func (s *SqliteResultRepository) SaveResults(ctx context.Context, results []domain.Evaluation) error {
	if s.DB == nil {
		return errors.New("sqlite result repository: DB is nil")
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
	INSERT OR REPLACE INTO results (
		sample_id,
		task,
		num_people,
		candidate_score,
		golden_score,
		correct,
		evaluated_at
	)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("save results: prepare: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		correct := 0
		if r.Correct {
			correct = 1
		}
		if _, err := stmt.ExecContext(
			ctx,
			r.SampleID, r.Task, r.NumPeople,
			r.CandidateScore, r.GoldenScore, correct, r.EvaluatedAt,
		); err != nil {
			return fmt.Errorf("save results: sample %q: %w", r.SampleID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save results: commit: %w", err)
	}

	return nil
}

// Return all stored evaluations, oldest first.
func (s *SqliteResultRepository) ListResults(ctx context.Context) ([]domain.Evaluation, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite result repository: DB is nil")
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
		var correct int
		if err := rows.Scan(
			&r.SampleID, &r.Task, &r.NumPeople,
			&r.CandidateScore, &r.GoldenScore, &correct, &r.EvaluatedAt,
		); err != nil {
			return nil, fmt.Errorf("list results: scan row: %w", err)
		}
		r.Correct = correct != 0
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list results: row iteration: %w", err)
	}

	return results, nil
}
