package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite database schema.
func InitSqliteSchema(db *sql.DB) error {
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
		correct INTEGER NOT NULL,
		evaluated_at TIMESTAMP NOT NULL,
		PRIMARY KEY (sample_id, task)
	);
	`

	if _, err := db.Exec(createResultsQuery); err != nil {
		return fmt.Errorf("init schema: create results table: %w", err)
	}

	return nil
}
