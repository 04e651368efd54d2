package ports

import (
	"context"

	"meeting-eval-service/internal/domain"
)

// Port: a boundary for persisting and retrieving sample evaluations.
type ResultRepository interface {
	// Persist a batch of evaluations.
	SaveResults(ctx context.Context, results []domain.Evaluation) error
	// Retrieve all stored evaluations, oldest first.
	ListResults(ctx context.Context) ([]domain.Evaluation, error)
}
