package travel

import (
	"fmt"

	"meeting-eval-service/internal/domain"
)

// In-memory TravelTimeProvider backed by a sample's distance matrix.
// The matrix maps origin -> destination -> minutes and is provided with the
// dataset, never computed. A missing pair surfaces as ErrMissingDistance
// rather than defaulting to zero.
type MatrixProvider struct {
	matrix map[string]map[string]int
}

func NewMatrixProvider(matrix map[string]map[string]int) *MatrixProvider {
	return &MatrixProvider{matrix: matrix}
}

func (p *MatrixProvider) TravelMinutes(origin, destination string) (int, error) {
	row, ok := p.matrix[origin]
	if !ok {
		return 0, fmt.Errorf("travel minutes: %w: no entries from %q", domain.ErrMissingDistance, origin)
	}

	minutes, ok := row[destination]
	if !ok {
		return 0, fmt.Errorf("travel minutes: %w: %q -> %q", domain.ErrMissingDistance, origin, destination)
	}

	return minutes, nil
}
