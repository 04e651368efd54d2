package travel

import (
	"errors"
	"testing"

	"meeting-eval-service/internal/domain"
)

func TestMatrixProviderLookup(t *testing.T) {
	provider := NewMatrixProvider(map[string]map[string]int{
		"A": {"B": 7},
		"B": {"A": 9},
	})

	minutes, err := provider.TravelMinutes("A", "B")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if minutes != 7 {
		t.Fatalf("minutes = %d, want 7", minutes)
	}

	// The matrix is directional; the reverse pair has its own value.
	back, err := provider.TravelMinutes("B", "A")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if back != 9 {
		t.Fatalf("minutes = %d, want 9", back)
	}
}

func TestMatrixProviderMissingPair(t *testing.T) {
	provider := NewMatrixProvider(map[string]map[string]int{
		"A": {"B": 7},
	})

	if _, err := provider.TravelMinutes("A", "C"); !errors.Is(err, domain.ErrMissingDistance) {
		t.Fatalf("expected ErrMissingDistance, got %v", err)
	}
	if _, err := provider.TravelMinutes("C", "A"); !errors.Is(err, domain.ErrMissingDistance) {
		t.Fatalf("expected ErrMissingDistance, got %v", err)
	}
}
