package ports

import (
	"context"

	"meeting-eval-service/internal/domain"
)

// Port: a cache of replay scores keyed by sample fingerprint. Replays are
// deterministic, so a cached pair is always as good as a fresh one.
type ScoreCache interface {
	// Return the cached scores for key. ok is false on a miss.
	Get(ctx context.Context, key string) (scores domain.ScorePair, ok bool, err error)
	// Store the scores for key.
	Put(ctx context.Context, key string, scores domain.ScorePair) error
}
