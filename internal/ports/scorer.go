package ports

import "context"

// SequenceScorer defines the interface for computing a whole-sequence
// similarity score against a fixed reference profile.
type SequenceScorer interface {
	Score(ctx context.Context, sequence string) (float64, error)
}
