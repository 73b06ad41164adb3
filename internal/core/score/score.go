// Package score computes whole-sequence similarity against the reference
// profile: embed, mean-pool, cosine against the mean-pooled profile.
package score

import (
	"context"
	"errors"

	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
	"github.com/Niteshdeva/GeneTrust/internal/core/embed"
	"github.com/Niteshdeva/GeneTrust/internal/core/vecmath"
	"github.com/Niteshdeva/GeneTrust/internal/ports"
)

// Scorer computes the whole-sequence similarity score. It is a pure function
// of its inputs and is used both for baseline scoring and inside the
// substitution search.
type Scorer struct {
	extractor *embed.Extractor
	logger    ports.Logger
}

// NewScorer creates a new scorer.
func NewScorer(extractor *embed.Extractor, logger ports.Logger) (*Scorer, error) {
	if extractor == nil {
		return nil, errors.New("score: extractor is required")
	}
	if logger == nil {
		return nil, errors.New("score: logger is required")
	}
	return &Scorer{extractor: extractor, logger: logger}, nil
}

// Score embeds the sequence, mean-pools it over the token axis and returns
// the cosine similarity to the mean-pooled reference profile.
func (s *Scorer) Score(ctx context.Context, sequence string, profile domain.ReferenceProfile) (float64, error) {
	matrix, err := s.extractor.Embed(ctx, sequence)
	if err != nil {
		return 0, err
	}
	pooled := vecmath.MeanPool(matrix)
	sim := vecmath.Cosine(pooled, profile.Pooled())
	s.logger.Debug("Scored sequence",
		"sequence", sequence,
		"score", sim,
	)
	return sim, nil
}
