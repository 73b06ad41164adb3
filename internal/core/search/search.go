// Package search evaluates alternate bases at a diagnosed position and
// commits to the best-scoring substitution.
package search

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
	"github.com/Niteshdeva/GeneTrust/internal/core/score"
	"github.com/Niteshdeva/GeneTrust/internal/ports"
)

// Searcher performs the greedy single-position substitution search. Only the
// diagnosed position and single-symbol substitutions there are considered;
// joint multi-position search is explicitly out of scope.
type Searcher struct {
	scorer *score.Scorer
	logger ports.Logger
}

// NewSearcher creates a new substitution searcher.
func NewSearcher(scorer *score.Scorer, logger ports.Logger) (*Searcher, error) {
	if scorer == nil {
		return nil, errors.New("search: scorer is required")
	}
	if logger == nil {
		return nil, errors.New("search: logger is required")
	}
	return &Searcher{scorer: scorer, logger: logger}, nil
}

// Search scores every alternate base at pos by re-embedding the whole
// mutated sequence (embeddings are contextual, so one substitution can shift
// every vector). Bases are tried in the fixed alphabet order with the
// original skipped; ties resolve to the earlier base. A proposal is always
// returned, even when every alternative scores below the original - the
// caller compares scores to decide whether to report "already optimal".
func (s *Searcher) Search(ctx context.Context, sequence domain.Sequence, pos int, profile domain.ReferenceProfile) (domain.EditProposal, error) {
	if pos < 0 || pos >= domain.SequenceLength {
		return domain.EditProposal{}, fmt.Errorf("search: position %d out of range", pos)
	}

	original := sequence.Base(pos)
	best := domain.EditProposal{
		Position:     pos,
		OriginalBase: original,
		Score:        math.Inf(-1),
	}

	for _, base := range domain.Alphabet {
		if base == original {
			continue
		}
		mutated := sequence.Mutate(pos, base)
		candidateScore, err := s.scorer.Score(ctx, mutated.String(), profile)
		if err != nil {
			return domain.EditProposal{}, fmt.Errorf("search: scoring %s: %w", mutated, err)
		}
		if candidateScore > best.Score {
			best.ProposedBase = base
			best.Score = candidateScore
		}
	}

	s.logger.Debug("Selected substitution",
		"position", pos,
		"original_base", string(original),
		"proposed_base", string(best.ProposedBase),
		"score", best.Score,
	)
	return best, nil
}
