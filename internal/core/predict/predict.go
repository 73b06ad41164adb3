// Package predict chains the core components into the end-to-end edit
// prediction: baseline score, position diagnosis, substitution search,
// result assembly.
package predict

import (
	"context"
	"errors"
	"fmt"

	"github.com/Niteshdeva/GeneTrust/internal/core/diagnose"
	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
	"github.com/Niteshdeva/GeneTrust/internal/core/embed"
	"github.com/Niteshdeva/GeneTrust/internal/core/score"
	"github.com/Niteshdeva/GeneTrust/internal/core/search"
	"github.com/Niteshdeva/GeneTrust/internal/ports"
)

// Messages surfaced to clients. The edited score decides which one applies.
const (
	msgImproves       = "🔼 Editing improves similarity from %d%% to %d%%"
	msgAlreadyOptimal = "✅ Sequence is already optimal (similarity: %d%%)"
)

// Predictor runs the full prediction chain. Each call performs five encoder
// invocations (baseline, diagnosis, three search candidates), strictly
// sequentially; all per-call state is locally owned, so independent
// predictions may run concurrently against the same shared profile.
type Predictor struct {
	extractor *embed.Extractor
	diagnoser *diagnose.Diagnoser
	searcher  *search.Searcher
	scorer    *score.Scorer
	logger    ports.Logger
}

// NewPredictor creates a new end-to-end predictor.
func NewPredictor(
	extractor *embed.Extractor,
	diagnoser *diagnose.Diagnoser,
	searcher *search.Searcher,
	scorer *score.Scorer,
	logger ports.Logger,
) (*Predictor, error) {
	if extractor == nil || diagnoser == nil || searcher == nil || scorer == nil {
		return nil, errors.New("predict: all components are required")
	}
	if logger == nil {
		return nil, errors.New("predict: logger is required")
	}
	return &Predictor{
		extractor: extractor,
		diagnoser: diagnoser,
		searcher:  searcher,
		scorer:    scorer,
		logger:    logger,
	}, nil
}

// Predict proposes the best single-base substitution for the sequence.
// Either a complete result is returned or an error; no partial results.
//
// The diagnosed token index is used directly as a character index into the
// sequence. With sub-word tokenization the two could in principle diverge;
// alignment is assumed, not verified.
func (p *Predictor) Predict(ctx context.Context, sequence domain.Sequence, profile domain.ReferenceProfile) (domain.PredictionResult, error) {
	originalScore, err := p.scorer.Score(ctx, sequence.String(), profile)
	if err != nil {
		return domain.PredictionResult{}, err
	}

	matrix, err := p.extractor.Embed(ctx, sequence.String())
	if err != nil {
		return domain.PredictionResult{}, err
	}
	position, err := p.diagnoser.Diagnose(matrix, profile)
	if err != nil {
		return domain.PredictionResult{}, err
	}

	proposal, err := p.searcher.Search(ctx, sequence, position, profile)
	if err != nil {
		return domain.PredictionResult{}, err
	}
	edited := sequence.Mutate(proposal.Position, proposal.ProposedBase)

	efficiency := domain.Percent(proposal.Score)
	originalEfficiency := domain.Percent(originalScore)

	var message string
	if proposal.Score > originalScore {
		message = fmt.Sprintf(msgImproves, originalEfficiency, efficiency)
	} else {
		message = fmt.Sprintf(msgAlreadyOptimal, originalEfficiency)
	}

	p.logger.Info("Prediction complete",
		"original", sequence.String(),
		"edited", edited.String(),
		"position", proposal.Position,
		"original_score", originalScore,
		"edited_score", proposal.Score,
	)

	return domain.PredictionResult{
		OriginalSequence:   sequence.String(),
		EditedSequence:     edited.String(),
		ChangeIndicator:    domain.ChangeIndicator(proposal.Position),
		Efficiency:         efficiency,
		ChangedPosition:    proposal.Position + 1,
		OriginalBase:       string(proposal.OriginalBase),
		NewBase:            string(proposal.ProposedBase),
		Message:            message,
		OriginalEfficiency: originalEfficiency,
	}, nil
}
