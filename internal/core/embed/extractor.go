// Package embed turns raw encoder output into the canonical per-token
// embedding matrix the rest of the core works with.
package embed

import (
	"context"
	"errors"
	"fmt"

	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
	"github.com/Niteshdeva/GeneTrust/internal/ports"
)

// Extractor calls the external sequence encoder and normalizes its output
// shape. It performs no caching: every mutation must be reflected by a fresh
// encoder call, and re-embedding is cheap relative to correctness.
type Extractor struct {
	encoder ports.SequenceEncoder
	logger  ports.Logger
}

// NewExtractor creates a new embedding extractor.
func NewExtractor(encoder ports.SequenceEncoder, logger ports.Logger) (*Extractor, error) {
	if encoder == nil {
		return nil, errors.New("embed: encoder is required")
	}
	if logger == nil {
		return nil, errors.New("embed: logger is required")
	}
	return &Extractor{encoder: encoder, logger: logger}, nil
}

// Embed encodes the sequence and returns one vector per encoder token.
func (e *Extractor) Embed(ctx context.Context, sequence string) (domain.EmbeddingMatrix, error) {
	out, err := e.encoder.Encode(ctx, sequence)
	if err != nil {
		return nil, fmt.Errorf("embed: encoder failed: %w", err)
	}
	matrix, err := Normalize(out)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("Extracted token embeddings",
		"sequence", sequence,
		"tokens", len(matrix),
	)
	return matrix, nil
}

// Normalize collapses the three encoder output shapes into one canonical
// token matrix, dropping the leading batch dimension where present.
func Normalize(out domain.EncoderOutput) (domain.EmbeddingMatrix, error) {
	var matrix domain.EmbeddingMatrix
	switch out.Kind {
	case domain.OutputHiddenStateTuple:
		if len(out.Batched) == 0 {
			return nil, errors.New("embed: tuple output has no hidden states")
		}
		matrix = out.Batched[0]
	case domain.OutputLastHiddenState:
		if len(out.Batched) == 0 {
			return nil, errors.New("embed: last-hidden-state output is empty")
		}
		matrix = out.Batched[0]
	case domain.OutputRawMatrix:
		matrix = out.Matrix
	default:
		return nil, fmt.Errorf("embed: unknown encoder output kind %d", out.Kind)
	}
	if len(matrix) == 0 {
		return nil, errors.New("embed: encoder returned no token vectors")
	}
	return matrix, nil
}
