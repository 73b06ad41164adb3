// Package profile builds the reference profile: the aggregated,
// length-normalized target representation every prediction scores against.
package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
	"github.com/Niteshdeva/GeneTrust/internal/core/embed"
	"github.com/Niteshdeva/GeneTrust/internal/core/vecmath"
	"github.com/Niteshdeva/GeneTrust/internal/ports"
)

// Builder aggregates reference sequence embeddings into a ReferenceProfile.
// Build runs exactly once at startup; the resulting profile is immutable for
// the process lifetime.
type Builder struct {
	extractor *embed.Extractor
	logger    ports.Logger
}

// NewBuilder creates a new profile builder.
func NewBuilder(extractor *embed.Extractor, logger ports.Logger) (*Builder, error) {
	if extractor == nil {
		return nil, errors.New("profile: extractor is required")
	}
	if logger == nil {
		return nil, errors.New("profile: logger is required")
	}
	return &Builder{extractor: extractor, logger: logger}, nil
}

// Build embeds every reference independently, zero-pads each matrix's tail
// to the max token count L, and averages position-wise across references.
func (b *Builder) Build(ctx context.Context, references []domain.Sequence) (domain.ReferenceProfile, error) {
	if len(references) == 0 {
		return domain.ReferenceProfile{}, errors.New("profile: at least one reference sequence is required")
	}

	matrices := make([]domain.EmbeddingMatrix, 0, len(references))
	maxLen := 0
	dim := 0
	for _, ref := range references {
		matrix, err := b.extractor.Embed(ctx, ref.String())
		if err != nil {
			return domain.ReferenceProfile{}, fmt.Errorf("profile: embedding reference %s: %w", ref, err)
		}
		if len(matrix) > maxLen {
			maxLen = len(matrix)
		}
		if dim == 0 {
			dim = len(matrix[0])
		}
		matrices = append(matrices, matrix)
	}

	stack := make([][][]float32, len(matrices))
	for i, m := range matrices {
		stack[i] = vecmath.PadRows(m, maxLen, dim)
	}
	aggregated := vecmath.MeanStack(stack)
	pooled := vecmath.MeanPool(aggregated)

	b.logger.Info("Built reference profile",
		"references", len(references),
		"positions", maxLen,
		"dimension", dim,
	)

	return domain.NewReferenceProfile(aggregated, pooled), nil
}
