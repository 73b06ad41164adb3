package encoder

import (
	"context"

	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
)

// DefaultDimension is the embedding dimension of the positional encoder.
// Position/base pairs map to distinct coordinates for sequences up to 32
// symbols, which covers the fixed 20-symbol input length.
const DefaultDimension = 128

// PositionalEncoder is a deterministic offline encoder: each symbol becomes
// a one-hot vector whose coordinate is derived from its position and base.
// It is the startup fallback when the inference service is unreachable and
// the encoder used throughout the tests. One token per symbol, no external
// calls, bit-for-bit reproducible.
type PositionalEncoder struct {
	dimension int
}

// NewPositionalEncoder creates a positional encoder with DefaultDimension.
func NewPositionalEncoder() *PositionalEncoder {
	return &PositionalEncoder{dimension: DefaultDimension}
}

// Encode returns one one-hot vector per input symbol, raw-matrix shaped.
func (e *PositionalEncoder) Encode(_ context.Context, sequence string) (domain.EncoderOutput, error) {
	matrix := make(domain.EmbeddingMatrix, len(sequence))
	for i := 0; i < len(sequence); i++ {
		vector := make([]float32, e.dimension)
		vector[(i*len(domain.Alphabet)+baseIndex(sequence[i]))%e.dimension] = 1
		matrix[i] = vector
	}
	return domain.EncoderOutput{Kind: domain.OutputRawMatrix, Matrix: matrix}, nil
}

func baseIndex(b byte) int {
	for i, base := range domain.Alphabet {
		if b == base {
			return i
		}
	}
	// Out-of-alphabet symbols still get a stable coordinate.
	return int(b) % len(domain.Alphabet)
}
