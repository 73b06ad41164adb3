package ports

import (
	"context"

	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
)

// SequenceEncoder defines the interface to the external sequence encoder.
// Implementations run a frozen model: for the same sequence and the same
// weights the output is reproducible. The raw output shape varies between
// encoder builds; callers normalize it through the embedding extractor.
type SequenceEncoder interface {
	Encode(ctx context.Context, sequence string) (domain.EncoderOutput, error)
}
