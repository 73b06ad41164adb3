package normalizer

import "github.com/Niteshdeva/GeneTrust/internal/ports"

// NormalizerType identifies a normalization strategy.
type NormalizerType int

const (
	// DefaultNormalizerType is the unicode-aware upper-casing strategy.
	DefaultNormalizerType NormalizerType = iota
	// OptimizedNormalizerType is the pooled ASCII fast-path strategy.
	OptimizedNormalizerType
)

// NormalizerFactory creates normalizers by type.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory.
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// CreateNormalizer returns a normalizer of the requested type.
func (f *NormalizerFactory) CreateNormalizer(t NormalizerType) ports.Normalizer {
	switch t {
	case OptimizedNormalizerType:
		return NewOptimizedNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
