package normalizer

import (
	"github.com/Niteshdeva/GeneTrust/internal/pool"
	"github.com/Niteshdeva/GeneTrust/internal/ports"
)

// OptimizedNormalizer implements an allocation-conscious upper-casing
// strategy with a pre-computed ASCII table and buffer pooling. Sequences are
// short ASCII strings, so the fast path covers virtually all real input.
type OptimizedNormalizer struct {
	// Pre-computed upper-case mapping for ASCII characters (0-127)
	asciiTable [128]byte

	bytePool *pool.BufferPool
}

// NewOptimizedNormalizer creates a new optimized normalizer
func NewOptimizedNormalizer() ports.Normalizer {
	n := &OptimizedNormalizer{
		bytePool: pool.NewBufferPool(64),
	}

	for i := 0; i < 128; i++ {
		b := byte(i)
		if b >= 'a' && b <= 'z' {
			n.asciiTable[i] = b - ('a' - 'A')
		} else {
			n.asciiTable[i] = b
		}
	}

	return n
}

// Normalize converts the input sequence to upper case efficiently.
func (n *OptimizedNormalizer) Normalize(sequence string) string {
	if len(sequence) == 0 {
		return ""
	}

	// Non-ASCII input falls back to the default strategy.
	for i := 0; i < len(sequence); i++ {
		if sequence[i] >= 128 {
			return NewDefaultNormalizer().Normalize(sequence)
		}
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)

	if cap(*buffer) < len(sequence) {
		*buffer = make([]byte, 0, len(sequence))
	}
	*buffer = (*buffer)[:0]

	for i := 0; i < len(sequence); i++ {
		*buffer = append(*buffer, n.asciiTable[sequence[i]])
	}

	return string(*buffer)
}
