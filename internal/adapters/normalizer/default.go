package normalizer

import (
	"strings"
	"unicode"

	"github.com/Niteshdeva/GeneTrust/internal/ports"
)

// DefaultNormalizer implements the default sequence normalization strategy:
// upper-casing, so case variants of the same sequence validate and score
// identically. Length and alphabet checks happen later, at parse time.
type DefaultNormalizer struct{}

// NewDefaultNormalizer creates a new default normalizer.
func NewDefaultNormalizer() ports.Normalizer {
	return &DefaultNormalizer{}
}

// Normalize converts the input sequence to upper case.
func (n *DefaultNormalizer) Normalize(sequence string) string {
	var sb strings.Builder
	sb.Grow(len(sequence))
	for _, r := range sequence {
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}
