package domain

import (
	"fmt"
	"strings"
)

// SequenceLength is the fixed length of every input and reference sequence.
const SequenceLength = 20

// Alphabet is the nucleotide alphabet in its fixed evaluation order. The
// substitution search iterates bases in exactly this order, so changing it
// changes tie-break behavior.
var Alphabet = [4]byte{'A', 'T', 'C', 'G'}

// Machine-checkable reasons attached to validation errors.
const (
	ReasonInvalidLength = "invalid_length"
	ReasonInvalidSymbol = "invalid_symbol"
)

// ValidationError reports a rejected input sequence. Reason is a stable
// machine-checkable code; Message is the human-readable explanation.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Sequence is a validated, immutable nucleotide sequence of exactly
// SequenceLength symbols over Alphabet. The zero value is not valid; use
// ParseSequence.
type Sequence struct {
	value string
}

// ParseSequence validates raw and returns it as a Sequence. The input is
// expected to be upper-cased already (see ports.Normalizer); lower-case
// symbols are rejected like any other symbol outside the alphabet.
func ParseSequence(raw string) (Sequence, error) {
	// The alphabet check runs first so that an out-of-alphabet symbol is
	// always reported as such, regardless of the input's length.
	for i := 0; i < len(raw); i++ {
		if !isBase(raw[i]) {
			return Sequence{}, &ValidationError{
				Reason:  ReasonInvalidSymbol,
				Message: fmt.Sprintf("sequence must contain only A, T, C, G: invalid symbol %q at position %d", string(raw[i]), i+1),
			}
		}
	}
	if len(raw) != SequenceLength {
		return Sequence{}, &ValidationError{
			Reason:  ReasonInvalidLength,
			Message: fmt.Sprintf("sequence must be exactly %d characters long", SequenceLength),
		}
	}
	return Sequence{value: raw}, nil
}

func isBase(b byte) bool {
	for _, base := range Alphabet {
		if b == base {
			return true
		}
	}
	return false
}

// String returns the raw sequence text.
func (s Sequence) String() string {
	return s.value
}

// Base returns the symbol at the given 0-based position.
func (s Sequence) Base(pos int) byte {
	return s.value[pos]
}

// Mutate returns a new Sequence with the symbol at pos replaced by base.
// The receiver is never modified.
func (s Sequence) Mutate(pos int, base byte) Sequence {
	b := []byte(s.value)
	b[pos] = base
	return Sequence{value: string(b)}
}

// EmbeddingMatrix holds one encoder vector per token, in token order.
type EmbeddingMatrix [][]float32

// EncoderOutputKind tags the shape an encoder exposed its hidden states in.
type EncoderOutputKind int

const (
	// OutputHiddenStateTuple is a tuple-style result whose first element is
	// the hidden-state tensor, with a leading batch dimension.
	OutputHiddenStateTuple EncoderOutputKind = iota
	// OutputLastHiddenState is a structured result exposing the hidden-state
	// tensor under a dedicated field, with a leading batch dimension.
	OutputLastHiddenState
	// OutputRawMatrix is the per-token matrix itself, no batch dimension.
	OutputRawMatrix
)

// EncoderOutput is the tagged union of the three output shapes an encoder
// may produce. Exactly one payload field is meaningful, selected by Kind:
// Batched for the two batched shapes, Matrix for the raw shape.
type EncoderOutput struct {
	Kind    EncoderOutputKind
	Batched [][][]float32
	Matrix  EmbeddingMatrix
}

// EditProposal is a single-symbol substitution proposed by the search,
// together with the whole-sequence similarity score of the edited sequence.
type EditProposal struct {
	Position     int
	OriginalBase byte
	ProposedBase byte
	Score        float64
}

// PredictionResult is the terminal artifact of a prediction, shaped for the
// transport layer. ChangedPosition is 1-based for display; all internal
// indexing stays 0-based.
type PredictionResult struct {
	OriginalSequence   string `json:"originalSequence"`
	EditedSequence     string `json:"editedSequence"`
	ChangeIndicator    string `json:"changeIndicator"`
	Efficiency         int    `json:"efficiency"`
	ChangedPosition    int    `json:"changedPosition"`
	OriginalBase       string `json:"originalBase"`
	NewBase            string `json:"newBase"`
	Message            string `json:"message"`
	OriginalEfficiency int    `json:"originalEfficiency"`
}

// ChangeIndicator renders a marker string of SequenceLength dots with a
// single '*' at the 0-based edit position.
func ChangeIndicator(pos int) string {
	b := []byte(strings.Repeat(".", SequenceLength))
	if pos >= 0 && pos < len(b) {
		b[pos] = '*'
	}
	return string(b)
}

// Percent converts a similarity score in [0, 1] to an integer percentage by
// truncation, not rounding: 0.876 becomes 87.
func Percent(score float64) int {
	return int(score * 100)
}
