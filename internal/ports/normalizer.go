package ports

// Normalizer defines the interface for nucleotide sequence normalization.
// Normalization is applied to raw input before validation, so that case
// variants of the same sequence compare identically.
type Normalizer interface {
	Normalize(sequence string) string
}
