package domain

// ReferenceProfile is the aggregated target representation built once at
// startup from the reference set. It is read-only after construction and
// safe to share across concurrent predictions without locking.
type ReferenceProfile struct {
	matrix EmbeddingMatrix
	pooled []float32
}

// NewReferenceProfile wraps an aggregated matrix and its mean-pooled vector.
// Callers hand over ownership; neither value may be mutated afterwards.
func NewReferenceProfile(matrix EmbeddingMatrix, pooled []float32) ReferenceProfile {
	return ReferenceProfile{matrix: matrix, pooled: pooled}
}

// Len returns the number of profile positions (the max token count L over
// the reference set).
func (p ReferenceProfile) Len() int {
	return len(p.matrix)
}

// Vector returns the profile vector at the given token position.
func (p ReferenceProfile) Vector(pos int) []float32 {
	return p.matrix[pos]
}

// Pooled returns the profile mean-pooled over all positions, used for
// whole-sequence similarity.
func (p ReferenceProfile) Pooled() []float32 {
	return p.pooled
}
