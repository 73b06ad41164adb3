// Package vecmath provides the small set of vector operations the edit
// prediction core is built on: cosine similarity, mean pooling over the
// token axis, and zero-padding of token matrices.
package vecmath

import "math"

// Cosine returns the cosine similarity between a and b. Accumulation is done
// in float64 for stable results regardless of vector dimension. If either
// vector has zero norm the similarity is defined as 0.
func Cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// MeanPool averages a token matrix over the token axis, producing a single
// vector of the embedding dimension. Returns nil for an empty matrix.
func MeanPool(matrix [][]float32) []float32 {
	if len(matrix) == 0 {
		return nil
	}
	dim := len(matrix[0])
	pooled := make([]float64, dim)
	for _, row := range matrix {
		for i := 0; i < dim && i < len(row); i++ {
			pooled[i] += float64(row[i])
		}
	}
	out := make([]float32, dim)
	count := float64(len(matrix))
	for i := range pooled {
		out[i] = float32(pooled[i] / count)
	}
	return out
}

// MeanStack averages a stack of equally-shaped matrices element-wise across
// the stack axis, independently for each position and dimension.
func MeanStack(stack [][][]float32) [][]float32 {
	if len(stack) == 0 {
		return nil
	}
	rows := len(stack[0])
	out := make([][]float32, rows)
	count := float64(len(stack))
	for r := 0; r < rows; r++ {
		dim := len(stack[0][r])
		acc := make([]float64, dim)
		for _, m := range stack {
			for i := 0; i < dim && i < len(m[r]); i++ {
				acc[i] += float64(m[r][i])
			}
		}
		row := make([]float32, dim)
		for i := range acc {
			row[i] = float32(acc[i] / count)
		}
		out[r] = row
	}
	return out
}

// PadRows extends matrix with zero vectors of the given dimension until it
// has length rows. The input is not modified; a padded copy is returned.
// Padding represents "no information": it contributes nothing to positional
// comparisons because candidates are always sliced to their own length.
func PadRows(matrix [][]float32, rows, dim int) [][]float32 {
	padded := make([][]float32, 0, rows)
	padded = append(padded, matrix...)
	for len(padded) < rows {
		padded = append(padded, make([]float32, dim))
	}
	return padded
}
