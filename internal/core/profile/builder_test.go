package profile

import (
	"context"
	"strings"
	"testing"

	"github.com/Niteshdeva/GeneTrust/internal/adapters/logger"
	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
	"github.com/Niteshdeva/GeneTrust/internal/core/embed"
)

// tableEncoder maps each sequence to a preset matrix, letting tests exercise
// references with different token counts.
type tableEncoder struct {
	matrices map[string]domain.EmbeddingMatrix
}

func (e *tableEncoder) Encode(_ context.Context, sequence string) (domain.EncoderOutput, error) {
	return domain.EncoderOutput{Kind: domain.OutputRawMatrix, Matrix: e.matrices[sequence]}, nil
}

func mustSequence(t *testing.T, raw string) domain.Sequence {
	t.Helper()
	seq, err := domain.ParseSequence(raw)
	if err != nil {
		t.Fatal(err)
	}
	return seq
}

func TestBuildPadsAndAverages(t *testing.T) {
	refA := strings.Repeat("A", domain.SequenceLength)
	refT := strings.Repeat("T", domain.SequenceLength)

	enc := &tableEncoder{matrices: map[string]domain.EmbeddingMatrix{
		// One token for refA, two tokens for refT: L must become 2 and
		// refA's tail must be zero-padded before averaging.
		refA: {{2, 0}},
		refT: {{0, 2}, {4, 6}},
	}}
	extractor, err := embed.NewExtractor(enc, logger.NewNopLogger())
	if err != nil {
		t.Fatal(err)
	}
	builder, err := NewBuilder(extractor, logger.NewNopLogger())
	if err != nil {
		t.Fatal(err)
	}

	profile, err := builder.Build(context.Background(), []domain.Sequence{
		mustSequence(t, refA),
		mustSequence(t, refT),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Len() != 2 {
		t.Fatalf("expected 2 profile positions, got %d", profile.Len())
	}

	wantMatrix := [][]float32{{1, 1}, {2, 3}}
	for r := range wantMatrix {
		row := profile.Vector(r)
		for c := range wantMatrix[r] {
			if row[c] != wantMatrix[r][c] {
				t.Errorf("position (%d,%d): expected %v, got %v", r, c, wantMatrix[r][c], row[c])
			}
		}
	}

	wantPooled := []float32{1.5, 2}
	pooled := profile.Pooled()
	for i := range wantPooled {
		if pooled[i] != wantPooled[i] {
			t.Errorf("pooled dim %d: expected %v, got %v", i, wantPooled[i], pooled[i])
		}
	}
}

func TestBuildRequiresReferences(t *testing.T) {
	extractor, err := embed.NewExtractor(&tableEncoder{}, logger.NewNopLogger())
	if err != nil {
		t.Fatal(err)
	}
	builder, err := NewBuilder(extractor, logger.NewNopLogger())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := builder.Build(context.Background(), nil); err == nil {
		t.Error("expected error for empty reference set")
	}
}
