package embed

import (
	"context"
	"reflect"
	"testing"

	"github.com/Niteshdeva/GeneTrust/internal/adapters/logger"
	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
)

// stubEncoder returns a fixed output regardless of input.
type stubEncoder struct {
	out domain.EncoderOutput
	err error
}

func (s *stubEncoder) Encode(_ context.Context, _ string) (domain.EncoderOutput, error) {
	return s.out, s.err
}

func TestNormalizeShapes(t *testing.T) {
	matrix := domain.EmbeddingMatrix{{1, 2}, {3, 4}}

	tests := []struct {
		name string
		out  domain.EncoderOutput
	}{
		{
			name: "Tuple shape with batch dimension",
			out: domain.EncoderOutput{
				Kind:    domain.OutputHiddenStateTuple,
				Batched: [][][]float32{matrix},
			},
		},
		{
			name: "Last hidden state with batch dimension",
			out: domain.EncoderOutput{
				Kind:    domain.OutputLastHiddenState,
				Batched: [][][]float32{matrix},
			},
		},
		{
			name: "Raw matrix",
			out: domain.EncoderOutput{
				Kind:   domain.OutputRawMatrix,
				Matrix: matrix,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.out)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, matrix) {
				t.Errorf("expected %v, got %v", matrix, got)
			}
		})
	}
}

func TestNormalizeRejectsEmptyAndUnknown(t *testing.T) {
	tests := []struct {
		name string
		out  domain.EncoderOutput
	}{
		{
			name: "Empty tuple",
			out:  domain.EncoderOutput{Kind: domain.OutputHiddenStateTuple},
		},
		{
			name: "Empty last hidden state",
			out:  domain.EncoderOutput{Kind: domain.OutputLastHiddenState},
		},
		{
			name: "Empty raw matrix",
			out:  domain.EncoderOutput{Kind: domain.OutputRawMatrix},
		},
		{
			name: "Unknown kind",
			out:  domain.EncoderOutput{Kind: domain.EncoderOutputKind(99)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Normalize(tc.out); err == nil {
				t.Error("expected error, got none")
			}
		})
	}
}

func TestExtractorEmbed(t *testing.T) {
	matrix := domain.EmbeddingMatrix{{1, 0}, {0, 1}}
	extractor, err := NewExtractor(&stubEncoder{
		out: domain.EncoderOutput{Kind: domain.OutputRawMatrix, Matrix: matrix},
	}, logger.NewNopLogger())
	if err != nil {
		t.Fatal(err)
	}

	got, err := extractor.Embed(context.Background(), "ATCG")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, matrix) {
		t.Errorf("expected %v, got %v", matrix, got)
	}
}

func TestExtractorRequiresDependencies(t *testing.T) {
	if _, err := NewExtractor(nil, logger.NewNopLogger()); err == nil {
		t.Error("expected error for nil encoder")
	}
	if _, err := NewExtractor(&stubEncoder{}, nil); err == nil {
		t.Error("expected error for nil logger")
	}
}
