// gene_trust_test.go
package genetrust

import (
	"context"
	"testing"
)

func TestPredictWithDefaults(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatal(err)
	}

	// Test cases with varying inputs.
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "Valid sequence",
			input: "CTACTTCAAATGGGGCTACG",
		},
		{
			name:  "Lower case input is accepted",
			input: "ctacttcaaatggggctacg",
		},
		{
			name:    "Too short",
			input:   "AAAAA",
			wantErr: true,
		},
		{
			name:    "Invalid symbol",
			input:   "ATCGNATCGNATCGNATCGN",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := p.Predict(context.Background(), tc.input)
			if tc.wantErr {
				if err == nil {
					t.Error("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(result.EditedSequence) != 20 {
				t.Errorf("expected 20-character edit, got %q", result.EditedSequence)
			}
			if result.ChangedPosition < 1 || result.ChangedPosition > 20 {
				t.Errorf("changed position %d out of display range", result.ChangedPosition)
			}
			if result.NewBase == result.OriginalBase {
				t.Error("proposal did not change the base")
			}
			if result.Message == "" {
				t.Error("expected a message")
			}
		})
	}
}

func TestScoreWithDefaults(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatal(err)
	}

	exact, err := p.Score(context.Background(), "CTACTTCAAATGGGGCTACA")
	if err != nil {
		t.Fatal(err)
	}
	flipped, err := p.Score(context.Background(), "CTACTTCAAATGGGGCTACG")
	if err != nil {
		t.Fatal(err)
	}

	if flipped >= exact {
		t.Errorf("expected closer match to score higher: exact=%v flipped=%v", exact, flipped)
	}
}
