package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestParseSequence(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantReason string // empty means the input must be accepted
	}{
		{
			name: "Valid sequence",
			raw:  "CTACTTCAAATGGGGCTACA",
		},
		{
			name:       "Too short",
			raw:        "AAAAA",
			wantReason: ReasonInvalidLength,
		},
		{
			name:       "Too long",
			raw:        "CTACTTCAAATGGGGCTACAA",
			wantReason: ReasonInvalidLength,
		},
		{
			name:       "Empty",
			raw:        "",
			wantReason: ReasonInvalidLength,
		},
		{
			name:       "Invalid symbol in short input",
			raw:        "ATCGN",
			wantReason: ReasonInvalidSymbol,
		},
		{
			name:       "Invalid symbol in full-length input",
			raw:        "CTACTTCAANTGGGGCTACA",
			wantReason: ReasonInvalidSymbol,
		},
		{
			name:       "Lower case is rejected unnormalized",
			raw:        "ctacttcaaatggggctaca",
			wantReason: ReasonInvalidSymbol,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seq, err := ParseSequence(tc.raw)
			if tc.wantReason == "" {
				if err != nil {
					t.Fatalf("expected valid sequence, got error: %v", err)
				}
				if seq.String() != tc.raw {
					t.Errorf("expected %q, got %q", tc.raw, seq.String())
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Reason != tc.wantReason {
				t.Errorf("expected reason %q, got %q (message: %s)", tc.wantReason, verr.Reason, verr.Message)
			}
		})
	}
}

func TestParseSequenceCitesSymbol(t *testing.T) {
	_, err := ParseSequence("ATCGN")
	if err == nil {
		t.Fatal("expected error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if want := `"N"`; !strings.Contains(verr.Message, want) {
		t.Errorf("expected message to cite symbol N, got %q", verr.Message)
	}
}

func TestMutateIsImmutable(t *testing.T) {
	seq, err := ParseSequence("CTACTTCAAATGGGGCTACA")
	if err != nil {
		t.Fatal(err)
	}

	mutated := seq.Mutate(19, 'G')

	if seq.String() != "CTACTTCAAATGGGGCTACA" {
		t.Errorf("original sequence was mutated: %s", seq)
	}
	if mutated.String() != "CTACTTCAAATGGGGCTACG" {
		t.Errorf("unexpected mutated sequence: %s", mutated)
	}
}

func TestChangeIndicator(t *testing.T) {
	got := ChangeIndicator(4)
	want := "....*..............."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if len(got) != SequenceLength {
		t.Errorf("expected indicator of length %d, got %d", SequenceLength, len(got))
	}
}

func TestPercentTruncates(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{0.876, 87}, // truncation, not rounding
		{0.999, 99},
		{0.5, 50},
		{1.0, 100},
		{0.0, 0},
	}

	for _, tc := range tests {
		if got := Percent(tc.score); got != tc.want {
			t.Errorf("Percent(%v) = %d, want %d", tc.score, got, tc.want)
		}
	}
}
