package score

import (
	"context"
	"errors"
	"testing"

	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
)

func TestScoreAgainstDefaultReferences(t *testing.T) {
	scorer, err := New()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()

	exact, err := scorer.Score(ctx, "CTACTTCAAATGGGGCTACA")
	if err != nil {
		t.Fatal(err)
	}
	flipped, err := scorer.Score(ctx, "CTACTTCAAATGGGGCTACG")
	if err != nil {
		t.Fatal(err)
	}

	if flipped >= exact {
		t.Errorf("expected closer match to score higher: exact=%v flipped=%v", exact, flipped)
	}
}

func TestScoreValidatesInput(t *testing.T) {
	scorer, err := New()
	if err != nil {
		t.Fatal(err)
	}

	_, err = scorer.Score(context.Background(), "AAAAA")
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
	if verr.Reason != domain.ReasonInvalidLength {
		t.Errorf("expected reason %q, got %q", domain.ReasonInvalidLength, verr.Reason)
	}
}
