package predict

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/Niteshdeva/GeneTrust/internal/adapters/encoder"
	"github.com/Niteshdeva/GeneTrust/internal/adapters/logger"
	"github.com/Niteshdeva/GeneTrust/internal/core/diagnose"
	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
	"github.com/Niteshdeva/GeneTrust/internal/core/embed"
	"github.com/Niteshdeva/GeneTrust/internal/core/profile"
	"github.com/Niteshdeva/GeneTrust/internal/core/score"
	"github.com/Niteshdeva/GeneTrust/internal/core/search"
)

func newPredictorWithProfile(t *testing.T, references ...string) (*Predictor, domain.ReferenceProfile) {
	t.Helper()
	log := logger.NewNopLogger()
	extractor, err := embed.NewExtractor(encoder.NewPositionalEncoder(), log)
	if err != nil {
		t.Fatal(err)
	}
	scorer, err := score.NewScorer(extractor, log)
	if err != nil {
		t.Fatal(err)
	}
	diagnoser, err := diagnose.NewDiagnoser(log)
	if err != nil {
		t.Fatal(err)
	}
	searcher, err := search.NewSearcher(scorer, log)
	if err != nil {
		t.Fatal(err)
	}
	predictor, err := NewPredictor(extractor, diagnoser, searcher, scorer, log)
	if err != nil {
		t.Fatal(err)
	}

	builder, err := profile.NewBuilder(extractor, log)
	if err != nil {
		t.Fatal(err)
	}
	refs := make([]domain.Sequence, 0, len(references))
	for _, r := range references {
		seq, err := domain.ParseSequence(r)
		if err != nil {
			t.Fatal(err)
		}
		refs = append(refs, seq)
	}
	p, err := builder.Build(context.Background(), refs)
	if err != nil {
		t.Fatal(err)
	}
	return predictor, p
}

func TestPredictRepairsFlippedBase(t *testing.T) {
	predictor, p := newPredictorWithProfile(t,
		"CTACTTCAAATGGGGCTACA",
		"AGTCGTACTGCATGCTCGTA",
		"ATCGCTGACAATGCTGGACA",
	)

	seq, err := domain.ParseSequence("CTACTTCAAATGGGGCTACG")
	if err != nil {
		t.Fatal(err)
	}

	result, err := predictor.Predict(context.Background(), seq, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.OriginalSequence != "CTACTTCAAATGGGGCTACG" {
		t.Errorf("unexpected original sequence: %s", result.OriginalSequence)
	}
	if result.EditedSequence != "CTACTTCAAATGGGGCTACA" {
		t.Errorf("expected edit back to the reference, got %s", result.EditedSequence)
	}
	if result.ChangedPosition != 20 {
		t.Errorf("expected 1-based position 20, got %d", result.ChangedPosition)
	}
	if result.OriginalBase != "G" || result.NewBase != "A" {
		t.Errorf("expected G->A, got %s->%s", result.OriginalBase, result.NewBase)
	}
	if want := "...................*"; result.ChangeIndicator != want {
		t.Errorf("expected indicator %q, got %q", want, result.ChangeIndicator)
	}
	if !strings.HasPrefix(result.Message, "🔼") {
		t.Errorf("expected improvement message, got %q", result.Message)
	}
	if result.Efficiency <= result.OriginalEfficiency {
		t.Errorf("expected efficiency to improve: %d -> %d", result.OriginalEfficiency, result.Efficiency)
	}
}

func TestPredictReportsAlreadyOptimal(t *testing.T) {
	// A single reference and the reference itself as input: every alternate
	// base moves the sequence away, but a proposal is still committed.
	predictor, p := newPredictorWithProfile(t, "ATCGATCGATCGATCGATCG")

	seq, err := domain.ParseSequence("ATCGATCGATCGATCGATCG")
	if err != nil {
		t.Fatal(err)
	}

	result, err := predictor.Predict(context.Background(), seq, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(result.Message, "✅") {
		t.Errorf("expected already-optimal message, got %q", result.Message)
	}
	if result.EditedSequence == result.OriginalSequence {
		t.Error("an edit must be proposed even when the input is optimal")
	}
	// All positions tie at similarity 1, so the diagnosis must pick the
	// first; all alternates tie, so alphabet order picks T over C and G.
	if result.ChangedPosition != 1 {
		t.Errorf("expected 1-based position 1, got %d", result.ChangedPosition)
	}
	if result.NewBase != "T" {
		t.Errorf("expected alphabet-order tie-break to propose T, got %s", result.NewBase)
	}
	if result.Efficiency > result.OriginalEfficiency {
		t.Errorf("edited score should not beat the original here: %d -> %d", result.OriginalEfficiency, result.Efficiency)
	}
}

func TestPredictIsDeterministic(t *testing.T) {
	predictor, p := newPredictorWithProfile(t,
		"CTACTTCAAATGGGGCTACA",
		"AGTCGTACTGCATGCTCGTA",
		"ATCGCTGACAATGCTGGACA",
	)

	seq, err := domain.ParseSequence("AGTCGTACTGCATGCTCGTT")
	if err != nil {
		t.Fatal(err)
	}

	first, err := predictor.Predict(context.Background(), seq, p)
	if err != nil {
		t.Fatal(err)
	}
	second, err := predictor.Predict(context.Background(), seq, p)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results, got %+v and %+v", first, second)
	}
}
