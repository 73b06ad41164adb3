// Package score exposes standalone whole-sequence similarity scoring
// against a reference profile, without the edit search.
package score

import (
	"context"

	"github.com/Niteshdeva/GeneTrust/internal/adapters/encoder"
	"github.com/Niteshdeva/GeneTrust/internal/adapters/logger"
	"github.com/Niteshdeva/GeneTrust/internal/adapters/normalizer"
	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
	"github.com/Niteshdeva/GeneTrust/internal/core/embed"
	"github.com/Niteshdeva/GeneTrust/internal/core/profile"
	corescore "github.com/Niteshdeva/GeneTrust/internal/core/score"
	"github.com/Niteshdeva/GeneTrust/internal/ports"
	"github.com/baditaflorin/l"
)

// SequenceScorer computes similarity of validated sequences to a reference
// profile built once at construction. Safe for concurrent use.
type SequenceScorer struct {
	scorer     *corescore.Scorer
	normalizer ports.Normalizer
	profile    domain.ReferenceProfile
}

// ScorerOption defines a functional option for configuring a SequenceScorer.
type ScorerOption func(*scorerConfig)

type scorerConfig struct {
	Logger     ports.Logger
	Encoder    ports.SequenceEncoder
	Normalizer ports.Normalizer
	References []string
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) ScorerOption {
	return func(cfg *scorerConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithEncoder sets the sequence encoder.
func WithEncoder(enc ports.SequenceEncoder) ScorerOption {
	return func(cfg *scorerConfig) {
		cfg.Encoder = enc
	}
}

// WithNormalizer sets a custom sequence normalizer.
func WithNormalizer(norm ports.Normalizer) ScorerOption {
	return func(cfg *scorerConfig) {
		cfg.Normalizer = norm
	}
}

// WithReferenceSequences sets the reference set the profile is built from.
func WithReferenceSequences(references ...string) ScorerOption {
	return func(cfg *scorerConfig) {
		cfg.References = references
	}
}

// New creates a new SequenceScorer.
func New(opts ...ScorerOption) (*SequenceScorer, error) {
	cfg := &scorerConfig{
		References: append([]string(nil), defaultReferences()...),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		cfg.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}
	if cfg.Encoder == nil {
		cfg.Encoder = encoder.NewPositionalEncoder()
	}
	if cfg.Normalizer == nil {
		cfg.Normalizer = normalizer.NewDefaultNormalizer()
	}

	extractor, err := embed.NewExtractor(cfg.Encoder, cfg.Logger)
	if err != nil {
		return nil, err
	}
	scorer, err := corescore.NewScorer(extractor, cfg.Logger)
	if err != nil {
		return nil, err
	}

	references := make([]domain.Sequence, 0, len(cfg.References))
	for _, r := range cfg.References {
		seq, err := domain.ParseSequence(cfg.Normalizer.Normalize(r))
		if err != nil {
			return nil, err
		}
		references = append(references, seq)
	}
	builder, err := profile.NewBuilder(extractor, cfg.Logger)
	if err != nil {
		return nil, err
	}
	referenceProfile, err := builder.Build(context.Background(), references)
	if err != nil {
		return nil, err
	}

	return &SequenceScorer{
		scorer:     scorer,
		normalizer: cfg.Normalizer,
		profile:    referenceProfile,
	}, nil
}

// Score validates raw and returns its similarity to the reference profile.
func (s *SequenceScorer) Score(ctx context.Context, raw string) (float64, error) {
	seq, err := domain.ParseSequence(s.normalizer.Normalize(raw))
	if err != nil {
		return 0, err
	}
	return s.scorer.Score(ctx, seq.String(), s.profile)
}

func defaultReferences() []string {
	return []string{
		"CTACTTCAAATGGGGCTACA",
		"AGTCGTACTGCATGCTCGTA",
		"ATCGCTGACAATGCTGGACA",
	}
}
