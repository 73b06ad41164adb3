// gene_trust.go
// Package genetrust proposes single-base substitutions that make a 20-base
// nucleotide sequence more similar, under a learned vector representation,
// to a small set of reference sequences. A per-position diagnosis finds the
// position that diverges most from the aggregated reference profile, then a
// greedy search re-embeds each alternate base there and keeps the one with
// the highest whole-sequence cosine similarity.
//
// This package is the simple entry point; pkg/predictor exposes the full
// set of configuration options.
package genetrust

import (
	"context"

	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
	"github.com/Niteshdeva/GeneTrust/internal/ports"
	"github.com/Niteshdeva/GeneTrust/pkg/predictor"
	"github.com/baditaflorin/l"
)

// Result is the outcome of an edit prediction.
type Result = domain.PredictionResult

// Config holds configuration options for the predictor.
type Config struct {
	// References the profile is aggregated from; defaults to the built-in set.
	References []string
	// Encoder used for embedding; defaults to the offline positional encoder.
	Encoder ports.SequenceEncoder
	// Logger for tracing computation steps.
	Logger l.Logger
}

// Option defines a functional option for configuring the predictor.
type Option func(*Config)

// WithReferences sets a custom reference set.
func WithReferences(references ...string) Option {
	return func(cfg *Config) {
		cfg.References = references
	}
}

// WithEncoder sets a custom sequence encoder.
func WithEncoder(enc ports.SequenceEncoder) Option {
	return func(cfg *Config) {
		cfg.Encoder = enc
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// Predictor provides edit prediction and scoring over a reference profile
// built once at construction.
type Predictor struct {
	inner *predictor.Predictor
}

// New creates a new Predictor with the provided functional options.
// If no logger is provided, a default logger is created.
func New(opts ...Option) (*Predictor, error) {
	cfg := Config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	var popts []predictor.PredictorOption
	if cfg.Logger == nil {
		logger, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = logger
	}
	popts = append(popts, predictor.WithLogger(cfg.Logger))
	if cfg.Encoder != nil {
		popts = append(popts, predictor.WithEncoder(cfg.Encoder))
	}
	if len(cfg.References) > 0 {
		popts = append(popts, predictor.WithReferenceSequences(cfg.References...))
	}

	inner, err := predictor.New(popts...)
	if err != nil {
		return nil, err
	}
	return &Predictor{inner: inner}, nil
}

// Predict proposes the best single-base substitution for the sequence.
func (p *Predictor) Predict(ctx context.Context, sequence string) (Result, error) {
	return p.inner.Predict(ctx, sequence)
}

// Score returns the whole-sequence similarity of the sequence to the
// reference profile.
func (p *Predictor) Score(ctx context.Context, sequence string) (float64, error) {
	return p.inner.Score(ctx, sequence)
}
