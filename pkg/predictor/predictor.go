// Package predictor exposes the full-featured edit prediction API: a
// dependency-injected context object built once at startup and shared by any
// number of concurrent prediction calls.
package predictor

import (
	"context"
	"errors"

	"github.com/Niteshdeva/GeneTrust/internal/adapters/encoder"
	"github.com/Niteshdeva/GeneTrust/internal/adapters/logger"
	"github.com/Niteshdeva/GeneTrust/internal/adapters/normalizer"
	"github.com/Niteshdeva/GeneTrust/internal/core/diagnose"
	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
	"github.com/Niteshdeva/GeneTrust/internal/core/embed"
	"github.com/Niteshdeva/GeneTrust/internal/core/predict"
	"github.com/Niteshdeva/GeneTrust/internal/core/profile"
	"github.com/Niteshdeva/GeneTrust/internal/core/score"
	"github.com/Niteshdeva/GeneTrust/internal/core/search"
	"github.com/Niteshdeva/GeneTrust/internal/ports"
	"github.com/Niteshdeva/GeneTrust/internal/warmup"
	"github.com/baditaflorin/l"
)

// DefaultReferenceSequences is the built-in reference set the profile is
// aggregated from when no custom references are configured.
var DefaultReferenceSequences = []string{
	"CTACTTCAAATGGGGCTACA",
	"AGTCGTACTGCATGCTCGTA",
	"ATCGCTGACAATGCTGGACA",
}

// Predictor proposes single-base substitutions that move a sequence closer
// to the reference profile. Construct once with New; the reference profile
// is computed during construction and never mutated afterwards, so a single
// Predictor is safe for concurrent use.
type Predictor struct {
	predictor  *predict.Predictor
	scorer     *score.Scorer
	normalizer ports.Normalizer
	profile    domain.ReferenceProfile
	logger     ports.Logger
}

// PredictorOption defines a functional option for configuring a Predictor.
type PredictorOption func(*predictorConfig)

type predictorConfig struct {
	Logger       ports.Logger
	Encoder      ports.SequenceEncoder
	Normalizer   ports.Normalizer
	References   []string
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) PredictorOption {
	return func(cfg *predictorConfig) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithEncoder sets the sequence encoder. Without this option the offline
// positional encoder is used.
func WithEncoder(enc ports.SequenceEncoder) PredictorOption {
	return func(cfg *predictorConfig) {
		cfg.Encoder = enc
	}
}

// WithNormalizer sets a custom sequence normalizer.
func WithNormalizer(norm ports.Normalizer) PredictorOption {
	return func(cfg *predictorConfig) {
		cfg.Normalizer = norm
	}
}

// WithOptimizedNormalizer sets the pooled ASCII fast-path normalizer.
func WithOptimizedNormalizer() PredictorOption {
	return func(cfg *predictorConfig) {
		factory := normalizer.NewNormalizerFactory()
		cfg.Normalizer = factory.CreateNormalizer(normalizer.OptimizedNormalizerType)
	}
}

// WithReferenceSequences sets the reference set the profile is built from.
func WithReferenceSequences(references ...string) PredictorOption {
	return func(cfg *predictorConfig) {
		cfg.References = references
	}
}

// WithWarmUp enables system warm-up on initialization.
func WithWarmUp(enable bool) PredictorOption {
	return func(cfg *predictorConfig) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) PredictorOption {
	return func(cfg *predictorConfig) {
		cfg.WarmUpConfig = config
		cfg.WarmUp = true
	}
}

// New creates a new Predictor: wires the core components, embeds the
// reference set and aggregates it into the immutable profile.
func New(opts ...PredictorOption) (*Predictor, error) {
	cfg := &predictorConfig{
		References:   DefaultReferenceSequences,
		WarmUpConfig: warmup.DefaultWarmupConfig(),
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
	scorer, err := score.NewScorer(extractor, cfg.Logger)
	if err != nil {
		return nil, err
	}
	diagnoser, err := diagnose.NewDiagnoser(cfg.Logger)
	if err != nil {
		return nil, err
	}
	searcher, err := search.NewSearcher(scorer, cfg.Logger)
	if err != nil {
		return nil, err
	}
	core, err := predict.NewPredictor(extractor, diagnoser, searcher, scorer, cfg.Logger)
	if err != nil {
		return nil, err
	}

	references, err := parseReferences(cfg.Normalizer, cfg.References)
	if err != nil {
		return nil, err
	}
	builder, err := profile.NewBuilder(extractor, cfg.Logger)
	if err != nil {
		return nil, err
	}
	referenceProfile, err := builder.Build(context.Background(), references)
	if err != nil {
		return nil, err
	}

	p := &Predictor{
		predictor:  core,
		scorer:     scorer,
		normalizer: cfg.Normalizer,
		profile:    referenceProfile,
		logger:     cfg.Logger,
	}

	if cfg.WarmUp {
		manager := warmup.NewManager(cfg.Logger, cfg.WarmUpConfig)
		manager.RegisterNormalizer(cfg.Normalizer)
		manager.RegisterEncoder(cfg.Encoder)
		manager.RegisterScorer(p)
		manager.WarmUp(context.Background())
	}

	return p, nil
}

func parseReferences(norm ports.Normalizer, raw []string) ([]domain.Sequence, error) {
	if len(raw) == 0 {
		return nil, errors.New("predictor: at least one reference sequence is required")
	}
	references := make([]domain.Sequence, 0, len(raw))
	for _, r := range raw {
		seq, err := domain.ParseSequence(norm.Normalize(r))
		if err != nil {
			return nil, err
		}
		references = append(references, seq)
	}
	return references, nil
}

// Predict validates raw, diagnoses its weakest position and proposes the
// best single-base substitution there. Validation failures return a
// *domain.ValidationError before any embedding work.
func (p *Predictor) Predict(ctx context.Context, raw string) (domain.PredictionResult, error) {
	seq, err := domain.ParseSequence(p.normalizer.Normalize(raw))
	if err != nil {
		return domain.PredictionResult{}, err
	}
	return p.predictor.Predict(ctx, seq, p.profile)
}

// Score validates raw and returns its whole-sequence similarity to the
// reference profile.
func (p *Predictor) Score(ctx context.Context, raw string) (float64, error) {
	seq, err := domain.ParseSequence(p.normalizer.Normalize(raw))
	if err != nil {
		return 0, err
	}
	return p.scorer.Score(ctx, seq.String(), p.profile)
}

// Profile returns the immutable reference profile.
func (p *Predictor) Profile() domain.ReferenceProfile {
	return p.profile
}
