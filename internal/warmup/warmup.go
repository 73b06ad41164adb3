package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
	"github.com/Niteshdeva/GeneTrust/internal/ports"
)

// WarmupConfig defines configuration for warming up the system before it
// starts serving predictions.
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration. Encoder
// calls dominate warmup cost, so iterations are kept low.
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  8,
		Duration:    5 * time.Second,
		ForceGC:     true,
	}
}

// Manager handles system warmup operations
type Manager struct {
	logger      ports.Logger
	encoders    []ports.SequenceEncoder
	scorers     []ports.SequenceScorer
	normalizers []ports.Normalizer
	config      WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterEncoder adds an encoder to be warmed up
func (wm *Manager) RegisterEncoder(enc ports.SequenceEncoder) {
	wm.encoders = append(wm.encoders, enc)
}

// RegisterScorer adds a scorer to be warmed up
func (wm *Manager) RegisterScorer(scorer ports.SequenceScorer) {
	wm.scorers = append(wm.scorers, scorer)
}

// RegisterNormalizer adds a normalizer to be warmed up
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp runs the warmup process for all registered components
func (wm *Manager) WarmUp(ctx context.Context) {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.encoders)+len(wm.scorers)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	var warmupCtx context.Context
	var cancel context.CancelFunc
	if wm.config.Duration > 0 {
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	} else {
		warmupCtx = ctx
	}

	wm.warmUpNormalizers(warmupCtx)
	wm.warmUpEncoders(warmupCtx)
	wm.warmUpScorers(warmupCtx)

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
}

// warmUpNormalizers runs warmup for all registered normalizers
func (wm *Manager) warmUpNormalizers(ctx context.Context) {
	if len(wm.normalizers) == 0 {
		return
	}

	wm.logger.Debug("Warming up normalizers", "count", len(wm.normalizers))

	sample := strings.ToLower(sampleSequence(0))

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, normalizer := range wm.normalizers {
					_ = normalizer.Normalize(sample)
				}
			}
		}()
	}

	wg.Wait()
}

// warmUpEncoders runs warmup for all registered encoders
func (wm *Manager) warmUpEncoders(ctx context.Context) {
	if len(wm.encoders) == 0 {
		return
	}

	wm.logger.Debug("Warming up encoders", "count", len(wm.encoders))

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func(routineID int) {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				sample := sampleSequence(routineID + j)
				for _, enc := range wm.encoders {
					_, _ = enc.Encode(ctx, sample)
				}
			}
		}(i)
	}

	wg.Wait()
}

// warmUpScorers runs warmup for all registered scorers
func (wm *Manager) warmUpScorers(ctx context.Context) {
	if len(wm.scorers) == 0 {
		return
	}

	wm.logger.Debug("Warming up scorers", "count", len(wm.scorers))

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func(routineID int) {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				sample := sampleSequence(routineID + j)
				for _, scorer := range wm.scorers {
					_, _ = scorer.Score(ctx, sample)
				}
			}
		}(i)
	}

	wg.Wait()
}

// sampleSequence generates a deterministic valid sequence, varied by seed so
// consecutive warmup iterations do not encode identical input.
func sampleSequence(seed int) string {
	var sb strings.Builder
	sb.Grow(domain.SequenceLength)
	for i := 0; i < domain.SequenceLength; i++ {
		sb.WriteByte(domain.Alphabet[(i+seed)%len(domain.Alphabet)])
	}
	return sb.String()
}
