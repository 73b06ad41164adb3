// Package diagnose locates the token position of a candidate sequence that
// diverges most from the reference profile.
package diagnose

import (
	"errors"
	"fmt"

	"github.com/Niteshdeva/GeneTrust/internal/core/domain"
	"github.com/Niteshdeva/GeneTrust/internal/core/vecmath"
	"github.com/Niteshdeva/GeneTrust/internal/ports"
)

// Diagnoser scores each candidate position against the profile and selects
// the weakest match.
type Diagnoser struct {
	logger ports.Logger
}

// NewDiagnoser creates a new position diagnoser.
func NewDiagnoser(logger ports.Logger) (*Diagnoser, error) {
	if logger == nil {
		return nil, errors.New("diagnose: logger is required")
	}
	return &Diagnoser{logger: logger}, nil
}

// Diagnose returns the 0-based index of the candidate position with the
// minimum cosine similarity to the profile vector at the same position. The
// profile is sliced to the candidate's length; ties resolve to the smallest
// index. A candidate longer than the profile is rejected rather than read
// out of bounds.
func (d *Diagnoser) Diagnose(candidate domain.EmbeddingMatrix, profile domain.ReferenceProfile) (int, error) {
	if len(candidate) == 0 {
		return 0, errors.New("diagnose: candidate matrix is empty")
	}
	if len(candidate) > profile.Len() {
		return 0, fmt.Errorf("diagnose: candidate has %d tokens but profile has %d positions", len(candidate), profile.Len())
	}

	weakest := 0
	minSim := 0.0
	for i, vector := range candidate {
		sim := vecmath.Cosine(vector, profile.Vector(i))
		if i == 0 || sim < minSim {
			minSim = sim
			weakest = i
		}
	}

	d.logger.Debug("Diagnosed weakest position",
		"position", weakest,
		"similarity", minSim,
		"tokens", len(candidate),
	)
	return weakest, nil
}
