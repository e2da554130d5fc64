// Package random provides the injectable random source used by every
// probabilistic knob in the pipeline, so behavior is seedable in tests.
package random

import (
	"math/rand"
	"time"
)

// #region source-interface

// Source is the single point all randomized decisions draw from.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n). n must be > 0.
	IntN(n int) int
	// Chance reports whether a draw against probability p succeeded.
	// p <= 0 never succeeds, p >= 1 always succeeds.
	Chance(p float64) bool
	// Between returns a value in [min, max].
	Between(min, max float64) float64
	// DurationBetween returns a duration in [min, max].
	DurationBetween(min, max time.Duration) time.Duration
}

// #endregion source-interface

// #region seeded

type seeded struct {
	r *rand.Rand
}

// NewSeeded returns a Source with a fixed seed. Used by tests and anywhere
// reproducible plans are needed.
func NewSeeded(seed int64) Source {
	return &seeded{r: rand.New(rand.NewSource(seed))}
}

// New returns a Source seeded from the wall clock.
func New() Source {
	return NewSeeded(time.Now().UnixNano())
}

func (s *seeded) Float64() float64 { return s.r.Float64() }

func (s *seeded) IntN(n int) int { return s.r.Intn(n) }

func (s *seeded) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.r.Float64() < p
}

func (s *seeded) Between(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.r.Float64()*(max-min)
}

func (s *seeded) DurationBetween(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(s.r.Int63n(int64(max-min)+1))
}

// #endregion seeded
