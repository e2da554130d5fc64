package humanize

import (
	"math"
	"time"

	"github.com/mkowalczyk/engagepilot/internal/random"
)

// #region jiggle

// jiggleThreshold is the distance (px) under which a reposition is done as
// small jiggle steps instead of a curved path.
const jiggleThreshold = 40.0

// Jiggle emits 2-4 small pointer steps with shrinking magnitude, for short
// repositioning and post-arrival settling.
func Jiggle(rng random.Source, profile Profile) []Event {
	steps := 2 + rng.IntN(3)
	magnitude := rng.Between(4, 12)

	events := make([]Event, 0, steps)
	for i := 0; i < steps; i++ {
		events = append(events, Event{
			Kind:     EventPointerStep,
			DX:       signed(rng, magnitude),
			DY:       signed(rng, magnitude),
			Duration: rng.DurationBetween(profile.PointerStep.Min, profile.PointerStep.Max),
		})
		magnitude *= 0.6
	}
	return events
}

func signed(rng random.Source, magnitude float64) int {
	v := int(math.Round(rng.Between(1, magnitude)))
	if rng.Chance(0.5) {
		return -v
	}
	return v
}

// #endregion jiggle

// #region curve-path

// PointerPath emits the steps to move the pointer by (dx, dy). Short moves
// jiggle; longer moves follow a multi-waypoint curve with deceleration on
// the final steps and a small micro-adjustment after arrival.
func PointerPath(rng random.Source, profile Profile, dx, dy int) []Event {
	dist := math.Hypot(float64(dx), float64(dy))
	if dist < jiggleThreshold {
		return Jiggle(rng, profile)
	}
	return curvePath(rng, profile, float64(dx), float64(dy), dist)
}

// curvePath approximates a quadratic curve through a control point offset
// perpendicular to the straight line, so the path is never a straight line.
func curvePath(rng random.Source, profile Profile, dx, dy, dist float64) []Event {
	steps := 8 + rng.IntN(7)

	// Perpendicular unit vector scaled by a fraction of the distance.
	px, py := -dy/dist, dx/dist
	bend := rng.Between(0.1, 0.25) * dist
	if rng.Chance(0.5) {
		bend = -bend
	}
	cx, cy := dx/2+px*bend, dy/2+py*bend

	events := make([]Event, 0, steps+2)
	prevX, prevY := 0, 0
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		// Quadratic bezier from origin through (cx,cy) to (dx,dy).
		// Rounding absolute positions keeps the steps summing exactly to
		// the target with no drift.
		x := int(math.Round(2*t*(1-t)*cx + t*t*dx))
		y := int(math.Round(2*t*(1-t)*cy + t*t*dy))

		duration := rng.DurationBetween(profile.PointerStep.Min, profile.PointerStep.Max)
		// Deceleration: the last three steps take progressively longer.
		if remaining := steps - i; remaining < 3 {
			duration += duration * time.Duration(3-remaining)
		}

		events = append(events, Event{
			Kind:     EventPointerStep,
			DX:       x - prevX,
			DY:       y - prevY,
			Duration: duration,
		})
		prevX, prevY = x, y
	}

	// Micro-adjustment after arrival.
	events = append(events, Event{
		Kind:     EventPointerStep,
		DX:       rng.IntN(5) - 2,
		DY:       rng.IntN(5) - 2,
		Duration: rng.DurationBetween(profile.PointerStep.Min, profile.PointerStep.Max),
	})
	return events
}

// #endregion curve-path
