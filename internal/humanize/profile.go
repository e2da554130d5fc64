package humanize

import "time"

// #region ranges

// Range is a [min,max] sampling interval.
type Range struct {
	Min float64
	Max float64
}

// DurationRange is a [min,max] duration sampling interval.
type DurationRange struct {
	Min time.Duration
	Max time.Duration
}

// #endregion ranges

// #region profile

// Profile holds every timing/movement distribution and probability knob the
// planner samples from. Read-only during a run.
type Profile struct {
	CharsPerSecond  Range         // typing rate, sampled once per chunk
	SentencePause   DurationRange // after . ! ?
	ClausePause     DurationRange // after , ; :
	WordPause       DurationRange // after spaces
	InterChunkPause DurationRange // between chunks
	TypoNoticePause DurationRange // between a typo and its backspace
	PointerStep     DurationRange // per pointer waypoint

	MaxChunkLen int // chunks longer than this split at clause/word boundaries

	ErrorProbability      float64 // chance per character to consider a typo; 0 disables injection
	CorrectionProbability float64 // chance the considered typo is actually emitted (and corrected)
	ScrollProbability     float64 // incidental actions between chunks, each gated separately
	HoverProbability      float64
	SafeClickProbability  float64
}

// DefaultProfile returns conservative human-ish defaults.
func DefaultProfile() Profile {
	return Profile{
		CharsPerSecond:  Range{Min: 3, Max: 7},
		SentencePause:   DurationRange{Min: 600 * time.Millisecond, Max: 1500 * time.Millisecond},
		ClausePause:     DurationRange{Min: 250 * time.Millisecond, Max: 700 * time.Millisecond},
		WordPause:       DurationRange{Min: 30 * time.Millisecond, Max: 120 * time.Millisecond},
		InterChunkPause: DurationRange{Min: 800 * time.Millisecond, Max: 2500 * time.Millisecond},
		TypoNoticePause: DurationRange{Min: 150 * time.Millisecond, Max: 400 * time.Millisecond},
		PointerStep:     DurationRange{Min: 20 * time.Millisecond, Max: 60 * time.Millisecond},

		MaxChunkLen: 120,

		ErrorProbability:      0.03,
		CorrectionProbability: 0.9,
		ScrollProbability:     0.2,
		HoverProbability:      0.15,
		SafeClickProbability:  0.05,
	}
}

// #endregion profile
