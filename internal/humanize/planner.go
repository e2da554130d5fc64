package humanize

import (
	"time"

	"github.com/google/uuid"

	"github.com/mkowalczyk/engagepilot/internal/random"
)

// #region plan

// Plan is the ordered event list for one response text.
type Plan struct {
	ID     string
	Text   string
	Chunks []string
	Events []Event
}

// #endregion plan

// #region planner

// Planner samples a profile's distributions to build actuation plans.
// It is deterministic given its random source.
type Planner struct {
	profile Profile
	rng     random.Source
}

// NewPlanner creates a planner over the given profile.
func NewPlanner(profile Profile, rng random.Source) *Planner {
	return &Planner{profile: profile, rng: rng}
}

// #endregion planner

// #region plan-text

// Plan converts text into timed typing events. The typing rate is sampled
// once per chunk for locally consistent, globally variable pacing. Injected
// typos are always corrected before the chunk ends, so every cancel-safe
// pause leaves a valid prefix of the intended text.
func (p *Planner) Plan(text string) *Plan {
	chunks := SplitChunks(text, p.profile.MaxChunkLen)
	plan := &Plan{
		ID:     uuid.New().String(),
		Text:   text,
		Chunks: chunks,
	}

	for i, chunk := range chunks {
		p.planChunk(plan, chunk)

		last := i == len(chunks)-1
		if !last {
			plan.Events = append(plan.Events, p.incidentalEvents()...)
			plan.Events = append(plan.Events, Event{
				Kind:       EventPause,
				Duration:   p.rng.DurationBetween(p.profile.InterChunkPause.Min, p.profile.InterChunkPause.Max),
				CancelSafe: true,
				ChunkEnd:   true,
			})
		}
	}
	return plan
}

// #endregion plan-text

// #region plan-chunk

func (p *Planner) planChunk(plan *Plan, chunk string) {
	cps := p.rng.Between(p.profile.CharsPerSecond.Min, p.profile.CharsPerSecond.Max)
	if cps <= 0 {
		cps = 1
	}
	charDelay := time.Duration(float64(time.Second) / cps)

	for _, r := range chunk {
		p.maybeInjectTypo(plan, r, charDelay)

		plan.Events = append(plan.Events, Event{
			Kind:     EventTypeChar,
			Char:     r,
			Duration: charDelay,
		})

		if pause, ok := p.pauseAfter(r); ok {
			pause.CancelSafe = true
			plan.Events = append(plan.Events, pause)
		}
	}
}

// pauseAfter returns the pause owed after the given rune: long after
// sentence-ending punctuation, medium after clause punctuation, short after
// word boundaries.
func (p *Planner) pauseAfter(r rune) (Event, bool) {
	var dr DurationRange
	switch {
	case isSentenceEnd(r):
		dr = p.profile.SentencePause
	case isClausePunct(r):
		dr = p.profile.ClausePause
	case r == ' ' || r == '\n' || r == '\t':
		dr = p.profile.WordPause
	default:
		return Event{}, false
	}
	return Event{
		Kind:     EventPause,
		Duration: p.rng.DurationBetween(dr.Min, dr.Max),
	}, true
}

// #endregion plan-chunk

// #region typo-injection

// maybeInjectTypo emits a wrong adjacent character, a notice pause, and a
// backspace ahead of the correct character. The error draw gates the
// feature (0 disables it entirely); the correction draw gates whether the
// typo is actually emitted — an uncorrectable typo would break the
// cancellation prefix guarantee, so typos only ever appear together with
// their correction.
func (p *Planner) maybeInjectTypo(plan *Plan, r rune, charDelay time.Duration) {
	if !p.rng.Chance(p.profile.ErrorProbability) {
		return
	}
	if !p.rng.Chance(p.profile.CorrectionProbability) {
		return
	}
	wrong, ok := adjacentChar(r, p.rng)
	if !ok {
		return
	}
	plan.Events = append(plan.Events,
		Event{Kind: EventTypeChar, Char: wrong, Duration: charDelay},
		Event{
			Kind:     EventPause,
			Duration: p.rng.DurationBetween(p.profile.TypoNoticePause.Min, p.profile.TypoNoticePause.Max),
			// Not cancel safe: the typo is still in the field.
		},
		Event{Kind: EventBackspace, Duration: charDelay},
	)
}

// keyboardNeighbors maps lowercase letters to their QWERTY neighbors for
// adjacent-ish typos.
var keyboardNeighbors = map[rune]string{
	'a': "qwsz", 'b': "vghn", 'c': "xdfv", 'd': "serfcx", 'e': "wsdr",
	'f': "drtgvc", 'g': "ftyhbv", 'h': "gyujnb", 'i': "ujko", 'j': "huikmn",
	'k': "jiolm", 'l': "kop", 'm': "njk", 'n': "bhjm", 'o': "iklp",
	'p': "ol", 'q': "wa", 'r': "edft", 's': "awedxz", 't': "rfgy",
	'u': "yhji", 'v': "cfgb", 'w': "qase", 'x': "zsdc", 'y': "tghu",
	'z': "asx",
}

// adjacentChar picks a QWERTY neighbor of r, preserving case. Characters
// without neighbors (digits, punctuation) get no typo.
func adjacentChar(r rune, rng random.Source) (rune, bool) {
	lower := r
	upper := false
	if r >= 'A' && r <= 'Z' {
		lower = r + ('a' - 'A')
		upper = true
	}
	neighbors, ok := keyboardNeighbors[lower]
	if !ok {
		return 0, false
	}
	wrong := rune(neighbors[rng.IntN(len(neighbors))])
	if upper {
		wrong -= 'a' - 'A'
	}
	return wrong, true
}

// #endregion typo-injection

// #region incidental

// incidentalEvents rolls each incidental action's own probability. Emitted
// between chunks only; all advisory.
func (p *Planner) incidentalEvents() []Event {
	var events []Event
	rolls := []struct {
		prob   float64
		action string
	}{
		{p.profile.ScrollProbability, ActionScroll},
		{p.profile.HoverProbability, ActionHover},
		{p.profile.SafeClickProbability, ActionSafeClick},
	}
	for _, roll := range rolls {
		if p.rng.Chance(roll.prob) {
			events = append(events, Event{
				Kind:     EventIncidental,
				Action:   roll.action,
				Duration: p.rng.DurationBetween(p.profile.PointerStep.Min*10, p.profile.PointerStep.Max*10),
			})
		}
	}
	return events
}

// #endregion incidental
