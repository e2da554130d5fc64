// Package humanize converts response text into an ordered plan of primitive
// input events with human-like timing, plus pointer paths and incidental
// actions. The planner only computes the plan; executing it against a
// browser is the embedding executor's job.
package humanize

import (
	"strings"
	"time"
)

// #region event-kind

// EventKind tags an actuation event variant.
type EventKind string

const (
	EventTypeChar    EventKind = "type_char"
	EventBackspace   EventKind = "backspace"
	EventPause       EventKind = "pause"
	EventPointerStep EventKind = "pointer_step"
	EventIncidental  EventKind = "incidental"
)

// #endregion event-kind

// #region incidental-actions

// Incidental action names. Advisory: the executor may perform or skip them
// without breaking plan progress.
const (
	ActionScroll    = "scroll"
	ActionHover     = "hover"
	ActionSafeClick = "click_safe_element"
)

// #endregion incidental-actions

// #region event

// Event is one primitive actuation instruction. Events are consumed
// strictly in order; there are no concurrent events.
type Event struct {
	Kind     EventKind
	Char     rune          // EventTypeChar
	Duration time.Duration // emission time or pause length
	DX, DY   int           // EventPointerStep
	Action   string        // EventIncidental

	// CancelSafe marks pauses where the executor may cancel: the text typed
	// so far is a valid prefix of the intended text. Pauses inside an
	// error-correction sequence are not safe.
	CancelSafe bool
	// ChunkEnd marks the pause that closes a chunk.
	ChunkEnd bool
}

// #endregion event

// #region typed-text

// TypedText reconstructs the text the executor ends up with after running
// the events in order, applying backspaces to injected typos.
func TypedText(events []Event) string {
	var runes []rune
	for _, ev := range events {
		switch ev.Kind {
		case EventTypeChar:
			runes = append(runes, ev.Char)
		case EventBackspace:
			if len(runes) > 0 {
				runes = runes[:len(runes)-1]
			}
		}
	}
	return string(runes)
}

// TypedTextUntil reconstructs the text after the first n events. Used to
// check the prefix invariant at cancellation points.
func TypedTextUntil(events []Event, n int) string {
	if n > len(events) {
		n = len(events)
	}
	return TypedText(events[:n])
}

// #endregion typed-text

// #region punctuation-classes

func isSentenceEnd(r rune) bool { return strings.ContainsRune(".!?", r) }

func isClausePunct(r rune) bool { return strings.ContainsRune(",;:", r) }

// #endregion punctuation-classes
