package humanize

import "errors"

// ErrUnsafeCancel means Cancel was called somewhere other than a
// cancel-safe pause boundary.
var ErrUnsafeCancel = errors.New("cancellation only allowed at a cancel-safe pause")

// #region walker-state

// WalkerState names the executor-visible phase of a plan walk.
type WalkerState string

const (
	StateIdle            WalkerState = "idle"
	StateTyping          WalkerState = "typing"
	StateInterChunkPause WalkerState = "inter_chunk_pause"
	StateDone            WalkerState = "done"
	StateCancelled       WalkerState = "cancelled"
)

// #endregion walker-state

// #region walker

// Walker hands out a plan's events in strict order and enforces the
// cancellation contract: cancelling is only possible at cancel-safe pauses,
// where the emitted text is a valid prefix of the intended text.
type Walker struct {
	plan  *Plan
	idx   int
	state WalkerState
	last  *Event
}

// NewWalker starts a walk over the plan.
func NewWalker(plan *Plan) *Walker {
	return &Walker{plan: plan, state: StateIdle}
}

// State returns the current phase.
func (w *Walker) State() WalkerState { return w.state }

// #endregion walker

// #region next

// Next returns the next event, or false when the walk is finished or
// cancelled.
func (w *Walker) Next() (Event, bool) {
	if w.state == StateDone || w.state == StateCancelled {
		return Event{}, false
	}
	if w.idx >= len(w.plan.Events) {
		w.state = StateDone
		return Event{}, false
	}

	ev := w.plan.Events[w.idx]
	w.idx++
	w.last = &ev

	switch {
	case ev.Kind == EventPause && ev.ChunkEnd:
		w.state = StateInterChunkPause
	default:
		w.state = StateTyping
	}
	if w.idx >= len(w.plan.Events) {
		w.state = StateDone
	}
	return ev, true
}

// #endregion next

// #region cancel

// CanCancel reports whether the walk sits at a cancel-safe pause.
func (w *Walker) CanCancel() bool {
	return w.last != nil && w.last.Kind == EventPause && w.last.CancelSafe
}

// Cancel aborts the walk. Only legal at a cancel-safe pause, which
// guarantees no partially-typed, un-deletable residue: typos are always
// corrected before such a pause is emitted.
func (w *Walker) Cancel() error {
	if !w.CanCancel() {
		return ErrUnsafeCancel
	}
	w.state = StateCancelled
	return nil
}

// TypedSoFar reconstructs the text emitted up to the current position.
func (w *Walker) TypedSoFar() string {
	return TypedTextUntil(w.plan.Events, w.idx)
}

// #endregion cancel
