package humanize

import (
	"errors"
	"strings"
	"testing"

	"github.com/mkowalczyk/engagepilot/internal/random"
)

func multiChunkPlan(t *testing.T) *Plan {
	t.Helper()
	p := quietProfile()
	p.MaxChunkLen = 15
	plan := NewPlanner(p, random.NewSeeded(9)).Plan("first sentence here. second sentence here.")
	if len(plan.Chunks) < 2 {
		t.Fatalf("test needs a multi-chunk plan, got %d chunks", len(plan.Chunks))
	}
	return plan
}

func TestWalkerRunsToDone(t *testing.T) {
	plan := multiChunkPlan(t)
	w := NewWalker(plan)
	if w.State() != StateIdle {
		t.Errorf("initial state: got %s", w.State())
	}

	count := 0
	for {
		_, ok := w.Next()
		if !ok {
			break
		}
		count++
	}
	if count != len(plan.Events) {
		t.Errorf("walked %d events, plan has %d", count, len(plan.Events))
	}
	if w.State() != StateDone {
		t.Errorf("final state: got %s, want %s", w.State(), StateDone)
	}
	if w.TypedSoFar() != plan.Text {
		t.Errorf("full walk typed %q, want %q", w.TypedSoFar(), plan.Text)
	}
}

func TestWalkerCancelAtSafePause(t *testing.T) {
	plan := multiChunkPlan(t)
	w := NewWalker(plan)

	for {
		ev, ok := w.Next()
		if !ok {
			t.Fatal("no cancel-safe pause found")
		}
		if ev.Kind == EventPause && ev.CancelSafe {
			break
		}
	}

	if !w.CanCancel() {
		t.Fatal("walker must allow cancel at a safe pause")
	}
	if err := w.Cancel(); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if w.State() != StateCancelled {
		t.Errorf("state: got %s, want %s", w.State(), StateCancelled)
	}
	if _, ok := w.Next(); ok {
		t.Error("cancelled walker must not emit further events")
	}
	if typed := w.TypedSoFar(); !strings.HasPrefix(plan.Text, typed) {
		t.Errorf("cancelled mid-plan with non-prefix residue %q", typed)
	}
}

func TestWalkerCancelRejectedMidTyping(t *testing.T) {
	plan := multiChunkPlan(t)
	w := NewWalker(plan)

	// First event is a TypeChar: cancelling here is not allowed.
	if _, ok := w.Next(); !ok {
		t.Fatal("empty plan")
	}
	if w.CanCancel() {
		t.Fatal("cancel must not be allowed mid-typing")
	}
	if err := w.Cancel(); !errors.Is(err, ErrUnsafeCancel) {
		t.Errorf("expected ErrUnsafeCancel, got %v", err)
	}
	if w.State() == StateCancelled {
		t.Error("rejected cancel must not change state")
	}
}

func TestWalkerCancelRejectedDuringTypoCorrection(t *testing.T) {
	p := quietProfile()
	p.ErrorProbability = 1.0
	p.CorrectionProbability = 1.0
	plan := NewPlanner(p, random.NewSeeded(11)).Plan("ab")
	w := NewWalker(plan)

	for {
		ev, ok := w.Next()
		if !ok {
			break
		}
		// The pause between a typo and its backspace is not cancel safe.
		if ev.Kind == EventPause && !ev.CancelSafe {
			if w.CanCancel() {
				t.Fatal("typo-correction pause must reject cancellation")
			}
			return
		}
	}
	t.Fatal("expected a non-cancel-safe pause in a plan with forced typos")
}

func TestWalkerInterChunkState(t *testing.T) {
	plan := multiChunkPlan(t)
	w := NewWalker(plan)

	sawInterChunk := false
	for {
		ev, ok := w.Next()
		if !ok {
			break
		}
		if ev.Kind == EventPause && ev.ChunkEnd && w.State() == StateInterChunkPause {
			sawInterChunk = true
		}
	}
	if !sawInterChunk {
		t.Error("walker never reported the inter-chunk pause state")
	}
}
