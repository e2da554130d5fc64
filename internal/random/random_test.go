package random

import (
	"testing"
	"time"
)

func TestSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("diverged at draw %d", i)
		}
	}
}

func TestChanceExtremes(t *testing.T) {
	r := NewSeeded(1)
	for i := 0; i < 50; i++ {
		if r.Chance(0) {
			t.Fatal("p=0 must never succeed")
		}
		if !r.Chance(1) {
			t.Fatal("p=1 must always succeed")
		}
	}
}

func TestBetweenBounds(t *testing.T) {
	r := NewSeeded(7)
	for i := 0; i < 200; i++ {
		v := r.Between(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("out of range: %v", v)
		}
	}
	if v := r.Between(5, 5); v != 5 {
		t.Errorf("degenerate range: got %v", v)
	}
}

func TestDurationBetweenBounds(t *testing.T) {
	r := NewSeeded(9)
	min, max := 100*time.Millisecond, 400*time.Millisecond
	for i := 0; i < 200; i++ {
		d := r.DurationBetween(min, max)
		if d < min || d > max {
			t.Fatalf("out of range: %v", d)
		}
	}
}
