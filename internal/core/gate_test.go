package core

import (
	"testing"
	"time"
)

func TestGateInterval(t *testing.T) {
	if got := NewGate(20).Interval(); got != 50*time.Millisecond {
		t.Fatalf("interval = %v, expected 50ms", got)
	}
	// Non-positive rates fall back to the default.
	if got := NewGate(0).Interval(); got != 50*time.Millisecond {
		t.Fatalf("default interval = %v, expected 50ms", got)
	}
}

func TestGateFirstTickEligible(t *testing.T) {
	g := NewGate(20)
	if !g.Ready(time.Unix(100, 0)) {
		t.Fatal("first tick was gated")
	}
}

func TestGateBlocksWithinInterval(t *testing.T) {
	g := NewGate(20)
	t0 := time.Unix(100, 0)
	g.Ready(t0)

	if g.Ready(t0.Add(49 * time.Millisecond)) {
		t.Fatal("gate opened before the interval elapsed")
	}
	if !g.Ready(t0.Add(50 * time.Millisecond)) {
		t.Fatal("gate stayed closed after the interval elapsed")
	}
	// A blocked tick must not advance the reference point.
	if g.Ready(t0.Add(99 * time.Millisecond)) {
		t.Fatal("blocked tick advanced the gate")
	}
	if !g.Ready(t0.Add(100 * time.Millisecond)) {
		t.Fatal("gate stayed closed a full interval after the last open")
	}
}


