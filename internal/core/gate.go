package core

import "time"

// Gate rate-limits simulation updates against wall-clock timestamps.
type Gate struct {
	interval time.Duration
	last     time.Time
}

// NewGate constructs a Gate targeting the given updates-per-second rate.
func NewGate(ups int) *Gate {
	if ups <= 0 {
		ups = 20
	}
	return &Gate{interval: time.Second / time.Duration(ups)}
}

// Interval returns the minimum duration between eligible ticks.
func (g *Gate) Interval() time.Duration { return g.interval }

// Ready reports whether enough time has passed since the last eligible
// tick. The zero last-tick time makes the first call always eligible.
// When it returns true the gate advances to now.
func (g *Gate) Ready(now time.Time) bool {
	if !g.last.IsZero() && now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now
	return true
}


