package page

import "time"

// Gate is a timer gate: the first trigger arms a deadline, triggers while
// armed are ignored, and the gate fires once when the deadline passes.
type Gate struct {
	window  time.Duration
	pending bool
	due     time.Time
}

func NewGate(window time.Duration) *Gate {
	return &Gate{window: window}
}

// Trigger arms the gate unless it is already pending. It reports whether
// this call armed it.
func (g *Gate) Trigger(now time.Time) bool {
	if g.pending {
		return false
	}
	g.pending = true
	g.due = now.Add(g.window)
	return true
}

// Fire reports true exactly once per arming, on the first call at or after
// the deadline.
func (g *Gate) Fire(now time.Time) bool {
	if !g.pending || now.Before(g.due) {
		return false
	}
	g.pending = false
	return true
}

func (g *Gate) Pending() bool {
	return g.pending
}
