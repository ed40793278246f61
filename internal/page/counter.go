package page

import "math"

const (
	countDuration = 2000.0 // ms
	frameMillis   = 16.0
	// counterThreshold is the visible fraction that starts a counter.
	counterThreshold = 0.5
)

// Counter counts up to its target over roughly two seconds of frames.
type Counter struct {
	Spec    CounterSpec
	current float64
	step    float64
	started bool
	done    bool
}

func NewCounter(spec CounterSpec) *Counter {
	return &Counter{
		Spec: spec,
		step: float64(spec.Target) / (countDuration / frameMillis),
	}
}

// Start begins counting. Later calls are ignored.
func (c *Counter) Start() {
	c.started = true
}

func (c *Counter) Started() bool { return c.started }
func (c *Counter) Done() bool    { return c.done }

// Step advances one frame.
func (c *Counter) Step() {
	if !c.started || c.done {
		return
	}
	c.current += c.step
	if c.current >= float64(c.Spec.Target) {
		c.current = float64(c.Spec.Target)
		c.done = true
	}
}

// Value is the number currently displayed.
func (c *Counter) Value() int {
	if c.done {
		return c.Spec.Target
	}
	return int(math.Floor(c.current))
}

// observeCounters starts each counter once half of it is on screen.
func (s *State) observeCounters() {
	for _, c := range s.Counters {
		if c.started {
			continue
		}
		if visibleFraction(c.Spec.Top-s.ScrollY, c.Spec.Height, s.ViewportH) >= counterThreshold {
			c.Start()
		}
	}
}

// visibleFraction is the share of a box at viewport offset top that lies
// inside [0, viewportH).
func visibleFraction(top, height, viewportH float64) float64 {
	if height <= 0 {
		return 0
	}
	lo := math.Max(top, 0)
	hi := math.Min(top+height, viewportH)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / height
}
