package sound

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// levelTap wraps a beep.Streamer and keeps the last N samples in a ring
// buffer so the UI can show how loud the ambient track currently is.
type levelTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func newLevelTap(src beep.Streamer, ringSize int) *levelTap {
	return &levelTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *levelTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.filled += n
		if t.filled > len(t.buffer) {
			t.filled = len(t.buffer)
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *levelTap) Err() error { return t.Source.Err() }

// level is the RMS of the buffered samples, mixed down to mono.
func (t *levelTap) level() float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.filled == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < t.filled; i++ {
		mono := (t.buffer[i][0] + t.buffer[i][1]) * 0.5
		sum += mono * mono
	}
	return math.Sqrt(sum / float64(t.filled))
}
