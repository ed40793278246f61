package sound

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

const toneAmplitude = 0.4

// tone is a sine at freq lasting d, with a linear decay so it ends silent.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && pos < n; i++ {
			t := float64(pos) / float64(sr)
			env := 1 - float64(pos)/float64(n)
			v := math.Sin(2*math.Pi*freq*t) * env * toneAmplitude
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return i, true
	})
}

// Cue is an interface sound.
type Cue int

const (
	CueClick Cue = iota
	CueSuccess
	CueFailure
)

// build returns the streamer for c.
func (c Cue) build(sr beep.SampleRate) beep.Streamer {
	switch c {
	case CueSuccess:
		return beep.Seq(tone(sr, 660, 80*time.Millisecond), tone(sr, 880, 140*time.Millisecond))
	case CueFailure:
		return beep.Seq(tone(sr, 440, 100*time.Millisecond), tone(sr, 330, 160*time.Millisecond))
	default:
		return tone(sr, 1200, 25*time.Millisecond)
	}
}
