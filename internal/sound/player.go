// Package sound plays the interface cues and the optional ambient track.
package sound

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

const (
	levelRingSize   = 4096
	resampleQuality = 4
)

// ErrUnsupported is returned for ambient files that are not wav, mp3 or flac.
var ErrUnsupported = errors.New("unsupported audio file")

// Player owns the speaker. A Player that failed to initialize stays silent.
type Player struct {
	sampleRate beep.SampleRate
	latency    time.Duration
	volume     float64
	initDone   bool
	muted      bool

	currentFile *os.File
	streamer    beep.StreamSeekCloser
	ambient     *effects.Volume
	tap         *levelTap
}

// NewPlayer creates a player; nothing is opened until Init.
func NewPlayer(sampleRate int, latency time.Duration, volume float64, muted bool) *Player {
	return &Player{
		sampleRate: beep.SampleRate(sampleRate),
		latency:    latency,
		volume:     volume,
		muted:      muted,
	}
}

// Init opens the audio device.
func (p *Player) Init() error {
	if p.initDone {
		return nil
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(p.latency)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initDone = true
	return nil
}

// Ready reports whether the device is open.
func (p *Player) Ready() bool {
	return p.initDone
}

// Muted reports whether cues and the ambient track are silenced.
func (p *Player) Muted() bool {
	return p.muted
}

// SetMuted silences or restores all output.
func (p *Player) SetMuted(m bool) {
	p.muted = m
	if !p.initDone || p.ambient == nil {
		return
	}
	speaker.Lock()
	p.ambient.Silent = m
	speaker.Unlock()
}

// Play queues a cue. It is a no-op while muted or without a device.
func (p *Player) Play(c Cue) {
	if !p.initDone || p.muted {
		return
	}
	speaker.Play(&effects.Volume{
		Streamer: c.build(p.sampleRate),
		Base:     2,
		Volume:   p.volume,
	})
}

// PlayAmbient decodes path and loops it until Close.
func (p *Player) PlayAmbient(path string) error {
	if !p.initDone {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(f, path)
	if err != nil {
		_ = f.Close()
		return err
	}

	var src beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != p.sampleRate {
		src = beep.Resample(resampleQuality, format.SampleRate, p.sampleRate, src)
	}
	t := newLevelTap(src, levelRingSize)
	vol := &effects.Volume{Streamer: t, Base: 2, Volume: -2, Silent: p.muted}

	p.stopAmbient()
	p.currentFile = f
	p.streamer = streamer
	p.tap = t
	p.ambient = vol

	speaker.Play(vol)
	return nil
}

// Level is the loudness of the ambient track over the last few
// milliseconds, 0 when nothing plays.
func (p *Player) Level() float64 {
	if p.tap == nil || p.muted {
		return 0
	}
	return p.tap.level()
}

// Close stops playback and releases the ambient file.
func (p *Player) Close() {
	if !p.initDone {
		return
	}
	p.stopAmbient()
}

func (p *Player) stopAmbient() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.currentFile != nil {
		_ = p.currentFile.Close()
		p.currentFile = nil
	}
	p.tap = nil
	p.ambient = nil
}

// decode picks a decoder from the file extension.
func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	default:
		return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
}
