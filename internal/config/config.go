package config

import (
	"flag"
	"fmt"
	"time"
)

const (
	AppName = "portfolio-field"

	WindowWidth  = 1024
	WindowHeight = 720

	// Layout
	NavbarHeight   = 64
	ContentMargin  = 48
	ButtonWidth    = 140
	ButtonHeight   = 40
	MobileBreak    = 760
	MenuItemHeight = 56
	WheelStep      = 60

	// Sound
	SampleRate     = 44100
	SpeakerLatency = time.Second / 20
	CueVolume      = -1.5
)

// Options are the command line settings of the desktop app.
type Options struct {
	PrefsPath string
	Mute      bool
	Ambient   string
	Seed      int64
	Width     int
	Height    int
}

// Parse reads options from args (without the program name).
func Parse(args []string) (Options, error) {
	var o Options
	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.StringVar(&o.PrefsPath, "prefs", "", "preference file (default: user config dir)")
	fs.BoolVar(&o.Mute, "mute", false, "disable interface sounds")
	fs.StringVar(&o.Ambient, "ambient", "", "wav, mp3 or flac file looped in the background")
	fs.Int64Var(&o.Seed, "seed", 0, "particle seed, 0 picks one from the clock")
	fs.IntVar(&o.Width, "width", WindowWidth, "window width")
	fs.IntVar(&o.Height, "height", WindowHeight, "window height")

	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return o, fmt.Errorf("invalid window size %dx%d", o.Width, o.Height)
	}
	return o, nil
}

// SeedOr returns the configured seed, or fallback when none was given.
func (o Options) SeedOr(fallback int64) int64 {
	if o.Seed != 0 {
		return o.Seed
	}
	return fallback
}
