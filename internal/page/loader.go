package page

import "time"

const (
	loaderHold = 1500 * time.Millisecond
	loaderFade = 500 * time.Millisecond
)

// Loader is the splash shown while the page starts.
type Loader struct {
	loaded time.Time
	hidden bool
	gone   bool
}

func NewLoader(loaded time.Time) Loader {
	return Loader{loaded: loaded}
}

// Update hides the loader after the hold time and removes it after the fade.
func (l *Loader) Update(now time.Time) {
	if !l.hidden && !now.Before(l.loaded.Add(loaderHold)) {
		l.hidden = true
	}
	if l.hidden && !now.Before(l.loaded.Add(loaderHold+loaderFade)) {
		l.gone = true
	}
}

func (l *Loader) Hidden() bool { return l.hidden }
func (l *Loader) Gone() bool   { return l.gone }

// Opacity fades from 1 to 0 once the loader is hidden.
func (l *Loader) Opacity(now time.Time) float64 {
	switch {
	case l.gone:
		return 0
	case l.hidden:
		return 1 - clamp01(float64(now.Sub(l.loaded.Add(loaderHold)))/float64(loaderFade))
	}
	return 1
}
