package page

import (
	"fmt"
	"image/color"
	"time"
)

// Theme is the page color scheme.
type Theme string

const (
	Dark  Theme = "dark"
	Light Theme = "light"

	// ThemeKey is the preference key the theme is stored under.
	ThemeKey = "theme"

	togglePress      = 150 * time.Millisecond
	togglePressScale = 0.95
)

// ParseTheme maps a stored value to a Theme, falling back to Dark.
func ParseTheme(s string) Theme {
	if Theme(s) == Light {
		return Light
	}
	return Dark
}

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Icon names the glyph shown on the toggle button.
func (t Theme) Icon() string {
	if t == Dark {
		return "moon"
	}
	return "sun"
}

// Label is the toggle text: the theme a click switches to.
func (t Theme) Label() string {
	if t == Dark {
		return "Light"
	}
	return "Dark"
}

// Palette is the set of colors a theme paints with.
type Palette struct {
	Background color.RGBA
	Surface    color.RGBA
	Card       color.RGBA
	Text       color.RGBA
	Muted      color.RGBA
	Border     color.RGBA
	AccentMain color.RGBA
	AccentAlt  color.RGBA
	Success    color.RGBA
	Error      color.RGBA
}

var palettes = map[Theme]Palette{
	Dark: {
		Background: color.RGBA{R: 15, G: 15, B: 26, A: 255},
		Surface:    color.RGBA{R: 22, G: 22, B: 38, A: 255},
		Card:       color.RGBA{R: 30, G: 30, B: 52, A: 255},
		Text:       color.RGBA{R: 241, G: 241, B: 247, A: 255},
		Muted:      color.RGBA{R: 148, G: 148, B: 170, A: 255},
		Border:     color.RGBA{R: 48, G: 48, B: 72, A: 255},
		AccentMain: color.RGBA{R: 99, G: 102, B: 241, A: 255},
		AccentAlt:  color.RGBA{R: 139, G: 92, B: 246, A: 255},
		Success:    color.RGBA{R: 16, G: 185, B: 129, A: 255},
		Error:      color.RGBA{R: 239, G: 68, B: 68, A: 255},
	},
	Light: {
		Background: color.RGBA{R: 248, G: 250, B: 252, A: 255},
		Surface:    color.RGBA{R: 241, G: 245, B: 249, A: 255},
		Card:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Text:       color.RGBA{R: 15, G: 23, B: 42, A: 255},
		Muted:      color.RGBA{R: 100, G: 116, B: 139, A: 255},
		Border:     color.RGBA{R: 226, G: 232, B: 240, A: 255},
		AccentMain: color.RGBA{R: 79, G: 70, B: 229, A: 255},
		AccentAlt:  color.RGBA{R: 124, G: 58, B: 237, A: 255},
		Success:    color.RGBA{R: 5, G: 150, B: 105, A: 255},
		Error:      color.RGBA{R: 220, G: 38, B: 38, A: 255},
	},
}

// Palette returns the colors of t.
func (t Theme) Palette() Palette {
	return palettes[ParseTheme(string(t))]
}

// Accent is the theme's accent color. A fixed Theme can feed a particle
// field directly.
func (t Theme) Accent() color.Color {
	return t.Palette().AccentMain
}

// Accent returns the accent color of the current theme. State satisfies
// particles.AccentSource through it.
func (s *State) Accent() color.Color {
	return s.Theme.Accent()
}

// ToggleTheme flips the theme and stores it. The switch applies even when
// the store fails to persist it.
func (s *State) ToggleTheme(now time.Time) error {
	s.Theme = s.Theme.Toggled()
	s.themePressUntil = now.Add(togglePress)
	if err := s.store.Set(ThemeKey, string(s.Theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// ToggleScale is the draw scale of the theme button.
func (s *State) ToggleScale(now time.Time) float64 {
	if now.Before(s.themePressUntil) {
		return togglePressScale
	}
	return 1
}
