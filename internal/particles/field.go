// Package particles animates the decorative particle background: a fixed
// set of drifting points with faded lines between close neighbours.
package particles

import (
	"image/color"
	"math"
	"math/rand"
)

const (
	// Count is the number of particles in a freshly initialized field.
	Count = 50

	MinSize  = 1.0
	MaxSize  = 3.0
	MaxSpeed = 0.5

	// MaxDistance is the exclusive range within which two particles are connected.
	MaxDistance = 100.0
	// LineAlpha scales the connection opacity at distance zero.
	LineAlpha = 0.2
	LineWidth = 1.0
)

// LineColor is the fixed hue of connection lines; its alpha is replaced per line.
var LineColor = color.RGBA{R: 99, G: 102, B: 241, A: 255}

// Surface is the 2D raster the field draws on.
type Surface interface {
	// Size reports the displayed pixel box of the surface.
	Size() (width, height int)
	Clear()
	FillCircle(x, y, r float64, c color.Color)
	StrokeLine(x1, y1, x2, y2, width float64, c color.Color)
}

// AccentSource provides the accent color new particles are painted with.
type AccentSource interface {
	Accent() color.Color
}

// Field owns the particle set and the surface it is drawn on.
type Field struct {
	surface       Surface
	accent        AccentSource
	rng           *rand.Rand
	width, height float64
	particles     []Particle

	// pairs counts the pairs visited by the last connection pass.
	pairs int
	lines int
}

// NewField creates an unbound field. Nothing is drawn until Initialize
// binds a surface.
func NewField(rng *rand.Rand, accent AccentSource) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Field{rng: rng, accent: accent}
}

// Initialize binds the field to s, matches the backing resolution to the
// displayed size and replaces the particle set. A nil surface leaves the
// field untouched.
func (f *Field) Initialize(s Surface) {
	if s == nil {
		return
	}
	f.surface = s
	f.Resize(s)

	f.particles = make([]Particle, 0, Count)
	for i := 0; i < Count; i++ {
		f.particles = append(f.particles, newParticle(f.rng, f.width, f.height, f.accentColor()))
	}
}

// Resize re-reads the displayed size of s. Particles are left where they
// are; the ones now out of bounds wrap on their next update.
func (f *Field) Resize(s Surface) {
	if s == nil {
		return
	}
	w, h := s.Size()
	f.width, f.height = float64(w), float64(h)
}

// Tick advances one animation frame.
func (f *Field) Tick() {
	if f.surface == nil {
		return
	}
	f.Step()
	f.Render()
}

// Step moves every particle by its velocity.
func (f *Field) Step() {
	for i := range f.particles {
		f.particles[i].update(f.width, f.height)
	}
}

// Render clears the surface, draws the particles and connects close pairs.
func (f *Field) Render() {
	if f.surface == nil {
		return
	}
	f.surface.Clear()
	for _, p := range f.particles {
		f.surface.FillCircle(p.X, p.Y, p.Size, p.Color)
	}
	f.connect()
}

// connect strokes a line between every pair closer than MaxDistance.
// Self pairs are visited too; they have zero length.
func (f *Field) connect() {
	f.pairs, f.lines = 0, 0
	for a := 0; a < len(f.particles); a++ {
		for b := a; b < len(f.particles); b++ {
			f.pairs++
			pa, pb := f.particles[a], f.particles[b]
			alpha, ok := ConnectionAlpha(math.Hypot(pa.X-pb.X, pa.Y-pb.Y))
			if !ok {
				continue
			}
			f.lines++
			f.surface.StrokeLine(pa.X, pa.Y, pb.X, pb.Y, LineWidth, lineColor(alpha))
		}
	}
}

// ConnectionAlpha returns the stroke opacity for two particles d apart, and
// false when they are too far apart to be connected.
func ConnectionAlpha(d float64) (float64, bool) {
	if d < 0 || d >= MaxDistance {
		return 0, false
	}
	return LineAlpha * (1 - d/MaxDistance), true
}

func lineColor(alpha float64) color.NRGBA {
	return color.NRGBA{R: LineColor.R, G: LineColor.G, B: LineColor.B, A: uint8(math.Round(alpha * 255))}
}

func (f *Field) accentColor() color.Color {
	if f.accent == nil {
		return LineColor
	}
	return f.accent.Accent()
}

// Particles returns a copy of the current particle set.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Bounds reports the backing resolution the particles wrap within.
func (f *Field) Bounds() (width, height float64) {
	return f.width, f.height
}

// Bound reports whether Initialize has attached a surface.
func (f *Field) Bound() bool {
	return f.surface != nil
}
