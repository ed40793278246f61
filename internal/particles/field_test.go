package particles

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

type strokeCall struct {
	x1, y1, x2, y2 float64
	c              color.Color
}

// recordingSurface records draw calls instead of rasterizing them.
type recordingSurface struct {
	w, h    int
	clears  int
	circles int
	strokes []strokeCall
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }
func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = 0
	s.strokes = s.strokes[:0]
}
func (s *recordingSurface) FillCircle(x, y, r float64, c color.Color) { s.circles++ }
func (s *recordingSurface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	s.strokes = append(s.strokes, strokeCall{x1, y1, x2, y2, c})
}

type fixedAccent struct{ c color.Color }

func (a fixedAccent) Accent() color.Color { return a.c }

func newTestField(seed int64) *Field {
	return NewField(rand.New(rand.NewSource(seed)), fixedAccent{color.RGBA{R: 1, G: 2, B: 3, A: 255}})
}

func alphaOf(c color.Color) float64 {
	_, _, _, a := c.RGBA()
	return float64(a) / 0xffff
}

// TestInitializeProducesFullSet verifies count, distributions and re-invocation
func TestInitializeProducesFullSet(t *testing.T) {
	f := newTestField(7)
	s := &recordingSurface{w: 800, h: 600}

	for round := 0; round < 3; round++ {
		f.Initialize(s)

		ps := f.Particles()
		if len(ps) != Count {
			t.Fatalf("Expected %d particles, got %d", Count, len(ps))
		}
		for i, p := range ps {
			if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
				t.Errorf("Particle %d out of bounds: (%f, %f)", i, p.X, p.Y)
			}
			if p.VX < -MaxSpeed || p.VX > MaxSpeed || p.VY < -MaxSpeed || p.VY > MaxSpeed {
				t.Errorf("Particle %d velocity out of range: (%f, %f)", i, p.VX, p.VY)
			}
			if p.Size < MinSize || p.Size > MaxSize {
				t.Errorf("Particle %d size out of range: %f", i, p.Size)
			}
			if p.Color != (color.RGBA{R: 1, G: 2, B: 3, A: 255}) {
				t.Errorf("Particle %d expected accent color, got %v", i, p.Color)
			}
		}
	}
}

// TestInitializeReplacesSet verifies that re-initialization does not reuse particles
func TestInitializeReplacesSet(t *testing.T) {
	f := newTestField(11)
	s := &recordingSurface{w: 800, h: 600}
	f.Initialize(s)
	first := f.Particles()
	f.Initialize(s)
	second := f.Particles()

	same := 0
	for i := range first {
		if first[i].X == second[i].X && first[i].Y == second[i].Y {
			same++
		}
	}
	if same == len(first) {
		t.Error("Expected re-initialization to replace particle positions")
	}
}

// TestNilSurfaceIsNoop verifies the silent guard for a missing surface
func TestNilSurfaceIsNoop(t *testing.T) {
	f := newTestField(1)
	f.Initialize(nil)
	f.Resize(nil)
	f.Tick()

	if f.Bound() {
		t.Error("Expected field to stay unbound")
	}
	if n := len(f.Particles()); n != 0 {
		t.Errorf("Expected no particles, got %d", n)
	}
}

// TestTickMovesByVelocity verifies one frame of motion with wraparound on 800x600
func TestTickMovesByVelocity(t *testing.T) {
	f := newTestField(3)
	s := &recordingSurface{w: 800, h: 600}
	f.Initialize(s)
	before := f.Particles()

	f.Tick()
	after := f.Particles()

	for i := range before {
		wantX := wrap(before[i].X+before[i].VX, 800)
		wantY := wrap(before[i].Y+before[i].VY, 600)
		if after[i].X != wantX || after[i].Y != wantY {
			t.Errorf("Particle %d: expected (%f, %f), got (%f, %f)", i, wantX, wantY, after[i].X, after[i].Y)
		}
		if after[i].VX != before[i].VX || after[i].Size != before[i].Size {
			t.Errorf("Particle %d: velocity or size changed", i)
		}
	}
	if s.clears != 1 {
		t.Errorf("Expected one clear per tick, got %d", s.clears)
	}
	if s.circles != Count {
		t.Errorf("Expected %d circles, got %d", Count, s.circles)
	}
	if f.pairs != Count*(Count+1)/2 {
		t.Errorf("Expected %d pairs visited, got %d", Count*(Count+1)/2, f.pairs)
	}
}

// TestWraparoundInvariant verifies bounds hold over many frames
func TestWraparoundInvariant(t *testing.T) {
	f := newTestField(42)
	s := &recordingSurface{w: 120, h: 90}
	f.Initialize(s)

	for frame := 0; frame < 2000; frame++ {
		f.Tick()
		for i, p := range f.Particles() {
			if p.X < 0 || p.X >= 120 || p.Y < 0 || p.Y >= 90 {
				t.Fatalf("Frame %d particle %d out of bounds: (%f, %f)", frame, i, p.X, p.Y)
			}
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		v, b float64
		want float64
	}{
		{"inside", 10, 100, 10},
		{"far edge", 100, 100, 0},
		{"past far edge", 100.4, 100, 0},
		{"below zero", -0.25, 100, 99.75},
		{"zero", 0, 100, 0},
		{"tiny negative rounds to edge", -1e-18, 100, 0},
		{"empty bound", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrap(tt.v, tt.b); got != tt.want {
				t.Errorf("Expected %f, got %f", tt.want, got)
			}
		})
	}
}

// TestResizeKeepsParticles verifies resize changes bounds only
func TestResizeKeepsParticles(t *testing.T) {
	f := newTestField(5)
	s := &recordingSurface{w: 800, h: 600}
	f.Initialize(s)
	before := f.Particles()

	s.w, s.h = 200, 100
	f.Resize(s)

	after := f.Particles()
	if len(after) != Count {
		t.Fatalf("Expected %d particles after resize, got %d", Count, len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Particle %d changed on resize", i)
		}
	}
	if w, h := f.Bounds(); w != 200 || h != 100 {
		t.Errorf("Expected bounds 200x100, got %fx%f", w, h)
	}

	// Out-of-bounds particles come back on their next update.
	f.Tick()
	for i, p := range f.Particles() {
		if p.X < 0 || p.X >= 200 || p.Y < 0 || p.Y >= 100 {
			t.Errorf("Particle %d still out of bounds after tick: (%f, %f)", i, p.X, p.Y)
		}
	}
}

func TestConnectionAlpha(t *testing.T) {
	tests := []struct {
		d       float64
		want    float64
		connect bool
	}{
		{0, 0.2, true},
		{50, 0.1, true},
		{99.999, 0.2 * (1 - 99.999/100), true},
		{100, 0, false},
		{150, 0, false},
	}
	for _, tt := range tests {
		got, ok := ConnectionAlpha(tt.d)
		if ok != tt.connect {
			t.Errorf("d=%f: expected connect=%v, got %v", tt.d, tt.connect, ok)
		}
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("d=%f: expected alpha %f, got %f", tt.d, tt.want, got)
		}
	}
}

// TestConnectionPassPair verifies the line drawn between two particles 50 apart
func TestConnectionPassPair(t *testing.T) {
	f := newTestField(1)
	s := &recordingSurface{w: 800, h: 600}
	f.Initialize(s)
	f.particles = []Particle{
		{X: 0, Y: 0, Size: 1, Color: LineColor},
		{X: 50, Y: 0, Size: 1, Color: LineColor},
		{X: 400, Y: 400, Size: 1, Color: LineColor},
	}

	f.Render()

	// Three self pairs plus the 50-unit pair; the far particle connects to nothing else.
	if len(s.strokes) != 4 {
		t.Fatalf("Expected 4 strokes, got %d", len(s.strokes))
	}
	var found bool
	for _, st := range s.strokes {
		if st.x1 == 0 && st.x2 == 50 {
			found = true
			if a := alphaOf(st.c); math.Abs(a-0.1) > 1.0/255 {
				t.Errorf("Expected stroke alpha 0.1, got %f", a)
			}
		}
		if st.x1 == st.x2 && st.y1 == st.y2 {
			if a := alphaOf(st.c); math.Abs(a-0.2) > 1.0/255 {
				t.Errorf("Expected self pair alpha 0.2, got %f", a)
			}
		}
	}
	if !found {
		t.Error("Expected a stroke between (0,0) and (50,0)")
	}
	if f.pairs != 6 {
		t.Errorf("Expected 6 pairs, got %d", f.pairs)
	}
}

// TestAccentReadAtCreation verifies later accent changes do not recolor particles
func TestAccentReadAtCreation(t *testing.T) {
	acc := &switchAccent{c: color.RGBA{R: 10, A: 255}}
	f := NewField(rand.New(rand.NewSource(2)), acc)
	s := &recordingSurface{w: 100, h: 100}
	f.Initialize(s)

	acc.c = color.RGBA{G: 10, A: 255}
	f.Tick()

	for i, p := range f.Particles() {
		if p.Color != (color.RGBA{R: 10, A: 255}) {
			t.Errorf("Particle %d recolored to %v", i, p.Color)
		}
	}
}

type switchAccent struct{ c color.Color }

func (a *switchAccent) Accent() color.Color { return a.c }
