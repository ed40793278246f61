package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// layer is the offscreen image the particle field draws on. It is
// composited onto the screen every frame and reallocated on resize.
type layer struct {
	img  *ebiten.Image
	w, h int
}

// ensure (re)allocates the backing image when the size changed.
func (l *layer) ensure(w, h int) {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if l.img != nil && l.w == w && l.h == h {
		return
	}
	if l.img != nil {
		l.img.Deallocate()
	}
	l.img = ebiten.NewImage(w, h)
	l.w, l.h = w, h
}

func (l *layer) Size() (int, int) {
	return l.w, l.h
}

func (l *layer) Clear() {
	l.img.Clear()
}

func (l *layer) FillCircle(x, y, r float64, c color.Color) {
	vector.DrawFilledCircle(l.img, float32(x), float32(y), float32(r), c, true)
}

func (l *layer) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	vector.StrokeLine(l.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), c, true)
}
