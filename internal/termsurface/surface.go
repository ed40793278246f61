// Package termsurface rasterizes the particle field onto terminal cells.
package termsurface

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

const (
	// CellW and CellH are the pixel box one terminal cell stands for.
	CellW = 8
	CellH = 16

	largeDot = '●'
	smallDot = '•'
	lineDot  = '·'
)

type priority uint8

const (
	empty priority = iota
	line
	particle
)

// Screen is the part of tcell.Screen the surface needs.
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

type cell struct {
	r     rune
	fg    tcell.Color
	level uint32
	prio  priority
}

// Surface implements particles.Surface over a character grid. Drawing
// goes to a buffer; Present copies it to the screen.
type Surface struct {
	screen     Screen
	cols, rows int
	cells      []cell
	bg         tcell.Style
}

func New(screen Screen) *Surface {
	s := &Surface{screen: screen, bg: tcell.StyleDefault}
	s.sync()
	return s
}

// sync reallocates the buffer when the terminal size changed.
func (s *Surface) sync() {
	cols, rows := s.screen.Size()
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	if cols == s.cols && rows == s.rows && s.cells != nil {
		return
	}
	s.cols, s.rows = cols, rows
	s.cells = make([]cell, cols*rows)
}

// Size reports the terminal in pixels.
func (s *Surface) Size() (int, int) {
	s.sync()
	return s.cols * CellW, s.rows * CellH
}

func (s *Surface) Clear() {
	s.sync()
	for i := range s.cells {
		s.cells[i] = cell{}
	}
}

func (s *Surface) FillCircle(x, y, r float64, c color.Color) {
	ch := smallDot
	if r >= 2 {
		ch = largeDot
	}
	s.put(int(x/CellW), int(y/CellH), ch, c, particle)
}

// StrokeLine samples the segment once per cell it crosses.
func (s *Surface) StrokeLine(x1, y1, x2, y2, width float64, c color.Color) {
	cx1, cy1 := x1/CellW, y1/CellH
	cx2, cy2 := x2/CellW, y2/CellH
	steps := int(math.Ceil(math.Max(math.Abs(cx2-cx1), math.Abs(cy2-cy1))))
	if steps == 0 {
		s.put(int(cx1), int(cy1), lineDot, c, line)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.put(int(cx1+(cx2-cx1)*t), int(cy1+(cy2-cy1)*t), lineDot, c, line)
	}
}

// put writes a glyph unless a higher priority one is already there. Equal
// priorities keep the brighter color.
func (s *Surface) put(col, row int, r rune, c color.Color, p priority) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}
	fg, level := blend(c)
	i := row*s.cols + col
	cur := s.cells[i]
	if cur.prio > p || (cur.prio == p && cur.level >= level) {
		return
	}
	s.cells[i] = cell{r: r, fg: fg, level: level, prio: p}
}

// blend composites c over black. color.Color is alpha-premultiplied, so
// this is its RGB channels as is.
func blend(c color.Color) (tcell.Color, uint32) {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)), r + g + b
}

// Present copies the buffer to the screen and shows it.
func (s *Surface) Present() {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			c := s.cells[row*s.cols+col]
			if c.prio == empty {
				s.screen.SetContent(col, row, ' ', nil, s.bg)
				continue
			}
			s.screen.SetContent(col, row, c.r, nil, s.bg.Foreground(c.fg))
		}
	}
	s.screen.Show()
}
