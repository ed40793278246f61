package game

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-field/internal/config"
	"github.com/iburimskiy/portfolio-field/internal/page"
)

const (
	titleScale   = 2.0
	heroScale    = 3.0
	counterScale = 2.5
	revealRise   = 20
	cursorDot    = 4
	cursorRing   = 16
	spinnerDots  = 12
)

func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	pal := g.state.Theme.Palette()

	screen.Fill(pal.Background)

	g.field.Render()
	screen.DrawImage(g.layer.img, nil)

	g.drawSections(screen, pal)
	g.drawCounters(screen, pal)
	g.drawCards(screen, pal)
	g.drawSubmit(screen, pal)
	g.drawNavbar(screen, pal, now)
	g.drawIndicators(screen, pal)
	if g.state.MenuOpen {
		g.drawMenu(screen, pal)
	}
	g.drawNotice(screen, pal, now)
	g.drawStatus(screen, pal, now)
	g.drawLoader(screen, pal, now)
	g.drawCursor(screen, pal)
}

func (g *Game) drawSections(screen *ebiten.Image, pal page.Palette) {
	c := g.state.Content()
	scroll := g.state.ScrollY
	x := float64(config.ContentMargin)

	for _, sec := range c.Sections {
		y := sec.Top - scroll
		if y > g.layout.h || y+sec.Height < 0 {
			continue
		}
		if sec.ID == "home" {
			drawText(screen, c.Owner, x, y+g.layout.h/3, heroScale, pal.Text)
			drawText(screen, c.Role, x, y+g.layout.h/3+lineHeight*heroScale+12, titleScale, pal.AccentMain)
			for i, line := range sec.Lines {
				drawText(screen, line, x, y+g.layout.h/3+100+float64(i)*(lineHeight+8), 1, pal.Muted)
			}
			continue
		}
		drawText(screen, sec.Title, x, y+config.NavbarHeight+24, titleScale, pal.Text)
		for i, line := range sec.Lines {
			drawText(screen, line, x, y+config.NavbarHeight+64+float64(i)*(lineHeight+8), 1, pal.Muted)
		}
	}

	for i, r := range c.Reveals {
		if !g.state.Revealed(i) {
			continue
		}
		y := r.Top - scroll
		if y > g.layout.h || y+r.Height < 0 {
			continue
		}
		drawText(screen, r.Text, x, y+revealRise, 1.5, pal.Text)
	}
}

func (g *Game) drawCounters(screen *ebiten.Image, pal page.Palette) {
	n := len(g.state.Counters)
	if n == 0 {
		return
	}
	colW := (g.layout.w - 2*config.ContentMargin) / float64(n)
	for i, c := range g.state.Counters {
		y := c.Spec.Top - g.state.ScrollY
		if y > g.layout.h || y+c.Spec.Height < 0 {
			continue
		}
		x := config.ContentMargin + float64(i)*colW
		drawText(screen, strconv.Itoa(c.Value())+"+", x, y, counterScale, pal.AccentMain)
		drawText(screen, c.Spec.Label, x, y+lineHeight*counterScale+8, 1, pal.Muted)
	}
}

func (g *Game) drawCards(screen *ebiten.Image, pal page.Palette) {
	cards := g.state.Content().Cards
	for i, r := range g.layout.cards {
		if r.y > g.layout.h || r.y+r.h < 0 {
			continue
		}
		s := g.state.CardScale(i)
		w, h := r.w*s, r.h*s
		x, y := r.x-(w-r.w)/2, r.y-(h-r.h)/2

		border := pal.Border
		if g.state.HoveredCard == i {
			border = pal.AccentMain
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), pal.Card, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, border, false)

		drawText(screen, cards[i].Title, x+20, y+24, 1.5*s, pal.Text)
		drawText(screen, cards[i].Tags, x+20, y+h-36, s, pal.Muted)
	}
}

func (g *Game) drawSubmit(screen *ebiten.Image, pal page.Palette) {
	r := g.layout.submit
	if r.y > g.layout.h || r.y+r.h < 0 {
		return
	}
	bg := pal.AccentMain
	if g.state.Form.Sending() {
		bg = pal.Muted
	}
	g.drawButton(screen, r, 1, g.state.Form.ButtonLabel(), bg, pal.Background)
}

// drawButton draws a filled, bordered button with centered text, scaled
// around its center.
func (g *Game) drawButton(screen *ebiten.Image, r rect, scale float64, label string, bg, fg color.Color) {
	w, h := r.w*scale, r.h*scale
	x, y := r.x+(r.w-w)/2, r.y+(r.h-h)/2
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), bg, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, fg, false)

	tw := textWidth(label, scale)
	drawText(screen, label, x+(w-tw)/2, y+(h-lineHeight*scale)/2, scale, fg)
}

func (g *Game) drawNavbar(screen *ebiten.Image, pal page.Palette, now time.Time) {
	if g.state.NavbarScrolled() {
		vector.DrawFilledRect(screen, 0, 0, float32(g.layout.w), config.NavbarHeight, withAlpha(pal.Surface, 0.95), false)
		vector.StrokeLine(screen, 0, config.NavbarHeight, float32(g.layout.w), config.NavbarHeight, 1, pal.Border, false)
	}

	owner := g.state.Content().Owner
	drawText(screen, owner, config.ContentMargin, (config.NavbarHeight-lineHeight*1.5)/2, 1.5, pal.Text)

	active := g.state.ActiveSection()
	for _, l := range g.layout.navLinks {
		label := g.sectionTitle(l.href)
		clr := pal.Muted
		if l.href == "#"+active {
			clr = pal.AccentMain
			vector.StrokeLine(screen, float32(l.rect.x+12), float32(l.rect.y+l.rect.h-4), float32(l.rect.x+l.rect.w-12), float32(l.rect.y+l.rect.h-4), 2, clr, false)
		}
		drawText(screen, label, l.rect.x+12, l.rect.y+(l.rect.h-lineHeight)/2, 1, clr)
	}

	theme := g.state.Theme
	label := themeGlyph(theme) + " " + theme.Label()
	g.drawButton(screen, g.layout.themeToggle, g.state.ToggleScale(now), label, pal.Card, pal.Text)

	if g.layout.mobile {
		r := g.layout.menuToggle
		for i := 0; i < 3; i++ {
			y := float32(r.y + 10 + float64(i)*8)
			vector.StrokeLine(screen, float32(r.x+8), y, float32(r.x+r.w-8), y, 2, pal.Text, false)
		}
	}
}

// themeGlyph is an ASCII stand-in for the toggle icon.
func themeGlyph(t page.Theme) string {
	if t.Icon() == "moon" {
		return "("
	}
	return "*"
}

func (g *Game) sectionTitle(href string) string {
	if len(href) > 1 {
		if sec, ok := g.state.Content().Section(href[1:]); ok {
			return sec.Title
		}
	}
	return href
}

func (g *Game) drawIndicators(screen *ebiten.Image, pal page.Palette) {
	if g.state.BackToTopVisible() {
		r := g.layout.backToTop
		cx, cy := float32(r.x+r.w/2), float32(r.y+r.h/2)
		vector.DrawFilledCircle(screen, cx, cy, float32(r.w/2), pal.AccentMain, true)
		vector.StrokeLine(screen, cx-8, cy+4, cx, cy-6, 2, pal.Background, true)
		vector.StrokeLine(screen, cx, cy-6, cx+8, cy+4, 2, pal.Background, true)
	}

	if g.state.ScrollIndicatorVisible() {
		cx := float32(g.layout.w / 2)
		cy := float32(g.layout.h - 60)
		vector.StrokeRect(screen, cx-12, cy-20, 24, 40, 2, pal.Muted, false)
		vector.DrawFilledCircle(screen, cx, cy-8, 3, pal.Muted, true)
	}

	footer := fmt.Sprintf("© %d %s", page.Year(time.Now()), g.state.Content().Owner)
	if y := g.state.Content().Height() - g.state.ScrollY - 40; y < g.layout.h {
		drawText(screen, footer, config.ContentMargin, y, 1, pal.Muted)
	}

	g.drawLevel(screen, pal)
}

// drawLevel is a small meter of the ambient track loudness.
func (g *Game) drawLevel(screen *ebiten.Image, pal page.Palette) {
	if g.sound == nil || !g.sound.Ready() {
		return
	}
	const bars = 8
	level := clamp01(math.Pow(g.sound.Level(), 0.3))
	x := float32(noticeMargin)
	y := float32(g.layout.h - noticeMargin)
	for i := 0; i < bars; i++ {
		on := float64(i+1)/bars <= level
		clr := withAlpha(pal.Muted, 0.3)
		if on {
			r, gr, b := hsvToRgb(240+float64(i)*12, 0.6, 0.9)
			clr = color.NRGBA{R: r, G: gr, B: b, A: 220}
		}
		h := float32(4 + i*2)
		vector.DrawFilledRect(screen, x+float32(i*6), y-h, 4, h, clr, false)
	}
	if g.sound.Muted() {
		drawText(screen, "muted", float64(x)+bars*6+6, float64(y)-lineHeight, 1, pal.Muted)
	}
}

func (g *Game) drawMenu(screen *ebiten.Image, pal page.Palette) {
	vector.DrawFilledRect(screen, 0, 0, float32(g.layout.w), float32(g.layout.h), withAlpha(pal.Surface, 0.97), false)

	r := g.layout.menuClose
	vector.StrokeLine(screen, float32(r.x+10), float32(r.y+8), float32(r.x+r.w-10), float32(r.y+r.h-8), 2, pal.Text, true)
	vector.StrokeLine(screen, float32(r.x+r.w-10), float32(r.y+8), float32(r.x+10), float32(r.y+r.h-8), 2, pal.Text, true)

	active := g.state.ActiveSection()
	for _, l := range g.layout.mobileLinks {
		clr := pal.Text
		if l.href == "#"+active {
			clr = pal.AccentMain
		}
		drawText(screen, g.sectionTitle(l.href), l.rect.x, l.rect.y+(l.rect.h-lineHeight*titleScale)/2, titleScale, clr)
		vector.StrokeLine(screen, float32(l.rect.x), float32(l.rect.y+l.rect.h), float32(l.rect.x+l.rect.w), float32(l.rect.y+l.rect.h), 1, pal.Border, false)
	}
}

func (g *Game) drawNotice(screen *ebiten.Image, pal page.Palette, now time.Time) {
	n := g.state.Notice
	if n == nil {
		return
	}
	slide := n.Slide(now)
	if slide <= 0 {
		return
	}
	r := g.layout.notice
	x := r.x + (1-slide)*(r.w+noticeMargin)

	accent := pal.Success
	if n.Kind == page.KindError {
		accent = pal.Error
	}
	vector.DrawFilledRect(screen, float32(x), float32(r.y), float32(r.w), float32(r.h), pal.Card, false)
	vector.DrawFilledRect(screen, float32(x), float32(r.y), 4, float32(r.h), accent, false)
	vector.StrokeRect(screen, float32(x), float32(r.y), float32(r.w), float32(r.h), 1, pal.Border, false)

	icon := "!"
	if n.Kind.Icon() == "check-circle" {
		icon = "v"
	}
	vector.DrawFilledCircle(screen, float32(x+24), float32(r.y+r.h/2), 10, accent, true)
	drawText(screen, icon, x+24-charWidth/2, r.y+(r.h-lineHeight)/2, 1, pal.Background)
	drawText(screen, n.Text, x+44, r.y+(r.h-lineHeight)/2, 1, pal.Text)

	c := g.layout.noticeClose
	cx := x + (c.x - r.x)
	drawText(screen, "x", cx+(c.w-charWidth)/2, c.y+(c.h-lineHeight)/2, 1, pal.Muted)
}

func (g *Game) drawStatus(screen *ebiten.Image, pal page.Palette, now time.Time) {
	if g.lastErr == nil || now.After(g.lastErrShownFor) {
		return
	}
	msg := "Error: " + g.lastErr.Error()
	drawText(screen, msg, config.ContentMargin, g.layout.h-noticeMargin-lineHeight, 1, pal.Error)
}

func (g *Game) drawLoader(screen *ebiten.Image, pal page.Palette, now time.Time) {
	l := &g.state.Loader
	if l.Gone() {
		return
	}
	a := l.Opacity(now)
	vector.DrawFilledRect(screen, 0, 0, float32(g.layout.w), float32(g.layout.h), withAlpha(pal.Background, a), false)

	cx, cy := g.layout.w/2, g.layout.h/2
	phase := float64(now.UnixMilli()%1000) / 1000
	for i := 0; i < spinnerDots; i++ {
		angle := 2*math.Pi*float64(i)/spinnerDots + phase*2*math.Pi
		x := cx + math.Cos(angle)*24
		y := cy + math.Sin(angle)*24
		r, gr, b := hsvToRgb(float64(i)*360/spinnerDots+phase*360, 0.7, 0.95)
		dot := color.NRGBA{R: r, G: gr, B: b, A: uint8(255 * a * float64(i+1) / spinnerDots)}
		vector.DrawFilledCircle(screen, float32(x), float32(y), 3, dot, true)
	}
}

func (g *Game) drawCursor(screen *ebiten.Image, pal page.Palette) {
	c := &g.state.Cursor
	if !c.Visible {
		return
	}
	s := c.Scale()
	ox, oy := c.Outline()
	vector.StrokeCircle(screen, float32(ox), float32(oy), float32(cursorRing*s), 2, withAlpha(pal.AccentMain, c.OutlineOpacity()), true)
	vector.DrawFilledCircle(screen, float32(c.DotX), float32(c.DotY), float32(cursorDot*s), pal.AccentMain, true)
}
