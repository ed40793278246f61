package game

import (
	"github.com/iburimskiy/portfolio-field/internal/config"
	"github.com/iburimskiy/portfolio-field/internal/page"
)

type rect struct {
	x, y, w, h float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type action int

const (
	actionNone action = iota
	actionTheme
	actionMenuOpen
	actionMenuClose
	actionNav
	actionMobileNav
	actionBackToTop
	actionSubmit
	actionNoticeClose
)

// hit is a clickable region of the current frame.
type hit struct {
	rect   rect
	action action
	href   string
}

const (
	cardGap       = 24
	cardHeight    = 260
	noticeWidth   = 400
	noticeHeight  = 64
	noticeMargin  = 20
	backToTopSize = 48
	submitOffset  = 220
)

// frameLayout places every element for one frame from the window size and
// the page state. Update and Draw compute it the same way.
type frameLayout struct {
	w, h   float64
	mobile bool

	navLinks    []hit
	themeToggle rect
	menuToggle  rect
	menuClose   rect
	mobileLinks []hit
	backToTop   rect
	submit      rect
	noticeClose rect
	notice      rect
	cards       []rect
}

func computeLayout(s *page.State, w, h int) frameLayout {
	l := frameLayout{w: float64(w), h: float64(h), mobile: w < config.MobileBreak}
	c := s.Content()

	right := l.w - config.ContentMargin
	l.themeToggle = rect{right - 96, 14, 96, 36}
	right = l.themeToggle.x - 16

	if l.mobile {
		l.menuToggle = rect{right - 40, 14, 40, 36}
	} else {
		for i := len(c.Sections) - 1; i >= 0; i-- {
			sec := c.Sections[i]
			tw := float64(len(sec.Title)*charWidth + 24)
			right -= tw
			l.navLinks = append([]hit{{rect: rect{right, 14, tw, 36}, action: actionNav, href: "#" + sec.ID}}, l.navLinks...)
		}
	}

	if s.MenuOpen {
		l.menuClose = rect{l.w - config.ContentMargin - 40, 14, 40, 36}
		for i, sec := range c.Sections {
			y := float64(config.NavbarHeight + 40 + i*config.MenuItemHeight)
			l.mobileLinks = append(l.mobileLinks, hit{
				rect:   rect{config.ContentMargin, y, l.w - 2*config.ContentMargin, config.MenuItemHeight - 8},
				action: actionMobileNav,
				href:   "#" + sec.ID,
			})
		}
	}

	l.backToTop = rect{l.w - noticeMargin - backToTopSize, l.h - noticeMargin - backToTopSize, backToTopSize, backToTopSize}

	if sec, ok := c.Section("contact"); ok {
		l.submit = rect{config.ContentMargin, sec.Top + submitOffset - s.ScrollY, config.ButtonWidth, config.ButtonHeight}
	}

	nw := noticeWidth
	if float64(nw) > l.w-2*noticeMargin {
		nw = int(l.w - 2*noticeMargin)
	}
	l.notice = rect{l.w - noticeMargin - float64(nw), noticeMargin, float64(nw), noticeHeight}
	l.noticeClose = rect{l.notice.x + l.notice.w - 32, l.notice.y + 20, 24, 24}

	cw := (l.w - 2*config.ContentMargin - cardGap) / 2
	for _, card := range c.Cards {
		x := config.ContentMargin + float64(card.Column)*(cw+cardGap)
		l.cards = append(l.cards, rect{x, card.Top - s.ScrollY, cw, cardHeight})
	}
	return l
}

// hits lists the clickable regions, topmost first.
func (l frameLayout) hits(s *page.State) []hit {
	var out []hit
	if s.MenuOpen {
		out = append(out, hit{rect: l.menuClose, action: actionMenuClose})
		return append(out, l.mobileLinks...)
	}
	if s.Notice != nil && s.Notice.Shown() {
		out = append(out, hit{rect: l.noticeClose, action: actionNoticeClose})
	}
	out = append(out, hit{rect: l.themeToggle, action: actionTheme})
	if l.mobile {
		out = append(out, hit{rect: l.menuToggle, action: actionMenuOpen})
	}
	out = append(out, l.navLinks...)
	if s.BackToTopVisible() {
		out = append(out, hit{rect: l.backToTop, action: actionBackToTop})
	}
	if l.submit.y+l.submit.h > config.NavbarHeight && l.submit.y < l.h {
		out = append(out, hit{rect: l.submit, action: actionSubmit})
	}
	return out
}

// hitAt returns the topmost region under (x, y).
func (l frameLayout) hitAt(s *page.State, x, y float64) (hit, bool) {
	for _, h := range l.hits(s) {
		if h.rect.contains(x, y) {
			return h, true
		}
	}
	return hit{}, false
}

// cardAt returns the index of the project card under (x, y), or -1.
func (l frameLayout) cardAt(x, y float64) int {
	if y < config.NavbarHeight {
		return -1
	}
	for i, r := range l.cards {
		if r.contains(x, y) {
			return i
		}
	}
	return -1
}
