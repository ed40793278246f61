// Package page holds the UI state of the portfolio page and the rules that
// move it: theme, menu, navigation, scroll effects, counters, the contact
// form and notifications. It draws nothing.
package page

import (
	"time"

	"github.com/iburimskiy/portfolio-field/internal/prefs"
)

const (
	// activeOffset is added to the scroll position when picking the active section.
	activeOffset = 100

	navbarScrolledAt   = 50
	indicatorHiddenAt  = 100
	backToTopVisibleAt = 500
	anchorOffset       = 80

	revealThrottle = 100 * time.Millisecond
	revealMargin   = 100

	// smoothFactor is the fraction of the remaining distance covered per frame.
	smoothFactor = 0.18
	smoothSnap   = 0.5
)

// State is the single owner of everything the page shows. It is mutated
// only from the UI goroutine.
type State struct {
	store   prefs.Store
	content Content

	Theme           Theme
	themePressUntil time.Time

	MenuOpen bool

	ScrollY         float64
	ViewportW       float64
	ViewportH       float64
	smoothing       bool
	scrollTarget    float64
	activeSection   string
	revealGate      *Gate
	revealed        []bool
	HoveredCard     int
	now             time.Time

	Counters []*Counter
	Form     *Form
	Notice   *Notification
	Loader   Loader
	Cursor   Cursor
}

// New builds the page state, reading the stored theme (dark when absent).
func New(store prefs.Store, content Content, viewportW, viewportH float64, now time.Time) *State {
	if store == nil {
		store = prefs.NewMemoryStore()
	}
	s := &State{
		store:       store,
		content:     content,
		ViewportW:   viewportW,
		ViewportH:   viewportH,
		revealGate:  NewGate(revealThrottle),
		revealed:    make([]bool, len(content.Reveals)),
		HoveredCard: -1,
		Form:        NewForm(SimulatedSender{}),
		Loader:      NewLoader(now),
		Cursor:      NewCursor(),
		now:         now,
	}

	stored, _ := store.Get(ThemeKey)
	s.Theme = ParseTheme(stored)

	for _, c := range content.Counters {
		s.Counters = append(s.Counters, NewCounter(c))
	}

	s.updateActive()
	s.revealVisible()
	return s
}

// Content returns the page being displayed.
func (s *State) Content() Content {
	return s.content
}

// Update advances every timer and per-frame animation. The host calls it
// once per frame.
func (s *State) Update(now time.Time) {
	s.now = now
	s.Loader.Update(now)
	s.Cursor.Update(now)

	if s.smoothing {
		s.stepSmoothScroll()
	}
	if s.revealGate.Fire(now) {
		s.revealVisible()
	}

	s.observeCounters()
	for _, c := range s.Counters {
		c.Step()
	}

	if msg, ok := s.Form.Update(now); ok {
		s.Notify(now, msg.Text, msg.Kind)
	}
	if s.Notice != nil {
		s.Notice.Update(now)
		if s.Notice.Removed() {
			s.Notice = nil
		}
	}
}

// Resize records a new viewport size.
func (s *State) Resize(w, h float64, now time.Time) {
	s.ViewportW, s.ViewportH = w, h
	s.setScroll(s.ScrollY, now)
}

// ScrollBy moves the page by dy, as a wheel or key would. It is ignored
// while the mobile menu locks scrolling and cancels any smooth scroll.
func (s *State) ScrollBy(dy float64, now time.Time) {
	if s.ScrollLocked() {
		return
	}
	s.smoothing = false
	s.setScroll(s.ScrollY+dy, now)
}

// MaxScroll is the largest reachable scroll position.
func (s *State) MaxScroll() float64 {
	m := s.content.Height() - s.ViewportH
	if m < 0 {
		return 0
	}
	return m
}

func (s *State) setScroll(y float64, now time.Time) {
	if y < 0 {
		y = 0
	}
	if m := s.MaxScroll(); y > m {
		y = m
	}
	s.ScrollY = y
	s.updateActive()
	s.revealGate.Trigger(now)
}

// ScrollTo starts a smooth scroll toward y.
func (s *State) ScrollTo(y float64) {
	if y < 0 {
		y = 0
	}
	if m := s.MaxScroll(); y > m {
		y = m
	}
	s.scrollTarget = y
	s.smoothing = true
}

// Smoothing reports whether a smooth scroll is in progress.
func (s *State) Smoothing() bool {
	return s.smoothing
}

func (s *State) stepSmoothScroll() {
	d := s.scrollTarget - s.ScrollY
	if d < smoothSnap && d > -smoothSnap {
		s.ScrollY = s.scrollTarget
		s.smoothing = false
	} else {
		s.ScrollY += d * smoothFactor
	}
	s.updateActive()
	s.revealGate.Trigger(s.now)
}

// FollowAnchor handles a click on an in-page link. "#" is ignored, as is
// an id with no section.
func (s *State) FollowAnchor(href string) {
	if href == "#" || len(href) < 2 || href[0] != '#' {
		return
	}
	sec, ok := s.content.Section(href[1:])
	if !ok {
		return
	}
	s.ScrollTo(sec.Top - anchorOffset)
}

// BackToTop smooth-scrolls to the top of the page.
func (s *State) BackToTop() {
	s.ScrollTo(0)
}

// ActiveSection is the id of the section highlighted in the navigation.
func (s *State) ActiveSection() string {
	return s.activeSection
}

// updateActive highlights the section containing scroll+100. When none
// does the previous highlight is kept.
func (s *State) updateActive() {
	pos := s.ScrollY + activeOffset
	for _, sec := range s.content.Sections {
		if pos >= sec.Top && pos < sec.Top+sec.Height {
			s.activeSection = sec.ID
		}
	}
}

func (s *State) NavbarScrolled() bool { return s.ScrollY > navbarScrolledAt }

func (s *State) BackToTopVisible() bool { return s.ScrollY > backToTopVisibleAt }

func (s *State) ScrollIndicatorVisible() bool { return s.ScrollY <= indicatorHiddenAt }

// OpenMenu shows the mobile menu and locks page scroll.
func (s *State) OpenMenu() {
	s.MenuOpen = true
}

// CloseMenu hides the mobile menu and releases the scroll lock.
func (s *State) CloseMenu() {
	s.MenuOpen = false
}

// FollowMobileLink closes the menu and navigates to the link target.
func (s *State) FollowMobileLink(href string) {
	s.CloseMenu()
	s.FollowAnchor(href)
}

// HandleEscape closes the menu if it is open and reports whether it did.
func (s *State) HandleEscape() bool {
	if !s.MenuOpen {
		return false
	}
	s.CloseMenu()
	return true
}

// ScrollLocked reports whether page scrolling is suspended.
func (s *State) ScrollLocked() bool {
	return s.MenuOpen
}

// HoverCard marks card i as hovered; -1 clears it.
func (s *State) HoverCard(i int) {
	if i < -1 || i >= len(s.content.Cards) {
		i = -1
	}
	s.HoveredCard = i
}

// CardScale is the image scale of card i.
func (s *State) CardScale(i int) float64 {
	if i >= 0 && i == s.HoveredCard {
		return 1.05
	}
	return 1
}

// Year is the copyright year shown in the footer.
func Year(now time.Time) int {
	return now.Year()
}
