package page

import (
	"errors"
	"testing"
	"time"

	"github.com/iburimskiy/portfolio-field/internal/prefs"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestState(store prefs.Store) *State {
	return New(store, DefaultContent(), 1024, 720, t0)
}

type failingStore struct{}

func (failingStore) Get(string) (string, bool) { return "", false }
func (failingStore) Set(string, string) error { return errors.New("disk full") }

// TestThemeDefaultsToDark verifies the absent-key default and a single toggle
func TestThemeDefaultsToDark(t *testing.T) {
	store := prefs.NewMemoryStore()
	s := newTestState(store)

	if s.Theme != Dark {
		t.Fatalf("Expected dark theme by default, got %q", s.Theme)
	}
	if err := s.ToggleTheme(t0); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if v, _ := store.Get(ThemeKey); v != "light" {
		t.Errorf("Expected stored theme light, got %q", v)
	}
	if s.Theme.Icon() != "sun" || s.Theme.Label() != "Dark" {
		t.Errorf("Expected sun/Dark UI for light theme, got %s/%s", s.Theme.Icon(), s.Theme.Label())
	}

	s.ToggleTheme(t0)
	if v, _ := store.Get(ThemeKey); v != "dark" || s.Theme != Dark {
		t.Errorf("Expected dark after second toggle, got stored %q state %q", v, s.Theme)
	}
}

func TestThemeFromStore(t *testing.T) {
	tests := []struct {
		stored string
		want   Theme
	}{
		{"light", Light},
		{"dark", Dark},
		{"purple", Dark},
		{"", Dark},
	}
	for _, tt := range tests {
		store := prefs.NewMemoryStore()
		store.Set(ThemeKey, tt.stored)
		if got := newTestState(store).Theme; got != tt.want {
			t.Errorf("Stored %q: expected %q, got %q", tt.stored, tt.want, got)
		}
	}
}

// TestThemeToggleStoreFailure verifies the theme still flips when saving fails
func TestThemeToggleStoreFailure(t *testing.T) {
	s := newTestState(failingStore{})
	if err := s.ToggleTheme(t0); err == nil {
		t.Error("Expected store error to be returned")
	}
	if s.Theme != Light {
		t.Errorf("Expected light theme despite store failure, got %q", s.Theme)
	}
}

func TestTogglePressAnimation(t *testing.T) {
	s := newTestState(nil)
	s.ToggleTheme(t0)
	if got := s.ToggleScale(t0.Add(100 * time.Millisecond)); got != 0.95 {
		t.Errorf("Expected pressed scale 0.95, got %f", got)
	}
	if got := s.ToggleScale(t0.Add(150 * time.Millisecond)); got != 1 {
		t.Errorf("Expected scale 1 after press, got %f", got)
	}
}

func TestAccentFollowsTheme(t *testing.T) {
	s := newTestState(nil)
	if s.Accent() != Dark.Palette().AccentMain {
		t.Error("Expected dark accent")
	}
	s.ToggleTheme(t0)
	if s.Accent() != Light.Palette().AccentMain {
		t.Error("Expected light accent")
	}
}

// TestMenu verifies open, close, escape and scroll lock
func TestMenu(t *testing.T) {
	s := newTestState(nil)

	if s.HandleEscape() {
		t.Error("Expected escape to do nothing while menu is closed")
	}
	s.OpenMenu()
	if !s.ScrollLocked() {
		t.Error("Expected scroll lock while menu is open")
	}
	s.ScrollBy(300, t0)
	if s.ScrollY != 0 {
		t.Errorf("Expected scroll ignored while locked, got %f", s.ScrollY)
	}
	if !s.HandleEscape() || s.MenuOpen {
		t.Error("Expected escape to close the menu")
	}

	s.OpenMenu()
	s.FollowMobileLink("#projects")
	if s.MenuOpen {
		t.Error("Expected mobile link to close the menu")
	}
	if !s.Smoothing() {
		t.Error("Expected mobile link to start scrolling")
	}
}

func TestActiveSection(t *testing.T) {
	s := newTestState(nil)
	tests := []struct {
		scroll float64
		want   string
	}{
		{0, "home"},
		{619, "home"},
		{620, "about"},
		{1300, "skills"},
		{1820, "projects"},
		{2580, "contact"},
	}
	for _, tt := range tests {
		s.ScrollY = 0
		s.ScrollBy(tt.scroll, t0)
		if got := s.ActiveSection(); got != tt.want {
			t.Errorf("Scroll %f: expected %q, got %q", tt.scroll, tt.want, got)
		}
	}
}

func TestScrollThresholds(t *testing.T) {
	s := newTestState(nil)
	if s.NavbarScrolled() || s.BackToTopVisible() || !s.ScrollIndicatorVisible() {
		t.Error("Expected top-of-page flags at scroll 0")
	}
	s.ScrollBy(51, t0)
	if !s.NavbarScrolled() {
		t.Error("Expected navbar scrolled past 50")
	}
	s.ScrollBy(50, t0)
	if s.ScrollIndicatorVisible() {
		t.Error("Expected indicator hidden past 100")
	}
	if s.BackToTopVisible() {
		t.Error("Expected back-to-top hidden at 101")
	}
	s.ScrollBy(400, t0)
	if !s.BackToTopVisible() {
		t.Error("Expected back-to-top visible past 500")
	}
}

func TestScrollClamped(t *testing.T) {
	s := newTestState(nil)
	s.ScrollBy(-50, t0)
	if s.ScrollY != 0 {
		t.Errorf("Expected clamp at 0, got %f", s.ScrollY)
	}
	s.ScrollBy(1e6, t0)
	if s.ScrollY != s.MaxScroll() {
		t.Errorf("Expected clamp at %f, got %f", s.MaxScroll(), s.ScrollY)
	}
}

// TestAnchorSmoothScroll verifies anchors land 80px above their section
func TestAnchorSmoothScroll(t *testing.T) {
	s := newTestState(nil)

	s.FollowAnchor("#")
	s.FollowAnchor("#missing")
	if s.Smoothing() {
		t.Fatal("Expected '#' and unknown ids to be ignored")
	}

	s.FollowAnchor("#skills")
	now := t0
	for i := 0; i < 200 && s.Smoothing(); i++ {
		now = now.Add(16 * time.Millisecond)
		s.Update(now)
	}
	if s.Smoothing() {
		t.Fatal("Expected smooth scroll to settle")
	}
	if s.ScrollY != 1360-80 {
		t.Errorf("Expected scroll 1280, got %f", s.ScrollY)
	}
	if s.ActiveSection() != "skills" {
		t.Errorf("Expected skills active, got %q", s.ActiveSection())
	}

	s.BackToTop()
	s.ScrollBy(10, now)
	if s.Smoothing() {
		t.Error("Expected manual scroll to cancel smooth scroll")
	}
}

// TestRevealThrottled verifies reveal runs at init and then behind the gate
func TestRevealThrottled(t *testing.T) {
	s := newTestState(nil)
	// First reveal sits at 820; threshold at scroll 0 is 720-100=620.
	if s.Revealed(0) {
		t.Fatal("Expected first reveal hidden at top")
	}

	s.ScrollBy(300, t0)
	if s.Revealed(0) {
		t.Error("Expected reveal to wait for the throttle gate")
	}
	s.Update(t0.Add(50 * time.Millisecond))
	if s.Revealed(0) {
		t.Error("Expected reveal to wait the full 100ms")
	}
	s.Update(t0.Add(100 * time.Millisecond))
	if !s.Revealed(0) {
		t.Error("Expected reveal after the gate fires")
	}

	s.ScrollBy(-300, t0.Add(200*time.Millisecond))
	s.Update(t0.Add(400 * time.Millisecond))
	if !s.Revealed(0) {
		t.Error("Expected revealed elements to stay revealed")
	}
}

func TestGate(t *testing.T) {
	g := NewGate(100 * time.Millisecond)
	if !g.Trigger(t0) {
		t.Fatal("Expected first trigger to arm")
	}
	if g.Trigger(t0.Add(10 * time.Millisecond)) {
		t.Error("Expected trigger while pending to be ignored")
	}
	if g.Fire(t0.Add(99 * time.Millisecond)) {
		t.Error("Expected no fire before the window")
	}
	if !g.Fire(t0.Add(100 * time.Millisecond)) {
		t.Error("Expected fire at the deadline")
	}
	if g.Fire(t0.Add(200 * time.Millisecond)) {
		t.Error("Expected a single fire per arming")
	}
	if g.Pending() {
		t.Error("Expected gate disarmed after firing")
	}
}

// TestCounters verifies counters start in view and land on their target
func TestCounters(t *testing.T) {
	s := newTestState(nil)
	now := t0
	s.Update(now)
	for _, c := range s.Counters {
		if c.Started() {
			t.Fatalf("Expected %s counter idle off screen", c.Spec.Label)
		}
	}

	s.ScrollBy(500, now)
	for i := 0; i < 130; i++ {
		now = now.Add(16 * time.Millisecond)
		s.Update(now)
		for _, c := range s.Counters {
			if v := c.Value(); v > c.Spec.Target {
				t.Fatalf("Counter %s overshot: %d", c.Spec.Label, v)
			}
		}
	}
	for _, c := range s.Counters {
		if !c.Done() || c.Value() != c.Spec.Target {
			t.Errorf("Expected %s to reach %d, got %d", c.Spec.Label, c.Spec.Target, c.Value())
		}
	}
}

func TestCounterValueFloors(t *testing.T) {
	c := NewCounter(CounterSpec{Target: 48})
	c.Start()
	c.Step()
	// 48 / 125 = 0.384 per frame.
	if c.Value() != 0 {
		t.Errorf("Expected 0 after one step, got %d", c.Value())
	}
	for i := 0; i < 3; i++ {
		c.Step()
	}
	if c.Value() != 1 {
		t.Errorf("Expected 1 after four steps, got %d", c.Value())
	}
}

func TestVisibleFraction(t *testing.T) {
	tests := []struct {
		top, height, vh, want float64
	}{
		{0, 100, 720, 1},
		{680, 80, 720, 0.5},
		{-40, 80, 720, 0.5},
		{800, 80, 720, 0},
		{0, 0, 720, 0},
	}
	for _, tt := range tests {
		if got := visibleFraction(tt.top, tt.height, tt.vh); got != tt.want {
			t.Errorf("visibleFraction(%f, %f, %f): expected %f, got %f", tt.top, tt.height, tt.vh, tt.want, got)
		}
	}
}

type failingSender struct{}

func (failingSender) Send(Message) error { return errors.New("offline") }

// TestFormSubmission verifies the simulated send and its notification
func TestFormSubmission(t *testing.T) {
	s := newTestState(nil)
	msg := Message{Name: "Ada", Email: "ada@example.com", Message: "Hello"}

	if !s.Submit(t0, msg) {
		t.Fatal("Expected submit to start")
	}
	if s.Form.ButtonLabel() != SendingLabel {
		t.Errorf("Expected %q, got %q", SendingLabel, s.Form.ButtonLabel())
	}
	if s.Submit(t0.Add(time.Millisecond), msg) {
		t.Error("Expected second submit to be refused while sending")
	}

	s.Update(t0.Add(1499 * time.Millisecond))
	if !s.Form.Sending() {
		t.Error("Expected form still sending before 1.5s")
	}
	s.Update(t0.Add(1500 * time.Millisecond))
	if s.Form.Sending() {
		t.Error("Expected send finished at 1.5s")
	}
	if s.Notice == nil || s.Notice.Kind != KindSuccess || s.Notice.Text != SentText {
		t.Fatalf("Expected success notification, got %+v", s.Notice)
	}
	if s.Form.Fields != (Message{}) {
		t.Error("Expected form reset after success")
	}
	if s.Form.ButtonLabel() != SubmitLabel {
		t.Errorf("Expected button restored, got %q", s.Form.ButtonLabel())
	}
}

func TestFormFailure(t *testing.T) {
	s := newTestState(nil)
	s.Form.SetSender(failingSender{})
	msg := Message{Name: "Ada", Email: "ada@example.com", Message: "Hello"}

	s.Submit(t0, msg)
	s.Update(t0.Add(2 * time.Second))

	if s.Notice == nil || s.Notice.Kind != KindError || s.Notice.Text != FailedText {
		t.Fatalf("Expected error notification, got %+v", s.Notice)
	}
	if s.Form.Fields != msg {
		t.Error("Expected fields kept after failure")
	}
	if s.Form.Sending() {
		t.Error("Expected button restored after failure")
	}
}

func TestMessageValidate(t *testing.T) {
	tests := []struct {
		name string
		m    Message
		ok   bool
	}{
		{"complete", Message{"Ada", "ada@example.com", "Hi"}, true},
		{"blank name", Message{" ", "ada@example.com", "Hi"}, false},
		{"bad email", Message{"Ada", "ada", "Hi"}, false},
		{"no message", Message{"Ada", "ada@example.com", ""}, false},
	}
	for _, tt := range tests {
		if err := tt.m.Validate(); (err == nil) != tt.ok {
			t.Errorf("%s: expected ok=%v, got %v", tt.name, tt.ok, err)
		}
	}
}

// TestNotificationLifecycle verifies show, auto hide, removal and replacement
func TestNotificationLifecycle(t *testing.T) {
	s := newTestState(nil)
	n := s.Notify(t0, "hello", KindInfo)

	s.Update(t0.Add(5 * time.Millisecond))
	if n.Shown() {
		t.Error("Expected notification hidden for the first 10ms")
	}
	s.Update(t0.Add(10 * time.Millisecond))
	if !n.Shown() {
		t.Error("Expected notification shown after 10ms")
	}
	s.Update(t0.Add(5 * time.Second))
	if n.Shown() || s.Notice == nil {
		t.Error("Expected notification hiding but present at 5s")
	}
	s.Update(t0.Add(5300 * time.Millisecond))
	if s.Notice != nil {
		t.Error("Expected notification removed at 5.3s")
	}

	first := s.Notify(t0, "one", KindInfo)
	second := s.Notify(t0, "two", KindError)
	if s.Notice != second || s.Notice == first {
		t.Error("Expected new notification to replace the old one")
	}
	if second.Kind.Icon() != "exclamation-circle" || KindSuccess.Icon() != "check-circle" {
		t.Error("Unexpected notification icons")
	}

	s.CloseNotice(t0.Add(time.Second))
	s.Update(t0.Add(1300 * time.Millisecond))
	if s.Notice != nil {
		t.Error("Expected closed notification removed after 300ms")
	}
}

func TestLoader(t *testing.T) {
	l := NewLoader(t0)
	l.Update(t0.Add(1499 * time.Millisecond))
	if l.Hidden() {
		t.Error("Expected loader visible before 1.5s")
	}
	l.Update(t0.Add(1500 * time.Millisecond))
	if !l.Hidden() || l.Gone() {
		t.Error("Expected loader hidden but present at 1.5s")
	}
	if o := l.Opacity(t0.Add(1750 * time.Millisecond)); o != 0.5 {
		t.Errorf("Expected half faded loader, got %f", o)
	}
	l.Update(t0.Add(2000 * time.Millisecond))
	if !l.Gone() {
		t.Error("Expected loader removed at 2s")
	}
}

func TestCursorTrail(t *testing.T) {
	var c Cursor
	c.Move(t0, 100, 100)
	if x, y := c.Outline(); x != 100 || y != 100 {
		t.Fatalf("Expected outline to start at the first position, got (%f, %f)", x, y)
	}

	c.Move(t0, 200, 100)
	c.Update(t0.Add(250 * time.Millisecond))
	if x, _ := c.Outline(); x != 150 {
		t.Errorf("Expected outline halfway at 150, got %f", x)
	}
	c.Update(t0.Add(500 * time.Millisecond))
	if x, _ := c.Outline(); x != 200 {
		t.Errorf("Expected outline to arrive at 200, got %f", x)
	}
	if c.DotX != 200 {
		t.Errorf("Expected dot at 200, got %f", c.DotX)
	}

	c.Hovering = true
	if c.Scale() != 1.5 || c.OutlineOpacity() != 0.5 {
		t.Error("Expected hover scale 1.5 and opacity 0.5")
	}
	c.Hovering = false
	if c.Scale() != 1 || c.OutlineOpacity() != 0.3 {
		t.Error("Expected idle scale 1 and opacity 0.3")
	}
}

func TestCardHover(t *testing.T) {
	s := newTestState(nil)
	s.HoverCard(2)
	if s.CardScale(2) != 1.05 || s.CardScale(1) != 1 {
		t.Error("Expected only the hovered card scaled")
	}
	s.HoverCard(99)
	if s.HoveredCard != -1 {
		t.Error("Expected out of range hover to clear")
	}
}

func TestYear(t *testing.T) {
	if Year(t0) != 2026 {
		t.Errorf("Expected 2026, got %d", Year(t0))
	}
}
