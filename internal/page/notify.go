package page

import "time"

// Kind is the severity of a notification.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"

	noticeShowDelay = 10 * time.Millisecond
	noticeLifetime  = 5 * time.Second
	noticeFadeOut   = 300 * time.Millisecond
)

// Icon names the glyph drawn next to the text.
func (k Kind) Icon() string {
	if k == KindSuccess {
		return "check-circle"
	}
	return "exclamation-circle"
}

// Notification is a toast in the top right corner.
type Notification struct {
	Text string
	Kind Kind

	created  time.Time
	shown    bool
	hiddenAt time.Time
	hidden   bool
	removed  bool
}

func newNotification(now time.Time, text string, kind Kind) *Notification {
	return &Notification{Text: text, Kind: kind, created: now}
}

// Update walks the notification through shown, hidden and removed.
func (n *Notification) Update(now time.Time) {
	if !n.shown && !n.hidden && !now.Before(n.created.Add(noticeShowDelay)) {
		n.shown = true
	}
	if !n.hidden && !now.Before(n.created.Add(noticeLifetime)) {
		n.hide(now)
	}
	if n.hidden && !now.Before(n.hiddenAt.Add(noticeFadeOut)) {
		n.removed = true
	}
}

// Close hides the notification; it is removed after the fade out.
func (n *Notification) Close(now time.Time) {
	if !n.hidden {
		n.hide(now)
	}
}

func (n *Notification) hide(now time.Time) {
	n.shown = false
	n.hidden = true
	n.hiddenAt = now
}

func (n *Notification) Shown() bool   { return n.shown }
func (n *Notification) Removed() bool { return n.removed }

// Slide is how far the toast is slid in, from 0 (off screen) to 1.
func (n *Notification) Slide(now time.Time) float64 {
	switch {
	case n.removed:
		return 0
	case n.hidden:
		return 1 - clamp01(float64(now.Sub(n.hiddenAt))/float64(noticeFadeOut))
	case n.shown:
		return clamp01(float64(now.Sub(n.created.Add(noticeShowDelay))) / float64(noticeFadeOut))
	}
	return 0
}

// Notify replaces the current notification with a new one.
func (s *State) Notify(now time.Time, text string, kind Kind) *Notification {
	s.Notice = newNotification(now, text, kind)
	return s.Notice
}

// CloseNotice dismisses the current notification, if any.
func (s *State) CloseNotice(now time.Time) {
	if s.Notice != nil {
		s.Notice.Close(now)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
