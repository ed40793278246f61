package contact

import (
	"log"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/portfolio-field/internal/page"
)

// Notifier posts page notifications to the desktop notification center.
type Notifier struct {
	title  string
	notify func(text string, opts ...zenity.Option) error
}

func NewNotifier(title string) *Notifier {
	return &Notifier{title: title, notify: zenity.Notify}
}

// Post sends text without blocking the caller. Failures are logged only; the
// in-window toast is the primary surface.
func (d *Notifier) Post(text string, kind page.Kind) {
	icon := zenity.InfoIcon
	if kind == page.KindError {
		icon = zenity.ErrorIcon
	}
	go func() {
		if err := d.notify(text, zenity.Title(d.title), zenity.Icon(icon)); err != nil {
			log.Printf("desktop notification: %v", err)
		}
	}()
}
