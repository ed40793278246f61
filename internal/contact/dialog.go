// Package contact collects the contact form through native dialogs and
// mirrors page notifications to the desktop.
package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/portfolio-field/internal/page"
)

// ErrCanceled is returned when the user dismisses a dialog.
var ErrCanceled = errors.New("contact form canceled")

// entryFunc shows one text entry dialog.
type entryFunc func(ctx context.Context, title, prompt, initial string) (string, error)

// Prompter asks the user for a contact message.
type Prompter struct {
	title string
	entry entryFunc
}

// NewPrompter returns a prompter backed by zenity entry dialogs.
func NewPrompter(title string) *Prompter {
	return &Prompter{title: title, entry: zenityEntry}
}

// Prompt asks for name, email and message in turn, pre-filling each with
// the values in prev. Any cancelled dialog aborts with ErrCanceled.
func (p *Prompter) Prompt(ctx context.Context, prev page.Message) (page.Message, error) {
	var m page.Message
	fields := []struct {
		prompt  string
		initial string
		dst     *string
	}{
		{"Your name", prev.Name, &m.Name},
		{"Your email", prev.Email, &m.Email},
		{"Your message", prev.Message, &m.Message},
	}
	for _, f := range fields {
		v, err := p.entry(ctx, p.title, f.prompt, f.initial)
		if err != nil {
			if errors.Is(err, zenity.ErrCanceled) || errors.Is(err, context.Canceled) {
				return prev, ErrCanceled
			}
			return prev, fmt.Errorf("%s: %w", f.prompt, err)
		}
		*f.dst = v
	}
	return m, nil
}

func zenityEntry(ctx context.Context, title, prompt, initial string) (string, error) {
	return zenity.Entry(prompt,
		zenity.Title(title),
		zenity.EntryText(initial),
		zenity.Context(ctx),
	)
}

// Request is a pending prompt whose answer arrives on Result.
type Request struct {
	Result <-chan Reply
	cancel context.CancelFunc
}

// Reply carries a finished prompt.
type Reply struct {
	Message page.Message
	Err     error
}

// Cancel closes the dialog if it is still open.
func (r *Request) Cancel() {
	r.cancel()
}

// Start runs Prompt on its own goroutine so the UI keeps rendering while
// the dialogs are open.
func (p *Prompter) Start(ctx context.Context, prev page.Message) *Request {
	ctx, cancel := context.WithCancel(ctx)
	out := make(chan Reply, 1)
	go func() {
		defer cancel()
		m, err := p.Prompt(ctx, prev)
		out <- Reply{Message: m, Err: err}
	}()
	return &Request{Result: out, cancel: cancel}
}
