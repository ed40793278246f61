package page

import (
	"errors"
	"strings"
	"time"
)

const (
	sendDelay = 1500 * time.Millisecond

	SubmitLabel  = "Send Message"
	SendingLabel = "Sending..."

	SentText   = "Message sent successfully! I'll get back to you soon."
	FailedText = "Failed to send message. Please try again."
)

// ErrIncomplete is returned when a required field is blank.
var ErrIncomplete = errors.New("name, email and message are required")

// Message is what the contact form submits.
type Message struct {
	Name    string
	Email   string
	Message string
}

// Validate checks that every field is filled and the email looks like one.
func (m Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" || strings.TrimSpace(m.Email) == "" || strings.TrimSpace(m.Message) == "" {
		return ErrIncomplete
	}
	if !strings.Contains(m.Email, "@") {
		return errors.New("email address is invalid")
	}
	return nil
}

// Sender delivers a message. Send is called once the simulated network
// delay has elapsed.
type Sender interface {
	Send(Message) error
}

// SimulatedSender accepts everything.
type SimulatedSender struct{}

func (SimulatedSender) Send(Message) error { return nil }

// Outcome is the notification a finished submission produces.
type Outcome struct {
	Text string
	Kind Kind
}

// Form is the contact form.
type Form struct {
	sender  Sender
	Fields  Message
	sending bool
	due     time.Time
	pending Message
}

func NewForm(sender Sender) *Form {
	if sender == nil {
		sender = SimulatedSender{}
	}
	return &Form{sender: sender}
}

// SetSender replaces the delivery backend.
func (f *Form) SetSender(sender Sender) {
	f.sender = sender
}

// Sending reports whether a submission is in flight.
func (f *Form) Sending() bool {
	return f.sending
}

// ButtonLabel is the current submit button text.
func (f *Form) ButtonLabel() string {
	if f.sending {
		return SendingLabel
	}
	return SubmitLabel
}

// Submit starts sending m. It reports false while a send is in flight.
func (f *Form) Submit(now time.Time, m Message) bool {
	if f.sending {
		return false
	}
	f.Fields = m
	f.pending = m
	f.sending = true
	f.due = now.Add(sendDelay)
	return true
}

// Update finishes a send whose delay has elapsed and returns the outcome.
// On success the form is reset; on failure the fields are kept.
func (f *Form) Update(now time.Time) (Outcome, bool) {
	if !f.sending || now.Before(f.due) {
		return Outcome{}, false
	}
	f.sending = false

	if err := f.sender.Send(f.pending); err != nil {
		return Outcome{Text: FailedText, Kind: KindError}, true
	}
	f.Fields = Message{}
	f.pending = Message{}
	return Outcome{Text: SentText, Kind: KindSuccess}, true
}

// Submit sends m from the page's contact form.
func (s *State) Submit(now time.Time, m Message) bool {
	return s.Form.Submit(now, m)
}
