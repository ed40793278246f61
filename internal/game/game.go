// Package game hosts the portfolio page in an ebiten window.
package game

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/portfolio-field/internal/config"
	"github.com/iburimskiy/portfolio-field/internal/contact"
	"github.com/iburimskiy/portfolio-field/internal/page"
	"github.com/iburimskiy/portfolio-field/internal/particles"
	"github.com/iburimskiy/portfolio-field/internal/prefs"
	"github.com/iburimskiy/portfolio-field/internal/sound"
)

const resizeThrottle = 100 * time.Millisecond

// Game implements ebiten.Game for the portfolio page.
type Game struct {
	ctx    context.Context
	cancel context.CancelFunc

	state    *page.State
	field    *particles.Field
	layer    *layer
	sound    *sound.Player
	prompter *contact.Prompter
	notifier *contact.Notifier

	request    *contact.Request
	lastNotice *page.Notification

	width, height   int
	pendingW        int
	pendingH        int
	resizeGate      *page.Gate
	layout          frameLayout
	mouseX, mouseY  int
	prevKey         map[ebiten.Key]bool
	lastErr         error
	lastErrShownFor time.Time
}

// New wires the page state, particle field, sound and dialogs together.
func New(opts config.Options, store prefs.Store, player *sound.Player) *Game {
	now := time.Now()
	ctx, cancel := context.WithCancel(context.Background())

	g := &Game{
		ctx:        ctx,
		cancel:     cancel,
		sound:      player,
		prompter:   contact.NewPrompter("Contact " + page.DefaultContent().Owner),
		notifier:   contact.NewNotifier(config.AppName),
		width:      opts.Width,
		height:     opts.Height,
		pendingW:   opts.Width,
		pendingH:   opts.Height,
		resizeGate: page.NewGate(resizeThrottle),
		layer:      &layer{},
		prevKey:    map[ebiten.Key]bool{},
	}
	g.state = page.New(store, page.DefaultContent(), float64(opts.Width), float64(opts.Height), now)

	rng := rand.New(rand.NewSource(opts.SeedOr(now.UnixNano())))
	g.field = particles.NewField(rng, g.state)
	g.layer.ensure(opts.Width, opts.Height)
	g.field.Initialize(g.layer)
	g.layout = computeLayout(g.state, g.width, g.height)
	return g
}

// State exposes the page state, for tests and tooling.
func (g *Game) State() *page.State {
	return g.state
}

func (g *Game) Update() error {
	now := time.Now()

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if g.resizeGate.Fire(now) {
		g.applyResize(now)
	}

	g.layout = computeLayout(g.state, g.width, g.height)

	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	if mx != g.mouseX || my != g.mouseY || !g.state.Cursor.Visible {
		g.mouseX, g.mouseY = mx, my
		g.state.Cursor.Move(now, x, y)
	}

	_, hovering := g.layout.hitAt(g.state, x, y)
	card := -1
	if !g.state.MenuOpen {
		card = g.layout.cardAt(x, y)
	}
	g.state.HoverCard(card)
	g.state.Cursor.Hovering = hovering || card >= 0

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if h, ok := g.layout.hitAt(g.state, x, y); ok {
			g.dispatch(now, h)
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.state.ScrollBy(-dy*config.WheelStep, now)
	}

	if justPressed(ebiten.KeyEscape) {
		g.state.HandleEscape()
	}
	down, pageDown := justPressed(ebiten.KeyArrowDown), justPressed(ebiten.KeyPageDown)
	if down || pageDown {
		g.state.ScrollBy(float64(g.height)/2, now)
	}
	up, pageUp := justPressed(ebiten.KeyArrowUp), justPressed(ebiten.KeyPageUp)
	if up || pageUp {
		g.state.ScrollBy(-float64(g.height)/2, now)
	}
	if justPressed(ebiten.KeyHome) {
		g.state.BackToTop()
	}
	if justPressed(ebiten.KeyT) {
		g.toggleTheme(now)
	}
	if justPressed(ebiten.KeyM) {
		g.sound.SetMuted(!g.sound.Muted())
	}
	if justPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}

	g.pollContact(now)
	g.state.Update(now)
	g.announce()

	g.field.Step()
	return nil
}

func (g *Game) dispatch(now time.Time, h hit) {
	switch h.action {
	case actionTheme:
		g.toggleTheme(now)
		return
	case actionMenuOpen:
		g.state.OpenMenu()
	case actionMenuClose:
		g.state.CloseMenu()
	case actionNav:
		g.state.FollowAnchor(h.href)
	case actionMobileNav:
		g.state.FollowMobileLink(h.href)
	case actionBackToTop:
		g.state.BackToTop()
	case actionSubmit:
		g.startContact()
	case actionNoticeClose:
		g.state.CloseNotice(now)
	default:
		return
	}
	g.sound.Play(sound.CueClick)
}

func (g *Game) toggleTheme(now time.Time) {
	if err := g.state.ToggleTheme(now); err != nil {
		log.Printf("theme: %v", err)
		g.setErr(now, err)
	}
	g.sound.Play(sound.CueClick)
}

// startContact opens the entry dialogs unless a prompt or send is in flight.
func (g *Game) startContact() {
	if g.request != nil || g.state.Form.Sending() {
		return
	}
	g.request = g.prompter.Start(g.ctx, g.state.Form.Fields)
}

// pollContact consumes a finished prompt without blocking the frame.
func (g *Game) pollContact(now time.Time) {
	if g.request == nil {
		return
	}
	select {
	case r := <-g.request.Result:
		g.request = nil
		switch {
		case errors.Is(r.Err, contact.ErrCanceled):
		case r.Err != nil:
			log.Printf("contact form: %v", r.Err)
			g.state.Notify(now, page.FailedText, page.KindError)
		default:
			if err := r.Message.Validate(); err != nil {
				g.state.Form.Fields = r.Message
				g.state.Notify(now, "Please check the form: "+err.Error()+".", page.KindError)
				return
			}
			g.state.Submit(now, r.Message)
		}
	default:
	}
}

// announce plays a cue and posts a desktop notification for every new toast.
func (g *Game) announce() {
	n := g.state.Notice
	if n == nil || n == g.lastNotice {
		if n == nil {
			g.lastNotice = nil
		}
		return
	}
	g.lastNotice = n
	if n.Kind == page.KindError {
		g.sound.Play(sound.CueFailure)
	} else {
		g.sound.Play(sound.CueSuccess)
	}
	g.notifier.Post(n.Text, n.Kind)
}

func (g *Game) applyResize(now time.Time) {
	if g.pendingW == g.width && g.pendingH == g.height {
		return
	}
	g.width, g.height = g.pendingW, g.pendingH
	g.layer.ensure(g.width, g.height)
	g.field.Resize(g.layer)
	g.state.Resize(float64(g.width), float64(g.height), now)
}

func (g *Game) setErr(now time.Time, err error) {
	g.lastErr = err
	g.lastErrShownFor = now.Add(3 * time.Second)
}

// Layout follows the window size; changes reach the page through the
// resize gate.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.pendingW || outsideHeight != g.pendingH {
		g.pendingW, g.pendingH = outsideWidth, outsideHeight
		g.resizeGate.Trigger(time.Now())
	}
	return outsideWidth, outsideHeight
}

// Close releases background resources.
func (g *Game) Close() {
	g.cancel()
	if g.request != nil {
		g.request.Cancel()
	}
}
