// Command fieldterm runs the particle background in a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/portfolio-field/internal/config"
	"github.com/iburimskiy/portfolio-field/internal/page"
	"github.com/iburimskiy/portfolio-field/internal/particles"
	"github.com/iburimskiy/portfolio-field/internal/prefs"
	"github.com/iburimskiy/portfolio-field/internal/termsurface"
)

func main() {
	fs := flag.NewFlagSet("fieldterm", flag.ContinueOnError)
	fps := fs.Int("fps", 30, "frames per second")
	seed := fs.Int64("seed", 0, "particle seed, 0 picks one from the clock")
	prefsPath := fs.String("prefs", "", "preference file the theme is read from")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if *fps <= 0 {
		fmt.Fprintf(os.Stderr, "invalid fps %d\n", *fps)
		os.Exit(2)
	}

	theme := storedTheme(*prefsPath)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}
	surface := termsurface.New(screen)
	field := particles.NewField(rand.New(rand.NewSource(s)), theme)
	loop := particles.NewLoop(field, surface)

	run(screen, loop, field, surface, time.Second/time.Duration(*fps))
}

func run(screen tcell.Screen, loop *particles.Loop, field *particles.Field, surface *termsurface.Surface, frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					loop.Stop()
				}
				if ev.Key() == tcell.KeyRune && ev.Rune() == 'r' {
					field.Initialize(surface)
				}
			case *tcell.EventResize:
				loop.RequestResize()
				screen.Sync()
			}

		case <-ticker.C:
			if !loop.Frame() {
				return
			}
			surface.Present()
		}
	}
}

// storedTheme reads the theme the desktop app last saved, so both share
// an accent color.
func storedTheme(path string) page.Theme {
	if path == "" {
		var err error
		if path, err = prefs.DefaultPath(config.AppName); err != nil {
			return page.Dark
		}
	}
	store, err := prefs.Open(path)
	if err != nil {
		log.Printf("prefs: %v", err)
	}
	v, _ := store.Get(page.ThemeKey)
	return page.ParseTheme(v)
}
