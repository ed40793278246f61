package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/portfolio-field/internal/config"
	"github.com/iburimskiy/portfolio-field/internal/game"
	"github.com/iburimskiy/portfolio-field/internal/prefs"
	"github.com/iburimskiy/portfolio-field/internal/sound"
)

func main() {
	opts, err := config.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	path := opts.PrefsPath
	if path == "" {
		if path, err = prefs.DefaultPath(config.AppName); err != nil {
			log.Printf("prefs: %v", err)
		}
	}

	var store prefs.Store = prefs.NewMemoryStore()
	if path != "" {
		fileStore, err := prefs.Open(path)
		if err != nil {
			log.Printf("prefs: %v", err)
		}
		store = fileStore
	}

	player := sound.NewPlayer(config.SampleRate, config.SpeakerLatency, config.CueVolume, opts.Mute)
	if err := player.Init(); err != nil {
		log.Printf("sound disabled: %v", err)
	} else if opts.Ambient != "" {
		if err := player.PlayAmbient(opts.Ambient); err != nil {
			log.Printf("ambient: %v", err)
		}
	}
	defer player.Close()

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("Portfolio - T: theme, M: mute, Esc: close menu, Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	g := game.New(opts, store, player)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
