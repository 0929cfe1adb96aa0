package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenstack/internal/application/demo"
	"github.com/younwookim/screenstack/internal/application/game"
	"github.com/younwookim/screenstack/internal/application/input"
	"github.com/younwookim/screenstack/internal/application/screen"
	"github.com/younwookim/screenstack/internal/infrastructure/audio"
	"github.com/younwookim/screenstack/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	muteFlag := flag.Bool("mute", false, "Disable menu sounds")
	flag.Parse()

	// Load configuration using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadUI()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var sounds *audio.Player
	if cfg.Audio.Enabled && !*muteFlag {
		sounds = audio.NewPlayer()
		if err := sounds.Initialize(); err != nil {
			log.Printf("Audio unavailable, continuing silent: %v", err)
			sounds = nil
		} else {
			defer sounds.Cleanup()
		}
	}

	in := input.NewState(input.NewEbitenReader(nil))
	manager := screen.New(in, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	if err := manager.Initialize(); err != nil {
		log.Fatalf("Failed to initialize screen manager: %v", err)
	}
	defer manager.Shutdown()

	g := game.New(manager, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Display.Framerate)

	flow := demo.NewFlow(manager, cfg.Transitions, sounds, g.Quit)
	if err := flow.Start(); err != nil {
		log.Fatalf("Failed to start demo flow: %v", err)
	}

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Screen Stack Demo")
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
