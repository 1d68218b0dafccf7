package main

import (
	"context"
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/kinewalk/assets"
	"github.com/automoto/kinewalk/config"
	"github.com/automoto/kinewalk/scenes"
	"github.com/automoto/kinewalk/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

const checkTimeout = 5 * time.Second

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

func NewGame() *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(assets.Files),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	level := flag.String("level", "", "embedded level to play, by name")
	debug := flag.Bool("debug", false, "show the debug overlay, overriding saved settings")
	check := flag.Bool("check", false, "parse the embedded levels and dialogs, then exit")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *level != "" {
		path, err := assets.LevelPath(*level)
		if err != nil {
			log.Fatalf("Failed to select level: %v", err)
		}
		config.Level.Map = path
	}

	if *check {
		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()
		if err := assets.Check(ctx, config.Level.Dialogs); err != nil {
			log.Fatalf("Asset check failed: %v", err)
		}
		log.Printf("[assets] check passed")
		return
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}
	systems.ApplySavedSettingsGlobal(saved, *debug)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
