//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"conway/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Parse("life", os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("config: %v", err)
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("init: %v", err)
	}

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
