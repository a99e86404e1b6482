//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"gridlife/internal/app"
	"gridlife/internal/board"
	"gridlife/internal/core"
	"gridlife/internal/session"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	configPath := flag.String("config", "", "optional JSON config file")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "gridlife"})

	if *configPath != "" {
		if err := cfg.ApplyFile(*configPath, flag.CommandLine); err != nil {
			logger.Fatal("config", "err", err)
		}
	}
	cfg.Normalize()
	logger.Info("starting", "w", cfg.Width, "h", cfg.Height, "ups", cfg.UpdatesPerSecond, "seeded", cfg.LiveCells)

	b := board.Seed(cfg.Width, cfg.Height, cfg.LiveCells, core.NewRNG(cfg.Seed))
	s := session.New(b, cfg.UpdatesPerSecond, cfg.CellSize, logger)
	s.ShowHUD(cfg.HUD)

	ebiten.SetWindowTitle("The Game of Life")
	ebiten.SetWindowSize(cfg.Width*cfg.CellSize, cfg.Height*cfg.CellSize)

	if err := ebiten.RunGame(app.New(s)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run", "err", err)
	}
}


