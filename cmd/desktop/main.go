package main

import (
	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/desktop"
	"github.com/tomz197/shooter/internal/logging"
)

func main() {
	logger := logging.New("shooter", log.InfoLevel)

	mode, err := config.ModeFromEnv()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return
	}

	g, err := desktop.New(desktop.Options{
		Mode:   mode,
		Assets: config.GetEnv(config.EnvAssets, ""),
		Logger: logger,
	})
	if err != nil {
		logger.Error("failed to initialize", "err", err)
		return
	}
	if err := g.Run(); err != nil {
		logger.Error("game error", "err", err)
	}
}
