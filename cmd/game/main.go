package main

import (
	"bufio"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/shooter/internal/config"
	"github.com/tomz197/shooter/internal/logging"
	"github.com/tomz197/shooter/internal/loop"
)

func main() {
	logger := logging.New("shooter", log.WarnLevel)

	mode, err := config.ModeFromEnv()
	if err != nil {
		logger.Error("invalid configuration", "err", err)
		return
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		logger.Error("failed to enable raw mode", "err", err)
		return
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, loop.Options{Mode: mode, Logger: logger}); err != nil {
		logger.Error("game error", "err", err)
	}
}
