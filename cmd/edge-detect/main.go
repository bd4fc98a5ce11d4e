package main

import (
	"os"
	"path/filepath"

	"dip-challenge/internal/cli"
	"dip-challenge/internal/config"
	"dip-challenge/internal/logger"

	"github.com/rs/zerolog"
)

func main() {
	log := logger.NewConsoleLogger(config.LogLevel(zerolog.WarnLevel))

	cmd := cli.NewCommand(filepath.Base(os.Args[0]), cli.WindowDisplay{}, os.Stderr, log)
	os.Exit(cmd.Run(os.Args[1:]))
}
