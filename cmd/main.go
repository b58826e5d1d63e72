package main

import (
	"context"
	"os"

	"github.com/hollowbeak/playlift/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		loaded, err := shared.LoadConfig("config.toml")
		if err != nil {
			logger.Fatalf("invalid config.toml: %v", err)
		}
		config = loaded
	}

	runner := NewRunner(RunnerOpts{
		Config: config,
		Logger: logger,
	})

	app := &cli.Command{
		Name:     "playlift",
		Usage:    "Migrate playlists from Spotify to YouTube",
		Version:  "0.1.0",
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
