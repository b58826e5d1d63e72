package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hollowbeak/playlift/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup writes the example config file and bootstraps the database.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if _, err := os.Stat(path); err == nil {
		if !cmd.Bool("force") {
			return fmt.Errorf("%w: %s already exists (use --force to overwrite)", shared.ErrInvalidArgument, path)
		}
		if err := os.Remove(path); err != nil {
			return err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.writePlain("✓ wrote %s\n", path)

	if _, err := r.openStore(); err != nil {
		return err
	}
	r.writePlain("✓ database ready at %s\n", r.config.Database.Path)

	r.writePlain("\nFill in the [credentials] section, then run 'playlift auth login'.\n")
	return nil
}
