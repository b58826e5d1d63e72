package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

// Playlists lists the authenticated user's source playlists.
func (r *Runner) Playlists(ctx context.Context, cmd *cli.Command) error {
	source, err := r.sourceClient(ctx)
	if err != nil {
		return err
	}

	r.logger.Info("listing playlists", "service", source.Name())
	playlists, err := source.ListPlaylists(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(playlists, cmd.Bool("pretty"))
	}

	if len(playlists) == 0 {
		r.writePlain("No playlists found.\n")
		return nil
	}

	r.writePlainHeader("Playlists")
	for _, pl := range playlists {
		r.writePlain("%s  %s (%d tracks)\n", pl.ID, pl.Name, pl.TrackCount)
	}
	r.writePlain("\nTotal: %d playlists\n", len(playlists))

	return nil
}
