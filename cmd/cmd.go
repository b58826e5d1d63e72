// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand bootstraps local configuration and storage.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create the config file and local database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing config file",
			},
		},
		Action: r.Setup,
	}
}

// authCommand handles OAuth2 authorization for both services.
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Authorize access to the catalogs",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Run the OAuth2 flow for a service and store the token",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "service",
						Aliases:  []string{"s"},
						Usage:    "Service to authorize: spotify or youtube",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "status",
				Usage:  "Show which services have stored tokens",
				Action: r.AuthStatus,
			},
		},
	}
}

// playlistsCommand lists playlists from the source catalog.
func playlistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "playlists",
		Aliases: []string{"ls"},
		Usage:   "List source playlists",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Playlists,
	}
}

// transferCommand migrates playlists from the source to the destination.
func transferCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "transfer",
		Usage: "Transfer playlists to the destination catalog",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Re-resolve and copy the selected playlists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "all",
						Aliases: []string{"a"},
						Usage:   "Transfer every source playlist",
					},
					&cli.StringSliceFlag{
						Name:  "id",
						Usage: "Playlist ID to transfer (repeatable)",
					},
					&cli.BoolFlag{
						Name:    "interactive",
						Aliases: []string{"i"},
						Usage:   "Pick playlists from a list",
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "Destination searches per second (0 disables pacing)",
					},
					&cli.StringFlag{
						Name:  "ranker",
						Usage: "Candidate ranking strategy: first or heuristic",
					},
					&cli.StringFlag{
						Name:    "report",
						Aliases: []string{"o"},
						Usage:   "Write a per-track report (.md or .csv)",
					},
				},
				Action: r.TransferRun,
			},
		},
	}
}

// historyCommand shows past transfer runs.
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Show recorded transfer runs",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of runs to show",
				Value: 20,
			},
		},
		Action: r.History,
	}
}
