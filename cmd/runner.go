package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hollowbeak/playlift/internal/services"
	"github.com/hollowbeak/playlift/internal/shared"
	"github.com/hollowbeak/playlift/internal/store"
	"github.com/hollowbeak/playlift/internal/transfer"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
//
// The catalog clients and store are built lazily so commands that need
// neither (setup, help) never touch credentials or the database. Tests
// inject fakes through RunnerOpts.
type Runner struct {
	config *shared.Config
	logger *log.Logger
	output io.Writer

	source services.SourceCatalog
	dest   services.DestinationCatalog
	st     *store.Store
	pick   transfer.PickFunc
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer

	// Optional pre-built dependencies, used by tests.
	Source services.SourceCatalog
	Dest   services.DestinationCatalog
	Store  *store.Store
	Pick   transfer.PickFunc
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
		source: opts.Source,
		dest:   opts.Dest,
		st:     opts.Store,
		pick:   opts.Pick,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, playlistsCommand, transferCommand, historyCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// openStore opens (once) the SQLite store backing tokens and run history.
func (r *Runner) openStore() (*store.Store, error) {
	if r.st != nil {
		return r.st, nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, err
	}
	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	st, err := store.New(db)
	if err != nil {
		return nil, err
	}
	r.st = st
	return st, nil
}

// sourceClient builds the authenticated Spotify client from the stored token.
func (r *Runner) sourceClient(ctx context.Context) (services.SourceCatalog, error) {
	if r.source != nil {
		return r.source, nil
	}

	st, err := r.openStore()
	if err != nil {
		return nil, err
	}
	token, err := st.LoadToken(serviceSpotify)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'playlift auth login --service spotify')", err)
	}

	oauthCfg := services.SpotifyOAuthConfig(r.config.Credentials.Spotify)
	ts := newPersistingSource(oauthCfg.TokenSource(ctx, token), st, serviceSpotify, r.logger)
	r.source = services.NewSpotifyClient(oauth2Client(ctx, ts))
	return r.source, nil
}

// destClient builds the authenticated YouTube client from the stored token.
func (r *Runner) destClient(ctx context.Context) (services.DestinationCatalog, error) {
	if r.dest != nil {
		return r.dest, nil
	}

	st, err := r.openStore()
	if err != nil {
		return nil, err
	}
	token, err := st.LoadToken(serviceYouTube)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'playlift auth login --service youtube')", err)
	}

	oauthCfg := services.YouTubeOAuthConfig(r.config.Credentials.YouTube)
	ts := newPersistingSource(oauthCfg.TokenSource(ctx, token), st, serviceYouTube, r.logger)

	dest, err := services.NewYouTubeClient(ctx, ts, r.config.Transfer.SearchWindow)
	if err != nil {
		return nil, err
	}
	r.dest = dest
	return r.dest, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
