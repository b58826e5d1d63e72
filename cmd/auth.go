package main

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hollowbeak/playlift/internal/server"
	"github.com/hollowbeak/playlift/internal/services"
	"github.com/hollowbeak/playlift/internal/shared"
	"github.com/hollowbeak/playlift/internal/store"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
)

const (
	serviceSpotify = "spotify"
	serviceYouTube = "youtube"
)

// oauth2Client wraps a token source in an *http.Client.
func oauth2Client(ctx context.Context, ts oauth2.TokenSource) *http.Client {
	return oauth2.NewClient(ctx, ts)
}

// persistingSource wraps an [oauth2.TokenSource] and writes the token back
// to the store whenever the underlying source refreshes it, so a refresh
// performed out-of-band before a transfer run survives the process.
type persistingSource struct {
	source  oauth2.TokenSource
	st      *store.Store
	service string
	logger  *log.Logger

	mu   sync.Mutex
	last string
}

func newPersistingSource(source oauth2.TokenSource, st *store.Store, service string, logger *log.Logger) *persistingSource {
	return &persistingSource{source: source, st: st, service: service, logger: logger}
}

func (p *persistingSource) Token() (*oauth2.Token, error) {
	token, err := p.source.Token()
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	changed := token.AccessToken != p.last
	p.last = token.AccessToken
	p.mu.Unlock()

	if changed {
		if err := p.st.SaveToken(p.service, token); err != nil {
			p.logger.Warn("failed to persist refreshed token", "service", p.service, "err", err)
		}
	}

	return token, nil
}

// AuthLogin runs the OAuth2 authorization-code flow for one service and
// stores the resulting token.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	service := cmd.String("service")

	var oauthCfg *oauth2.Config
	switch service {
	case serviceSpotify:
		creds := r.config.Credentials.Spotify
		if creds.ClientID == "" || creds.ClientSecret == "" {
			return fmt.Errorf("%w: spotify client_id/client_secret not configured", shared.ErrMissingCredentials)
		}
		oauthCfg = services.SpotifyOAuthConfig(creds)
	case serviceYouTube:
		creds := r.config.Credentials.YouTube
		if creds.ClientID == "" || creds.ClientSecret == "" {
			return fmt.Errorf("%w: youtube client_id/client_secret not configured", shared.ErrMissingCredentials)
		}
		oauthCfg = services.YouTubeOAuthConfig(creds)
	default:
		return fmt.Errorf("%w: unknown service %q (must be 'spotify' or 'youtube')", shared.ErrInvalidArgument, service)
	}

	st, err := r.openStore()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	r.logger.Info("starting authorization flow", "service", service, "callback", addr)
	r.writePlain("Waiting for authorization in the browser (up to %s)...\n", server.CallbackTimeout)

	token, err := server.Authorize(ctx, oauthCfg, addr)
	if err != nil {
		return err
	}

	if err := st.SaveToken(service, token); err != nil {
		return err
	}

	r.writePlain("✓ %s authorized\n", service)
	return nil
}

// AuthStatus reports which services have stored tokens.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	st, err := r.openStore()
	if err != nil {
		return err
	}

	for _, service := range []string{serviceSpotify, serviceYouTube} {
		token, err := st.LoadToken(service)
		switch {
		case err != nil:
			r.writePlain("%s: not authenticated\n", service)
		case !token.Expiry.IsZero() && !token.Valid() && token.RefreshToken == "":
			r.writePlain("%s: token expired (no refresh token)\n", service)
		default:
			r.writePlain("%s: authenticated\n", service)
		}
	}

	return nil
}
