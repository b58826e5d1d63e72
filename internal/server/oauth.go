// Package server runs the temporary localhost listener that completes OAuth2
// authorization-code flows for the CLI.
//
// [Authorize] starts an HTTP server on the configured host/port, opens the
// provider's consent page in the browser, waits for the single callback,
// exchanges the code, and shuts the server down. The callback wait is bounded
// by [CallbackTimeout].
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hollowbeak/playlift/internal/shared"
	"golang.org/x/oauth2"
)

// CallbackTimeout bounds how long Authorize waits for the provider to
// redirect back to the local listener.
const CallbackTimeout = 60 * time.Second

type callbackResult struct {
	token *oauth2.Token
	err   error
}

// callbackHandler handles the OAuth2 redirect. It validates the state
// parameter, exchanges the authorization code, and delivers exactly one
// result; repeated callbacks are rejected.
type callbackHandler struct {
	config  *oauth2.Config
	state   string
	results chan callbackResult

	mu   sync.Mutex
	done bool
}

func newCallbackHandler(config *oauth2.Config, state string) *callbackHandler {
	return &callbackHandler{
		config:  config,
		state:   state,
		results: make(chan callbackResult, 1),
	}
}

func (h *callbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		http.Error(w, "callback already processed", http.StatusBadRequest)
		return
	}
	h.done = true
	h.mu.Unlock()

	if r.URL.Query().Get("state") != h.state {
		h.results <- callbackResult{err: fmt.Errorf("%w: state mismatch", shared.ErrAuthFailed)}
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		errParam := r.URL.Query().Get("error")
		h.results <- callbackResult{err: fmt.Errorf("%w: provider returned %q", shared.ErrAuthFailed, errParam)}
		http.Error(w, "Authorization failed", http.StatusBadRequest)
		return
	}

	token, err := h.config.Exchange(r.Context(), code)
	if err != nil {
		h.results <- callbackResult{err: fmt.Errorf("%w: token exchange: %v", shared.ErrAuthFailed, err)}
		http.Error(w, "Token exchange failed", http.StatusInternalServerError)
		return
	}

	h.results <- callbackResult{token: token}

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, "<html><body><h2>Authorization successful</h2><p>You can close this window and return to the terminal.</p></body></html>")
}

// Authorize runs the full authorization-code flow for a provider: starts the
// callback listener, opens the consent URL in the browser, and waits up to
// CallbackTimeout for the redirect. The returned token includes the refresh
// token when the provider grants offline access.
func Authorize(ctx context.Context, config *oauth2.Config, addr string) (*oauth2.Token, error) {
	state := shared.GenerateID()
	handler := newCallbackHandler(config, state)

	mux := http.NewServeMux()
	mux.Handle("/callback", handler)

	srv := &http.Server{Addr: addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	authURL := config.AuthCodeURL(state, oauth2.AccessTypeOffline)
	if err := shared.OpenBrowser(authURL); err != nil {
		// Headless environments still work: the URL is surfaced for the
		// user to open manually.
		fmt.Printf("Open this URL to authorize:\n%s\n", authURL)
	}

	select {
	case res := <-handler.results:
		return res.token, res.err
	case err := <-errCh:
		return nil, fmt.Errorf("%w: callback server: %v", shared.ErrAuthFailed, err)
	case <-time.After(CallbackTimeout):
		return nil, shared.ErrCallbackTimeout
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
