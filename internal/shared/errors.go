package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Authentication errors. These are the only errors that abort a run
	// before the transfer engine starts.
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrCallbackTimeout  = fmt.Errorf("authorization callback timed out")

	// Catalog and transfer errors. ErrCatalogFetch aborts the current
	// playlist's fetch step only; the outer loop continues.
	ErrCatalogFetch     = fmt.Errorf("catalog fetch failed")
	ErrPlaylistCreate   = fmt.Errorf("playlist creation failed")
	ErrPlaylistNotFound = fmt.Errorf("playlist not found")
	ErrSearchFailed     = fmt.Errorf("catalog search failed")
	ErrAddFailed        = fmt.Errorf("add item failed")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrEmptySelection  = fmt.Errorf("no playlists selected")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
