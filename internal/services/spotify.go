// Spotify Web API implementation of [SourceCatalog]
//
// Response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hollowbeak/playlift/internal/models"
	"github.com/hollowbeak/playlift/internal/shared"
	"golang.org/x/oauth2"
)

const (
	spotifyAuthURL  = "https://accounts.spotify.com/authorize"
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"
)

// SpotifyOAuthConfig builds the OAuth2 config for the Spotify authorization
// code flow with the read scopes the source client needs.
func SpotifyOAuthConfig(cfg shared.SpotifyConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes: []string{
			"playlist-read-private",
			"playlist-read-collaborative",
		},
		Endpoint: oauth2.Endpoint{
			AuthURL:  spotifyAuthURL,
			TokenURL: spotifyTokenURL,
		},
	}
}

type spotifyOwner struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type spotifyTrackRef struct {
	Total int `json:"total"`
}

type spotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type spotifyAlbum struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type spotifyTrack struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Artists    []spotifyArtist `json:"artists"`
	Album      spotifyAlbum    `json:"album"`
	DurationMS int             `json:"duration_ms"`
}

type spotifyPlaylistItem struct {
	AddedAt string `json:"added_at"`
	// Track is null when the underlying item is unavailable (deleted or
	// region-locked). Null entries are filtered, not reported as NotFound.
	Track *spotifyTrack `json:"track"`
}

type spotifySimplePlaylist struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Owner       spotifyOwner    `json:"owner"`
	Tracks      spotifyTrackRef `json:"tracks"`
}

// spotifyPage is one page of a cursor-paginated listing. Next is the opaque
// absolute URL of the following page, null on the last page.
type spotifyPage[T any] struct {
	Items []T     `json:"items"`
	Total int     `json:"total"`
	Next  *string `json:"next"`
}

// SpotifyClient implements [SourceCatalog] for the Spotify Web API.
// The HTTP client it is handed is already OAuth2-authenticated; this client
// never performs auth itself.
type SpotifyClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewSpotifyClient creates a Spotify source catalog client from an
// authenticated HTTP client (typically oauth2.Config.Client).
func NewSpotifyClient(httpClient *http.Client) *SpotifyClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &SpotifyClient{
		baseURL:    spotifyBaseURL,
		httpClient: httpClient,
	}
}

// Name returns the service name.
func (s *SpotifyClient) Name() string {
	return "Spotify"
}

// getJSON performs an authenticated GET against an absolute API URL.
func (s *SpotifyClient) getJSON(ctx context.Context, apiURL string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("spotify API error: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// ListPlaylists fetches the current user's playlists, following each page's
// next URL until the listing is drained. Any page error fails the whole
// listing; no partial result is returned.
func (s *SpotifyClient) ListPlaylists(ctx context.Context) ([]models.Playlist, error) {
	var all []models.Playlist
	next := s.baseURL + "/me/playlists?limit=50"

	for next != "" {
		var page spotifyPage[spotifySimplePlaylist]
		if err := s.getJSON(ctx, next, &page); err != nil {
			return nil, fmt.Errorf("%w: listing playlists: %v", shared.ErrCatalogFetch, err)
		}

		for _, sp := range page.Items {
			all = append(all, models.Playlist{
				ID:          sp.ID,
				Name:        sp.Name,
				Description: sp.Description,
				OwnerID:     sp.Owner.ID,
				TrackCount:  sp.Tracks.Total,
			})
		}

		if page.Next == nil {
			break
		}
		next = *page.Next
	}

	return all, nil
}

// ListPlaylistTracks fetches a playlist's tracks in source order, draining
// pagination and dropping entries with a null underlying track.
func (s *SpotifyClient) ListPlaylistTracks(ctx context.Context, playlistID string) ([]models.Track, error) {
	var tracks []models.Track
	next := fmt.Sprintf("%s/playlists/%s/tracks?limit=100", s.baseURL, playlistID)

	for next != "" {
		var page spotifyPage[spotifyPlaylistItem]
		if err := s.getJSON(ctx, next, &page); err != nil {
			return nil, fmt.Errorf("%w: listing tracks of %s: %v", shared.ErrCatalogFetch, playlistID, err)
		}

		for _, item := range page.Items {
			if item.Track == nil {
				continue
			}

			performers := make([]string, 0, len(item.Track.Artists))
			for _, a := range item.Track.Artists {
				performers = append(performers, a.Name)
			}

			tracks = append(tracks, models.Track{
				SourceID:   item.Track.ID,
				Title:      item.Track.Name,
				Performers: performers,
				Album:      item.Track.Album.Name,
				DurationMS: item.Track.DurationMS,
			})
		}

		if page.Next == nil {
			break
		}
		next = *page.Next
	}

	return tracks, nil
}
