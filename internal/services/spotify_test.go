package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hollowbeak/playlift/internal/shared"
)

func TestSpotifyOAuthConfig(t *testing.T) {
	cfg := SpotifyOAuthConfig(shared.SpotifyConfig{
		ClientID:     "test_client_id",
		ClientSecret: "test_client_secret",
		RedirectURI:  "http://localhost:8080/callback",
	})

	if cfg.ClientID != "test_client_id" {
		t.Errorf("expected client id to be set, got %s", cfg.ClientID)
	}
	if len(cfg.Scopes) != 2 {
		t.Errorf("expected 2 read scopes, got %v", cfg.Scopes)
	}
	if cfg.Endpoint.AuthURL != spotifyAuthURL {
		t.Errorf("unexpected auth URL %s", cfg.Endpoint.AuthURL)
	}
}

func TestSpotifyClient(t *testing.T) {
	ctx := context.Background()

	t.Run("Name", func(t *testing.T) {
		client := NewSpotifyClient(nil)
		if client.Name() != "Spotify" {
			t.Errorf("expected 'Spotify', got %s", client.Name())
		}
	})

	t.Run("ListPlaylists", func(t *testing.T) {
		t.Run("Drains All Pages", func(t *testing.T) {
			var srv *httptest.Server
			mux := http.NewServeMux()
			mux.HandleFunc("/me/playlists", func(w http.ResponseWriter, r *http.Request) {
				switch r.URL.Query().Get("offset") {
				case "", "0":
					fmt.Fprintf(w, `{
						"items": [
							{"id": "pl1", "name": "Road Trip", "owner": {"id": "u1"}, "tracks": {"total": 12}},
							{"id": "pl2", "name": "Focus", "owner": {"id": "u1"}, "tracks": {"total": 40}}
						],
						"total": 3,
						"next": %q
					}`, srv.URL+"/me/playlists?offset=2")
				default:
					fmt.Fprint(w, `{
						"items": [
							{"id": "pl3", "name": "Gym", "owner": {"id": "u1"}, "tracks": {"total": 7}}
						],
						"total": 3,
						"next": null
					}`)
				}
			})
			srv = httptest.NewServer(mux)
			defer srv.Close()

			client := NewSpotifyClient(srv.Client())
			client.baseURL = srv.URL

			playlists, err := client.ListPlaylists(ctx)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(playlists) != 3 {
				t.Fatalf("expected 3 playlists across pages, got %d", len(playlists))
			}
			if playlists[0].ID != "pl1" || playlists[2].ID != "pl3" {
				t.Errorf("expected listing order preserved, got %v", playlists)
			}
			if playlists[1].TrackCount != 40 {
				t.Errorf("expected track count 40, got %d", playlists[1].TrackCount)
			}
		})

		t.Run("Page Error Fails Whole Listing", func(t *testing.T) {
			var srv *httptest.Server
			calls := 0
			mux := http.NewServeMux()
			mux.HandleFunc("/me/playlists", func(w http.ResponseWriter, r *http.Request) {
				calls++
				if calls == 1 {
					fmt.Fprintf(w, `{"items": [{"id": "pl1", "name": "A", "owner": {"id": "u1"}, "tracks": {"total": 1}}], "total": 2, "next": %q}`,
						srv.URL+"/me/playlists?offset=1")
					return
				}
				w.WriteHeader(http.StatusInternalServerError)
			})
			srv = httptest.NewServer(mux)
			defer srv.Close()

			client := NewSpotifyClient(srv.Client())
			client.baseURL = srv.URL

			playlists, err := client.ListPlaylists(ctx)
			if !errors.Is(err, shared.ErrCatalogFetch) {
				t.Fatalf("expected ErrCatalogFetch, got %v", err)
			}
			if playlists != nil {
				t.Errorf("expected no partial result, got %v", playlists)
			}
		})
	})

	t.Run("ListPlaylistTracks", func(t *testing.T) {
		t.Run("Filters Null Tracks", func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/playlists/pl1/tracks", func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{
					"items": [
						{"track": {"id": "t1", "name": "Song One", "artists": [{"name": "Artist A"}], "album": {"name": "LP"}, "duration_ms": 180000}},
						{"track": null},
						{"track": {"id": "t2", "name": "Song Two", "artists": [{"name": "Artist A"}, {"name": "Artist B"}], "album": {"name": "LP"}, "duration_ms": 200000}}
					],
					"total": 3,
					"next": null
				}`)
			})
			srv := httptest.NewServer(mux)
			defer srv.Close()

			client := NewSpotifyClient(srv.Client())
			client.baseURL = srv.URL

			tracks, err := client.ListPlaylistTracks(ctx, "pl1")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(tracks) != 2 {
				t.Fatalf("expected null entries filtered, got %d tracks", len(tracks))
			}
			if tracks[0].Title != "Song One" || tracks[1].Title != "Song Two" {
				t.Errorf("expected source order preserved, got %v", tracks)
			}
			if tracks[1].PerformerLine() != "Artist A, Artist B" {
				t.Errorf("expected comma-joined performers, got %q", tracks[1].PerformerLine())
			}
		})

		t.Run("Follows Next URL", func(t *testing.T) {
			var srv *httptest.Server
			mux := http.NewServeMux()
			mux.HandleFunc("/playlists/pl1/tracks", func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("offset") == "" {
					fmt.Fprintf(w, `{"items": [{"track": {"id": "t1", "name": "One", "artists": [], "album": {"name": ""}, "duration_ms": 1}}], "total": 2, "next": %q}`,
						srv.URL+"/playlists/pl1/tracks?offset=1")
					return
				}
				fmt.Fprint(w, `{"items": [{"track": {"id": "t2", "name": "Two", "artists": [], "album": {"name": ""}, "duration_ms": 1}}], "total": 2, "next": null}`)
			})
			srv = httptest.NewServer(mux)
			defer srv.Close()

			client := NewSpotifyClient(srv.Client())
			client.baseURL = srv.URL

			tracks, err := client.ListPlaylistTracks(ctx, "pl1")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(tracks) != 2 {
				t.Fatalf("expected 2 tracks across pages, got %d", len(tracks))
			}
			if tracks[0].SourceID != "t1" || tracks[1].SourceID != "t2" {
				t.Errorf("expected page order preserved, got %v", tracks)
			}
		})
	})
}
