// YouTube Data API v3 implementation of [DestinationCatalog]
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hollowbeak/playlift/internal/models"
	"github.com/hollowbeak/playlift/internal/shared"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	youtube "google.golang.org/api/youtube/v3"
)

const (
	googleAuthURL  = "https://accounts.google.com/o/oauth2/auth"
	googleTokenURL = "https://oauth2.googleapis.com/token"

	// musicCategoryID is the YouTube video category for Music. Search is
	// filtered server-side to video items in this category.
	musicCategoryID = "10"

	defaultSearchWindow = 5
)

// YouTubeOAuthConfig builds the OAuth2 config for the Google authorization
// code flow with the playlist write scope the destination client needs.
func YouTubeOAuthConfig(cfg shared.YouTubeConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Scopes:       []string{youtube.YoutubeScope},
		Endpoint: oauth2.Endpoint{
			AuthURL:  googleAuthURL,
			TokenURL: googleTokenURL,
		},
	}
}

// YouTubeClient implements [DestinationCatalog] over the YouTube Data API v3.
type YouTubeClient struct {
	svc          *youtube.Service
	searchWindow int64
}

// NewYouTubeClient creates a YouTube destination catalog client. The token
// source carries the authenticated user's credentials; extra options (custom
// endpoint, HTTP client) are forwarded to the API client, which tests use to
// point the service at a local fixture server.
func NewYouTubeClient(ctx context.Context, ts oauth2.TokenSource, searchWindow int, opts ...option.ClientOption) (*YouTubeClient, error) {
	if ts != nil {
		opts = append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)
	}

	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	if searchWindow <= 0 {
		searchWindow = defaultSearchWindow
	}

	return &YouTubeClient{svc: svc, searchWindow: int64(searchWindow)}, nil
}

// Name returns the service name.
func (y *YouTubeClient) Name() string {
	return "YouTube"
}

// PlaylistURL returns the public URL of a playlist.
func (y *YouTubeClient) PlaylistURL(playlistID string) string {
	return "https://www.youtube.com/playlist?list=" + playlistID
}

// Search issues one search.list call for the query, requesting the
// configured candidate window filtered to Music videos. Candidates come back
// in the remote relevance order; no client-side re-ranking happens here.
func (y *YouTubeClient) Search(ctx context.Context, query string) ([]models.MatchCandidate, error) {
	resp, err := y.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		VideoCategoryId(musicCategoryID).
		MaxResults(y.searchWindow).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrSearchFailed, err)
	}

	candidates := make([]models.MatchCandidate, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		c := models.MatchCandidate{VideoID: item.Id.VideoId}
		if item.Snippet != nil {
			c.Title = item.Snippet.Title
			c.Channel = item.Snippet.ChannelTitle
		}
		candidates = append(candidates, c)
	}

	return candidates, nil
}

// CreatePlaylist creates a private playlist and returns its ID. Failure is
// returned explicitly; the transfer engine treats it as a per-playlist skip,
// not a fatal error.
func (y *YouTubeClient) CreatePlaylist(ctx context.Context, title, description string) (string, error) {
	pl := &youtube.Playlist{
		Snippet: &youtube.PlaylistSnippet{
			Title:       title,
			Description: description,
		},
		Status: &youtube.PlaylistStatus{PrivacyStatus: "private"},
	}

	resp, err := y.svc.Playlists.Insert([]string{"snippet", "status"}, pl).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrPlaylistCreate, err)
	}

	return resp.Id, nil
}

// AddItem appends a video to a playlist and classifies the outcome.
//
// A duplicate insertion ("videoAlreadyInPlaylist") counts as success. A 403
// policy reject is a soft failure: the destination sometimes rejects
// otherwise-valid videos for reasons unrelated to the insertion itself, and
// that must never abort the batch.
func (y *YouTubeClient) AddItem(ctx context.Context, playlistID, videoID string) AddResult {
	item := &youtube.PlaylistItem{
		Snippet: &youtube.PlaylistItemSnippet{
			PlaylistId: playlistID,
			ResourceId: &youtube.ResourceId{
				Kind:    "youtube#video",
				VideoId: videoID,
			},
		},
	}

	_, err := y.svc.PlaylistItems.Insert([]string{"snippet"}, item).Context(ctx).Do()
	if err == nil {
		return AddResult{Status: ItemAdded}
	}

	reason, message := apiErrorReason(err)
	if reason == "videoAlreadyInPlaylist" {
		return AddResult{Status: ItemAlreadyPresent, Reason: reason}
	}
	if isPolicyReject(reason, message) {
		return AddResult{
			Status: ItemAddFailed,
			Reason: reason,
			Err:    fmt.Errorf("%w: policy reject (%s): %v", shared.ErrAddFailed, reason, err),
		}
	}

	return AddResult{
		Status: ItemAddFailed,
		Reason: reason,
		Err:    fmt.Errorf("%w: %v", shared.ErrAddFailed, err),
	}
}

// apiErrorReason extracts the first structured error reason and message from
// a googleapi error, if present.
func apiErrorReason(err error) (reason, message string) {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return "", err.Error()
	}
	if len(gerr.Errors) > 0 {
		return gerr.Errors[0].Reason, gerr.Errors[0].Message
	}
	return "", gerr.Message
}

// isPolicyReject matches the narrow "forbidden, comments disabled" class of
// insert failures. The remote error reason is not reliably the true cause,
// so the raw reason is kept on the AddResult for later confirmation against
// the API's actual taxonomy.
func isPolicyReject(reason, message string) bool {
	if reason == "playlistItemsNotAccessible" {
		return true
	}
	return strings.Contains(strings.ToLower(message), "comment")
}
