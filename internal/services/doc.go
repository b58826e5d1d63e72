// Package services implements the catalog clients for both sides of a migration.
//
// # Catalog Interfaces
//
// The source and destination catalogs have different shapes, so unlike a
// two-way sync tool there is no single provider interface:
//   - [SourceCatalog] : read-only listing of a user's playlists and tracks
//   - [DestinationCatalog] : search, playlist creation, and item insertion
//
// # Spotify (source)
//
// [SpotifyClient] talks to the Spotify Web API over an OAuth2-authenticated
// HTTP client. Listings drain cursor pagination by following each page's
// opaque "next" URL until it is null, and return either the complete
// concatenated listing or a [shared.ErrCatalogFetch]-wrapped error, never a
// partial result. Playlist track listings drop entries whose underlying
// track object is null (region-locked or deleted); those tracks are excluded
// from both the input count and the reconciliation report.
//
// # YouTube (destination)
//
// [YouTubeClient] wraps the YouTube Data API v3 via google.golang.org/api.
// Search requests a small fixed candidate window filtered to videos in the
// Music category, and candidates are returned in the remote relevance order.
// AddItem classifies the googleapi error taxonomy into [AddResult]:
// a duplicate insertion reports AlreadyPresent (success-equivalent), and a
// 403 policy rejection is a soft failure the transfer engine counts and
// moves past.
//
// # Error Handling
//
// Both clients return explicit errors wrapped around sentinels from the
// shared package. Collapsing a search error into "no match" is the transfer
// engine's policy, not the client's.
package services
