// Package models defines the domain entities flowing through the playlift migration pipeline.
//
// All types are plain data transfer objects:
//   - [Playlist] : source playlist metadata, fetched once per run and never mutated
//   - [Track] : a source track, immutable once fetched, consumed by the matcher and discarded
//   - [MatchCandidate] : a destination search hit, at most the top-ranked one survives ranking
//
// Nothing in this package is persisted across runs. The store package keeps
// only run summaries and OAuth tokens, never track-to-video mappings.
package models
