// Package transfer orchestrates playlist migration from the source catalog to
// the destination catalog.
//
// # Pipeline
//
// [Engine.Run] processes the selected playlists strictly in selection order,
// one fully completing (or failing) before the next begins. Each playlist
// moves through the states Fetching → Created → Transferring → Reporting →
// Done, with two early terminals:
//   - Skipped: the fetch yields zero tracks after filtering; no destination
//     playlist is created and the report carries all-zero counts
//   - Failed: destination playlist creation fails; the playlist is abandoned
//     and the outer loop continues
//
// Tracks within a playlist are processed sequentially in source order. The
// ordering is load-bearing: progress lines are position-indexed ([i/total])
// and the destination's duplicate detection keys off prior completed inserts.
//
// # Outcome accounting
//
// Every available track yields exactly one [TrackOutcome]. AlreadyPresent
// collapses into Added for reporting, and the [Report] invariant holds:
// Added + NotFound + Failed == number of available (non-filtered) tracks.
//
// # Failure semantics
//
// No per-track or per-playlist error aborts the run; everything is surfaced
// as counts in the reconciliation report. The engine returns an error only
// when the context is cancelled. Search errors are collapsed into NotFound
// by explicit policy here; the catalog clients report them distinctly.
//
// # Pacing
//
// A [Throttle] acquire precedes every destination search, replacing a fixed
// inter-request sleep with a requests-per-second token bucket.
//
// # Progress Reporting
//
// All operations push [ProgressUpdate] values over a non-blocking channel;
// a full channel drops updates rather than stalling the pipeline.
package transfer
