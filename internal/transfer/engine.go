package transfer

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hollowbeak/playlift/internal/match"
	"github.com/hollowbeak/playlift/internal/models"
	"github.com/hollowbeak/playlift/internal/services"
	"github.com/hollowbeak/playlift/internal/shared"
)

// State is the terminal state a playlist transfer ended in.
type State int

const (
	// StateDone means the full pipeline ran and a report was produced.
	StateDone State = iota
	// StateSkipped means the playlist had zero tracks after filtering; no
	// destination playlist was created.
	StateSkipped
	// StateFailed means fetching tracks or creating the destination
	// playlist failed; the run continues with the next playlist.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateDone:
		return "done"
	case StateSkipped:
		return "skipped"
	case StateFailed:
		return "failed"
	default:
		return ""
	}
}

// OutcomeKind classifies the result of transferring one track.
type OutcomeKind int

const (
	// OutcomeAdded means the track was resolved and inserted (or was
	// already present, which counts the same).
	OutcomeAdded OutcomeKind = iota
	// OutcomeNotFound means search produced no usable candidate. A failed
	// search request lands here too, by policy.
	OutcomeNotFound
	// OutcomeFailed means a candidate was found but the insert failed.
	OutcomeFailed
)

// TrackOutcome is the single outcome a track yields. Exactly one outcome per
// available track, in source order.
type TrackOutcome struct {
	Track          models.Track
	Kind           OutcomeKind
	VideoID        string // set when Kind == OutcomeAdded
	AlreadyPresent bool   // duplicate insert collapsed into Added
	Reason         string // remote failure reason when Kind == OutcomeFailed
}

// Report is the reconciliation summary for one playlist transfer.
//
// Invariant: Added + NotFound + Failed == len(Outcomes) == number of
// available (non-filtered) source tracks.
type Report struct {
	PlaylistName   string
	DestinationID  string
	DestinationURL string
	State          State
	Added          int
	NotFound       int
	Failed         int
	Outcomes       []TrackOutcome
	// Err carries the fetch or creation error for StateFailed reports.
	Err error
}

// Engine runs playlist transfers. The catalogs are read-only after
// construction and the pipeline is strictly sequential, so the engine needs
// no locking.
type Engine struct {
	source   services.SourceCatalog
	dest     services.DestinationCatalog
	ranker   match.Ranker
	throttle *Throttle
	logger   *log.Logger
}

// NewEngine creates a transfer engine. A nil ranker defaults to the
// first-result baseline; a nil throttle disables pacing; a nil logger
// defaults to the shared logger.
func NewEngine(source services.SourceCatalog, dest services.DestinationCatalog, ranker match.Ranker, throttle *Throttle, logger *log.Logger) *Engine {
	if ranker == nil {
		ranker = match.FirstResult{}
	}
	if throttle == nil {
		throttle = NewThrottle(0)
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Engine{
		source:   source,
		dest:     dest,
		ranker:   ranker,
		throttle: throttle,
		logger:   logger,
	}
}

// sendProgress sends a progress update through the channel without blocking.
func (e *Engine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Run transfers the given playlists in order, one fully completing before
// the next begins. Per-playlist failures are embedded in their reports; the
// only error Run returns is context cancellation.
func (e *Engine) Run(ctx context.Context, playlists []models.Playlist, progress chan<- ProgressUpdate) ([]*Report, error) {
	reports := make([]*Report, 0, len(playlists))

	for _, pl := range playlists {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		report, err := e.TransferPlaylist(ctx, pl, progress)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

// TransferPlaylist runs the per-playlist state machine. The returned report
// always accounts for every available track; the returned error is non-nil
// only when the context ended mid-transfer.
func (e *Engine) TransferPlaylist(ctx context.Context, pl models.Playlist, progress chan<- ProgressUpdate) (*Report, error) {
	report := &Report{PlaylistName: pl.Name}

	// Fetching
	e.sendProgress(progress, fetchingUpdate(pl))
	tracks, err := e.source.ListPlaylistTracks(ctx, pl.ID)
	if err != nil {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		e.logger.Error("track fetch failed, skipping playlist", "playlist", pl.Name, "err", err)
		report.State = StateFailed
		report.Err = err
		e.sendProgress(progress, summaryUpdate(report))
		return report, nil
	}

	if len(tracks) == 0 {
		e.logger.Info("playlist has no available tracks, skipping", "playlist", pl.Name)
		report.State = StateSkipped
		e.sendProgress(progress, summaryUpdate(report))
		return report, nil
	}
	e.sendProgress(progress, fetchedUpdate(pl, len(tracks)))

	// Created
	e.sendProgress(progress, creatingUpdate(pl.Name))
	description := pl.Description
	if description == "" {
		description = fmt.Sprintf("Migrated from %s: %s", e.source.Name(), pl.Name)
	}
	destID, err := e.dest.CreatePlaylist(ctx, pl.Name, description)
	if err != nil {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		e.logger.Error("playlist creation failed, skipping playlist", "playlist", pl.Name, "err", err)
		report.State = StateFailed
		report.Err = err
		e.sendProgress(progress, summaryUpdate(report))
		return report, nil
	}
	report.DestinationID = destID
	report.DestinationURL = e.dest.PlaylistURL(destID)

	// Transferring: strictly sequential, source order. The position index
	// feeds the progress lines and the destination's duplicate detection
	// relies on prior inserts having completed.
	total := len(tracks)
	report.Outcomes = make([]TrackOutcome, 0, total)

	for i, track := range tracks {
		if err := e.throttle.Acquire(ctx); err != nil {
			return report, err
		}

		outcome := e.transferTrack(ctx, destID, track)
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		report.Outcomes = append(report.Outcomes, outcome)
		switch outcome.Kind {
		case OutcomeAdded:
			report.Added++
		case OutcomeNotFound:
			report.NotFound++
		case OutcomeFailed:
			report.Failed++
		}

		e.sendProgress(progress, trackUpdate(i+1, total, track, outcome))
	}

	// Reporting
	report.State = StateDone
	e.sendProgress(progress, summaryUpdate(report))
	return report, nil
}

// transferTrack resolves one track and inserts it. Search errors collapse
// into NotFound by policy: the caller cannot do anything different for "no
// match" and "search request failed", and neither may abort the batch.
func (e *Engine) transferTrack(ctx context.Context, destID string, track models.Track) TrackOutcome {
	outcome := TrackOutcome{Track: track}

	query := match.BuildQuery(track.Title, track.Performers)
	candidates, err := e.dest.Search(ctx, query)
	if err != nil {
		e.logger.Debug("search failed, treating as no match", "query", query, "err", err)
		outcome.Kind = OutcomeNotFound
		return outcome
	}

	best := match.SelectBest(e.ranker, track, candidates)
	if best == nil {
		outcome.Kind = OutcomeNotFound
		return outcome
	}

	res := e.dest.AddItem(ctx, destID, best.VideoID)
	switch res.Status {
	case services.ItemAdded:
		outcome.Kind = OutcomeAdded
		outcome.VideoID = best.VideoID
	case services.ItemAlreadyPresent:
		outcome.Kind = OutcomeAdded
		outcome.VideoID = best.VideoID
		outcome.AlreadyPresent = true
	default:
		e.logger.Warn("add failed", "title", track.Title, "reason", res.Reason, "err", res.Err)
		outcome.Kind = OutcomeFailed
		outcome.Reason = res.Reason
	}

	return outcome
}
