package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hollowbeak/playlift/internal/formatter"
	"github.com/hollowbeak/playlift/internal/match"
	"github.com/hollowbeak/playlift/internal/shared"
	"github.com/hollowbeak/playlift/internal/store"
	"github.com/hollowbeak/playlift/internal/transfer"
	"github.com/hollowbeak/playlift/internal/ui"
	"github.com/urfave/cli/v3"
)

// TransferRun migrates the selected source playlists to the destination.
func (r *Runner) TransferRun(ctx context.Context, cmd *cli.Command) error {
	sel, err := r.selectionFromFlags(cmd)
	if err != nil {
		return err
	}

	source, err := r.sourceClient(ctx)
	if err != nil {
		return err
	}
	dest, err := r.destClient(ctx)
	if err != nil {
		return err
	}

	r.logger.Info("listing source playlists", "service", source.Name())
	playlists, err := source.ListPlaylists(ctx)
	if err != nil {
		return err
	}

	chosen, missing, err := transfer.Resolve(playlists, sel)
	if err != nil {
		return err
	}
	for _, id := range missing {
		r.writePlain("! no playlist with id %q\n", id)
	}
	if len(chosen) == 0 {
		r.writePlain("Nothing to transfer.\n")
		return nil
	}

	rate := r.config.Transfer.SearchesPerSecond
	if cmd.IsSet("rate") {
		rate = cmd.Float("rate")
	}
	ranker := r.config.Transfer.Ranker
	if cmd.IsSet("ranker") {
		ranker = cmd.String("ranker")
	}

	engine := transfer.NewEngine(source, dest, match.ForName(ranker), transfer.NewThrottle(rate), r.logger)

	progressCh := make(chan transfer.ProgressUpdate, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case transfer.FetchTracks:
				r.writePlain("📥 %s\n", update.Message)
			case transfer.CreatePlaylist:
				r.writePlain("📝 %s\n", update.Message)
			case transfer.TransferTrack:
				r.writePlain("   %s\n", update.Message)
			case transfer.Summary:
				r.writePlain("\n")
			}
		}
	}()

	reports, runErr := engine.Run(ctx, chosen, progressCh)
	close(progressCh)
	<-done

	r.recordHistory(reports)
	r.printSummaries(reports)

	if path := cmd.String("report"); path != "" {
		if err := r.exportReports(path, reports); err != nil {
			return err
		}
		r.writePlain("Report written to %s\n", path)
	}

	if runErr != nil {
		return runErr
	}

	r.writePlain("\nAll transfers complete\n")
	return nil
}

// selectionFromFlags maps the --all/--id/--interactive flags onto a
// selection. Exactly one mode must be chosen.
func (r *Runner) selectionFromFlags(cmd *cli.Command) (transfer.Selection, error) {
	var sel transfer.Selection

	modes := 0
	if cmd.Bool("all") {
		sel.Mode = transfer.SelectAll
		modes++
	}
	if ids := cmd.StringSlice("id"); len(ids) > 0 {
		sel.Mode = transfer.SelectByIDs
		sel.IDs = ids
		modes++
	}
	if cmd.Bool("interactive") {
		sel.Mode = transfer.SelectInteractive
		sel.Pick = r.pick
		if sel.Pick == nil {
			sel.Pick = ui.Pick
		}
		modes++
	}

	if modes != 1 {
		return sel, fmt.Errorf("%w: choose exactly one of --all, --id, --interactive", shared.ErrInvalidArgument)
	}
	return sel, nil
}

// recordHistory persists run summaries; a broken store never fails a
// finished transfer.
func (r *Runner) recordHistory(reports []*transfer.Report) {
	st, err := r.openStore()
	if err != nil {
		r.logger.Warn("cannot open store, run history not recorded", "err", err)
		return
	}

	for _, report := range reports {
		rec := store.RunRecord{
			PlaylistName:  report.PlaylistName,
			DestinationID: report.DestinationID,
			State:         report.State.String(),
			Added:         report.Added,
			NotFound:      report.NotFound,
			Failed:        report.Failed,
		}
		if err := st.RecordRun(rec); err != nil {
			r.logger.Warn("failed to record run", "playlist", report.PlaylistName, "err", err)
		}
	}
}

func (r *Runner) printSummaries(reports []*transfer.Report) {
	r.writePlainHeader("Transfer Complete")

	for _, report := range reports {
		switch report.State {
		case transfer.StateSkipped:
			r.writePlain("%s: skipped (no available tracks)\n", report.PlaylistName)
		case transfer.StateFailed:
			r.writePlain("%s: failed (%v)\n", report.PlaylistName, report.Err)
		default:
			r.writePlain("%s: %d added, %d not found, %d failed\n",
				report.PlaylistName, report.Added, report.NotFound, report.Failed)
			r.writePlain("  → %s\n", report.DestinationURL)
		}

		for _, outcome := range report.Outcomes {
			if outcome.Kind == transfer.OutcomeNotFound {
				r.writePlain("  · no match: %s - %s\n", outcome.Track.PerformerLine(), outcome.Track.Title)
			}
		}
	}
}

// exportReports writes reports to a file, format picked by extension. CSV
// has no room for multiple playlists in one file; Markdown concatenates.
func (r *Runner) exportReports(path string, reports []*transfer.Report) error {
	var data []byte

	switch {
	case strings.HasSuffix(path, ".csv"):
		if len(reports) != 1 {
			return fmt.Errorf("%w: CSV export supports a single playlist (got %d)", shared.ErrInvalidArgument, len(reports))
		}
		out, err := formatter.ReportToCSV(reports[0])
		if err != nil {
			return err
		}
		data = out
	default:
		for _, report := range reports {
			data = append(data, formatter.ReportToMarkdown(report)...)
			data = append(data, '\n')
		}
	}

	return os.WriteFile(path, data, 0o644)
}

// History prints recent transfer run summaries from the store.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	st, err := r.openStore()
	if err != nil {
		return err
	}

	records, err := st.ListRuns(cmd.Int("limit"))
	if err != nil {
		return err
	}

	if len(records) == 0 {
		r.writePlain("No transfer runs recorded.\n")
		return nil
	}

	for _, rec := range records {
		r.writePlain("%s  %-10s %s: %d added, %d not found, %d failed\n",
			rec.CreatedAt.Format("2006-01-02 15:04"), rec.State, rec.PlaylistName,
			rec.Added, rec.NotFound, rec.Failed)
	}

	return nil
}
