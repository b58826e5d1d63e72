// package formatter renders transfer reconciliation reports to exportable
// formats (CSV, Markdown)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/hollowbeak/playlift/internal/transfer"
)

// ReportToCSV renders one per-track outcome row per line with columns:
// Position, Title, Performers, Album, Outcome, VideoID, Reason
func ReportToCSV(report *transfer.Report) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Position", "Title", "Performers", "Album", "Outcome", "VideoID", "Reason"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i, outcome := range report.Outcomes {
		record := []string{
			fmt.Sprintf("%d", i+1),
			outcome.Track.Title,
			outcome.Track.PerformerLine(),
			outcome.Track.Album,
			outcomeLabel(outcome),
			outcome.VideoID,
			outcome.Reason,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ReportToMarkdown renders a summary header followed by a per-track table.
func ReportToMarkdown(report *transfer.Report) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# %s\n\n", report.PlaylistName)
	fmt.Fprintf(&buf, "State: %s\n\n", report.State)
	if report.DestinationURL != "" {
		fmt.Fprintf(&buf, "Destination: %s\n\n", report.DestinationURL)
	}
	fmt.Fprintf(&buf, "Added: %d • Not found: %d • Failed: %d\n\n", report.Added, report.NotFound, report.Failed)

	if len(report.Outcomes) == 0 {
		return buf.Bytes()
	}

	buf.WriteString("| # | Track | Performers | Outcome |\n")
	buf.WriteString("|---|-------|-----------|--------|\n")
	for i, outcome := range report.Outcomes {
		fmt.Fprintf(&buf, "| %d | %s | %s | %s |\n",
			i+1, outcome.Track.Title, outcome.Track.PerformerLine(), outcomeLabel(outcome))
	}

	return buf.Bytes()
}

func outcomeLabel(outcome transfer.TrackOutcome) string {
	switch outcome.Kind {
	case transfer.OutcomeAdded:
		if outcome.AlreadyPresent {
			return "added (already present)"
		}
		return "added"
	case transfer.OutcomeNotFound:
		return "not found"
	case transfer.OutcomeFailed:
		return "failed"
	default:
		return ""
	}
}
