package formatter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/hollowbeak/playlift/internal/models"
	"github.com/hollowbeak/playlift/internal/transfer"
)

func sampleReport() *transfer.Report {
	return &transfer.Report{
		PlaylistName:   "Road Trip",
		DestinationID:  "dest123",
		DestinationURL: "https://www.youtube.com/playlist?list=dest123",
		State:          transfer.StateDone,
		Added:          2,
		NotFound:       1,
		Failed:         0,
		Outcomes: []transfer.TrackOutcome{
			{
				Track:   models.Track{Title: "Song One", Performers: []string{"Artist A"}, Album: "LP"},
				Kind:    transfer.OutcomeAdded,
				VideoID: "vid1",
			},
			{
				Track:          models.Track{Title: "Song Two", Performers: []string{"Artist A", "Artist B"}},
				Kind:           transfer.OutcomeAdded,
				VideoID:        "vid2",
				AlreadyPresent: true,
			},
			{
				Track: models.Track{Title: "Song Three", Performers: []string{"Artist C"}},
				Kind:  transfer.OutcomeNotFound,
			},
		},
	}
}

func TestReportToCSV(t *testing.T) {
	data, err := ReportToCSV(sampleReport())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("output must be valid CSV: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d", len(records))
	}
	if records[0][0] != "Position" || records[0][4] != "Outcome" {
		t.Errorf("unexpected header %v", records[0])
	}
	if records[1][0] != "1" || records[1][1] != "Song One" || records[1][4] != "added" {
		t.Errorf("unexpected first row %v", records[1])
	}
	if records[2][2] != "Artist A, Artist B" {
		t.Errorf("expected comma-joined performers, got %q", records[2][2])
	}
	if records[2][4] != "added (already present)" {
		t.Errorf("expected duplicate labelled, got %q", records[2][4])
	}
	if records[3][4] != "not found" || records[3][5] != "" {
		t.Errorf("unexpected not-found row %v", records[3])
	}
}

func TestReportToMarkdown(t *testing.T) {
	out := string(ReportToMarkdown(sampleReport()))

	for _, want := range []string{
		"# Road Trip",
		"State: done",
		"https://www.youtube.com/playlist?list=dest123",
		"Added: 2",
		"| 1 | Song One | Artist A | added |",
		"| 3 | Song Three | Artist C | not found |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q\n%s", want, out)
		}
	}
}

func TestReportToMarkdownSkipped(t *testing.T) {
	report := &transfer.Report{PlaylistName: "Empty", State: transfer.StateSkipped}
	out := string(ReportToMarkdown(report))

	if !strings.Contains(out, "State: skipped") {
		t.Errorf("expected skipped state, got\n%s", out)
	}
	if strings.Contains(out, "| # |") {
		t.Errorf("expected no table for a skipped playlist, got\n%s", out)
	}
}
