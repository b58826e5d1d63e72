package shared

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestGenerateID(t *testing.T) {
	first := GenerateID()
	second := GenerateID()

	if first == "" || second == "" {
		t.Fatal("expected non-empty IDs")
	}
	if first == second {
		t.Error("expected unique IDs")
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("With Writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf)

		logger.Info("hello")
		if buf.Len() == 0 {
			t.Error("expected log output written to the buffer")
		}
	})

	t.Run("Nil Writer Defaults", func(t *testing.T) {
		if logger := NewLogger(nil); logger == nil {
			t.Error("expected a logger")
		}
	})
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "playlift.log")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if logger == nil {
		t.Fatal("expected a logger")
	}
}

func TestNewDatabase(t *testing.T) {
	t.Run("In Memory", func(t *testing.T) {
		db, err := NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		defer db.Close()

		ConfigureDatabase(db, 4, 2)
		if err := db.Ping(); err != nil {
			t.Errorf("expected database reachable, got %v", err)
		}
	})

	t.Run("File Backed", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.db")
		db, err := NewDatabase(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		db.Close()
	})
}

func TestOpenBrowser(t *testing.T) {
	original := getRuntime
	defer func() { getRuntime = original }()

	getRuntime = func() string { return "plan9" }
	if err := OpenBrowser("https://example.com"); err == nil {
		t.Error("expected error for unsupported platform")
	}
}
