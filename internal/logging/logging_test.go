package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

var fileTimestampRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)

func TestNewFileGetsDebugConsoleDoesNot(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "run.log")

	logger, closer, err := New(Config{
		Level:      "info",
		FilePath:   path,
		ConsoleOut: &console,
		NoColor:    true,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Debug().Msg("cursor details for page 3")
	logger.Info().Msg("coding standard created")

	if err := closer.Close(); err != nil {
		t.Fatalf("closing log file: %v", err)
	}

	fileContent, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	if !strings.Contains(string(fileContent), "cursor details for page 3") {
		t.Error("file sink should record debug events")
	}
	if !strings.Contains(string(fileContent), "coding standard created") {
		t.Error("file sink should record info events")
	}

	consoleOut := console.String()
	if strings.Contains(consoleOut, "cursor details for page 3") {
		t.Error("console at info level should not show debug events")
	}
	if !strings.Contains(consoleOut, "coding standard created") {
		t.Error("console should show info events")
	}
}

func TestNewSinkTimestamps(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "run.log")

	logger, closer, err := New(Config{
		Level:      "info",
		FilePath:   path,
		ConsoleOut: &console,
		NoColor:    true,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info().Msg("promoting coding standard")

	if err := closer.Close(); err != nil {
		t.Fatalf("closing log file: %v", err)
	}

	fileContent, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}

	if !fileTimestampRe.Match(fileContent) {
		t.Errorf("file lines should start with a timestamp, got: %q", string(fileContent))
	}
	if fileTimestampRe.MatchString(console.String()) {
		t.Errorf("console lines should carry no timestamp, got: %q", console.String())
	}
}

func TestNewVerboseForcesConsoleDebug(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "run.log")

	logger, closer, err := New(Config{
		Level:      "info",
		Verbose:    true,
		FilePath:   path,
		ConsoleOut: &console,
		NoColor:    true,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer closer.Close()

	logger.Debug().Msg("request headers attached")

	if !strings.Contains(console.String(), "request headers attached") {
		t.Error("verbose mode should surface debug events on the console")
	}
}

func TestNewAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	if err := os.WriteFile(path, []byte("earlier run\n"), 0o644); err != nil {
		t.Fatalf("seeding log file: %v", err)
	}

	logger, closer, err := New(Config{
		FilePath:   path,
		ConsoleOut: &bytes.Buffer{},
		NoColor:    true,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	logger.Info().Msg("second run")
	if err := closer.Close(); err != nil {
		t.Fatalf("closing log file: %v", err)
	}

	fileContent, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(fileContent), "earlier run") {
		t.Error("existing log content should be preserved")
	}
	if !strings.Contains(string(fileContent), "second run") {
		t.Error("new events should be appended")
	}
}

func TestDefaultFilePath(t *testing.T) {
	now := time.Date(2026, 1, 31, 15, 4, 5, 0, time.UTC)

	got := DefaultFilePath(now)
	want := filepath.Join("logs", "codacy_standard_2026-01-31.log")
	if got != want {
		t.Errorf("DefaultFilePath() = %q, want %q", got, want)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseLevel(tt.input)
			if got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
