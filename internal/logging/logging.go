// Package logging configures the CLI's dual-sink logger.
//
// Purpose:
//
//	Build one logger that records every event in a daily log file while the
//	console shows a quieter, timestamp-free view of the same run. The file
//	sink always captures debug detail; the console level follows
//	configuration, with --verbose forcing debug.
//
// Dependencies:
//   - github.com/rs/zerolog: Structured logging
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLogDir is where daily log files land when no explicit output path
// is given.
const DefaultLogDir = "logs"

const (
	filePrefix     = "codacy_standard_"
	fileTimeFormat = "2006-01-02 15:04:05"
)

// Config controls logger initialization.
type Config struct {
	// Level controls console verbosity (debug, info, warn, error).
	// Defaults to "info" if empty or invalid. The file sink ignores it and
	// always records at debug level.
	Level string

	// Verbose forces the console level to debug.
	Verbose bool

	// FilePath is the log file destination. Empty selects the daily file
	// under DefaultLogDir.
	FilePath string

	// ConsoleOut is the console sink. Defaults to os.Stderr.
	ConsoleOut io.Writer

	// NoColor disables ANSI colors on the console sink.
	NoColor bool
}

// New builds the dual-sink logger. The returned closer owns the log file and
// must be closed when the run finishes.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	consoleOut := cfg.ConsoleOut
	if consoleOut == nil {
		consoleOut = os.Stderr
	}

	path := cfg.FilePath
	if path == "" {
		if err := os.MkdirAll(DefaultLogDir, 0o750); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		path = DefaultFilePath(time.Now())
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("failed to open log file: %w", err)
	}

	fileWriter := zerolog.ConsoleWriter{
		Out:        file,
		NoColor:    true,
		TimeFormat: fileTimeFormat,
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:          consoleOut,
		NoColor:      cfg.NoColor,
		PartsExclude: []string{zerolog.TimestampFieldName},
	}

	consoleLevel := parseLevel(cfg.Level)
	if cfg.Verbose {
		consoleLevel = zerolog.DebugLevel
	}

	// The logger itself runs at debug so the file sink sees everything;
	// the console sink filters to its own level.
	sink := zerolog.MultiLevelWriter(
		fileWriter,
		&zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: consoleWriter},
			Level:  consoleLevel,
		},
	)

	logger := zerolog.New(sink).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return logger, file, nil
}

// DefaultFilePath returns the daily log file path for the given time.
func DefaultFilePath(now time.Time) string {
	return filepath.Join(DefaultLogDir, filePrefix+now.Format("2006-01-02")+".log")
}

// parseLevel converts a string log level to zerolog.Level.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
