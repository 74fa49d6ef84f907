// Package audit records provisioning runs for later review.
//
// Purpose:
//
//	Emit one structured audit entry per CLI invocation covering the run id,
//	the command line, its parameters (masked where sensitive), the outcome,
//	and how long the run took. Entries are JSON so log aggregation systems
//	can ingest them directly.
//
// Dependencies:
//   - encoding/json: Structured JSON entries
//   - github.com/google/uuid: Run id generation
//   - internal/logging: Shared redaction rules for sensitive parameters
package audit

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/codacy-acme/basic-coding-standard/internal/logging"
)

// Logger emits audit entries for provisioning runs.
type Logger struct {
	encoder *json.Encoder
}

// NewLogger creates an audit logger writing to w. A nil writer falls back
// to stderr so audit entries never mix with report output on stdout.
func NewLogger(w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &Logger{encoder: encoder}
}

// NewRunID returns a fresh id correlating one CLI invocation across the
// audit trail and the log file.
func NewRunID() string {
	return uuid.NewString()
}

// Entry is one audit record.
type Entry struct {
	Timestamp  string                 `json:"timestamp"`
	RunID      string                 `json:"run_id"`
	Operation  string                 `json:"operation"`
	Command    string                 `json:"command"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	Outcome    string                 `json:"outcome"`
	DryRun     bool                   `json:"dry_run,omitempty"`
	Duration   string                 `json:"duration,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

// Operation describes a finished run to be recorded.
type Operation struct {
	Type       string                 // standard_create, etc.
	Command    string                 // Full command executed
	Parameters map[string]interface{} // Masked before writing
	Outcome    string                 // success, failure
	DryRun     bool
	Duration   time.Duration
	Error      error
}

// LogOperation writes one audit entry. Parameter values are passed through
// the shared redaction rules so tokens never reach the audit trail.
func (l *Logger) LogOperation(runID string, op Operation) error {
	entry := Entry{
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		RunID:      runID,
		Operation:  op.Type,
		Command:    op.Command,
		Parameters: logging.RedactFields(op.Parameters),
		Outcome:    op.Outcome,
		DryRun:     op.DryRun,
	}

	if op.Duration > 0 {
		entry.Duration = op.Duration.String()
	}
	if op.Error != nil {
		entry.Error = op.Error.Error()
	}

	return l.encoder.Encode(entry)
}
