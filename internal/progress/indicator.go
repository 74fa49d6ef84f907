// Package progress reports progress for long-running provisioning runs.
//
// Purpose:
//
//	Enabling sixty-odd tools with a throttle delay after every mutation adds
//	up to several minutes of wall-clock time. This package renders a
//	single-line percentage display for interactive terminals and structured
//	JSON events for CI logs, but only once a run has been going long enough
//	to be worth narrating.
//
// Dependencies:
//   - encoding/json: Structured progress event output
//   - time: Duration tracking and remaining-time estimates
package progress

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// defaultMinDuration is how long a run must take before progress output
// starts. Shorter runs finish before the display would be useful.
const defaultMinDuration = 30 * time.Second

// Indicator renders progress for the tool-enablement loop.
type Indicator struct {
	writer      io.Writer
	minDuration time.Duration
	format      string // table or json
}

// NewIndicator creates an indicator writing to w. A nil writer falls back
// to stderr so progress never mixes with report output on stdout.
func NewIndicator(w io.Writer, format string) *Indicator {
	if w == nil {
		w = os.Stderr
	}
	return &Indicator{
		writer:      w,
		minDuration: defaultMinDuration,
		format:      format,
	}
}

// Event is a progress event for monitoring systems and CI logs.
type Event struct {
	Timestamp       string  `json:"timestamp"`
	Operation       string  `json:"operation"`
	PercentComplete float64 `json:"percent_complete"`
	ItemsProcessed  int     `json:"items_processed,omitempty"`
	TotalItems      int     `json:"total_items,omitempty"`
	Elapsed         string  `json:"elapsed"`
	Remaining       string  `json:"remaining,omitempty"`
}

// ShouldShow reports whether enough time has elapsed to start showing
// progress.
func (p *Indicator) ShouldShow(elapsed time.Duration) bool {
	return elapsed > p.minDuration
}

// Update renders one progress step.
func (p *Indicator) Update(operation string, processed, total int, elapsed time.Duration) error {
	if total == 0 {
		return nil
	}

	percent := float64(processed) / float64(total) * 100
	remaining := time.Duration(0)
	if processed > 0 {
		perItem := elapsed / time.Duration(processed)
		remaining = perItem * time.Duration(total-processed)
	}

	if p.format == "json" {
		event := Event{
			Timestamp:       time.Now().UTC().Format(time.RFC3339),
			Operation:       operation,
			PercentComplete: percent,
			ItemsProcessed:  processed,
			TotalItems:      total,
			Elapsed:         elapsed.String(),
			Remaining:       remaining.String(),
		}
		return json.NewEncoder(p.writer).Encode(event)
	}

	// Table format rewrites a single line in place.
	_, err := fmt.Fprintf(p.writer, "\r%s: %.1f%% (%d/%d) [elapsed: %s, remaining: %s]",
		operation, percent, processed, total, elapsed.Round(time.Second), remaining.Round(time.Second))
	return err
}

// Complete renders the final progress line.
func (p *Indicator) Complete(operation string, total int, elapsed time.Duration) error {
	if p.format == "json" {
		event := Event{
			Timestamp:       time.Now().UTC().Format(time.RFC3339),
			Operation:       operation,
			PercentComplete: 100,
			ItemsProcessed:  total,
			TotalItems:      total,
			Elapsed:         elapsed.String(),
			Remaining:       "0s",
		}
		return json.NewEncoder(p.writer).Encode(event)
	}

	_, err := fmt.Fprintf(p.writer, "\r%s: 100.0%% (%d/%d) [completed in %s]\n",
		operation, total, total, elapsed.Round(time.Second))
	return err
}
