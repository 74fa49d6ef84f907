// Package provision drives the coding standard provisioning workflow.
//
// Purpose:
//
//	Run the end-to-end sequence against the Codacy API: create a draft
//	standard covering the requested languages, enable every available
//	tool, disable each tool's info and minor severity patterns in bounded
//	batches, then promote the draft and set it as the organization
//	default. Failures inside the per-tool loop are recorded and skipped
//	over so one broken tool cannot sink the run; failures outside the
//	loop abort immediately.
//
// Dependencies:
//   - internal/client/codacy: API operations and wire types
//   - internal/errors: Structured workflow errors
//   - internal/progress: Progress reporting for the tool loop
//   - github.com/rs/zerolog: Structured logging
package provision

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/codacy-acme/basic-coding-standard/internal/client/codacy"
	"github.com/codacy-acme/basic-coding-standard/internal/errors"
	"github.com/codacy-acme/basic-coding-standard/internal/progress"
)

// DryRunStandardID is the placeholder standard id reported when dry-run
// mode skips the create call.
const DryRunStandardID = "dry-run-id"

// toolLoopOperation names the long-running phase for progress reporting.
const toolLoopOperation = "enabling tools"

// disabledSeverities lists the severity levels considered noise. Patterns
// at these levels are switched off after their tool is enabled.
var disabledSeverities = []string{"info", "minor"}

// API is the slice of the Codacy client the workflow consumes.
type API interface {
	CreateCodingStandard(ctx context.Context, name string, languages []string) (*codacy.CodingStandard, error)
	ListTools(ctx context.Context) ([]codacy.Tool, error)
	EnableTool(ctx context.Context, standardID, toolUUID string) error
	ListPatterns(ctx context.Context, standardID, toolUUID string) ([]codacy.PatternConfiguration, error)
	UpdatePatterns(ctx context.Context, standardID, toolUUID string, updates []codacy.PatternUpdate) error
	PromoteDraft(ctx context.Context, standardID string) error
	SetDefault(ctx context.Context, standardID string) error
}

// Options configures a Provisioner.
type Options struct {
	// DryRun logs every mutation instead of performing it. Read-only
	// calls still hit the API so the log shows real tool and pattern
	// names.
	DryRun bool

	// BatchSize caps patterns per update call. Zero or anything above
	// the API limit falls back to codacy.MaxPatternBatch.
	BatchSize int

	// Languages for the new standard. Empty selects the full catalog.
	Languages []string

	// Progress optionally reports tool-loop progress once a run has been
	// going long enough. Nil disables progress output.
	Progress *progress.Indicator
}

// ToolResult records the outcome for a single tool.
type ToolResult struct {
	UUID             string `json:"uuid,omitempty"`
	Name             string `json:"name,omitempty"`
	PatternsDisabled int    `json:"patternsDisabled"`
	UpdateCalls      int    `json:"updateCalls"`
	Skipped          bool   `json:"skipped,omitempty"`
	Error            string `json:"error,omitempty"`
}

// Report summarizes a provisioning run.
type Report struct {
	StandardID       string       `json:"standardId"`
	StandardName     string       `json:"standardName"`
	DryRun           bool         `json:"dryRun"`
	ToolsTotal       int          `json:"toolsTotal"`
	ToolsSucceeded   int          `json:"toolsSucceeded"`
	ToolsFailed      int          `json:"toolsFailed"`
	ToolsSkipped     int          `json:"toolsSkipped"`
	PatternsDisabled int          `json:"patternsDisabled"`
	UpdateCalls      int          `json:"updateCalls"`
	Promoted         bool         `json:"promoted"`
	Results          []ToolResult `json:"results,omitempty"`
	Duration         string       `json:"duration"`
}

// Provisioner executes the provisioning workflow against one organization.
type Provisioner struct {
	api       API
	logger    zerolog.Logger
	dryRun    bool
	batchSize int
	languages []string
	progress  *progress.Indicator
}

// New creates a Provisioner.
func New(api API, logger zerolog.Logger, opts Options) *Provisioner {
	batchSize := opts.BatchSize
	if batchSize <= 0 || batchSize > codacy.MaxPatternBatch {
		batchSize = codacy.MaxPatternBatch
	}
	return &Provisioner{
		api:       api,
		logger:    logger,
		dryRun:    opts.DryRun,
		batchSize: batchSize,
		languages: opts.Languages,
		progress:  opts.Progress,
	}
}

// Run executes the workflow and reports per-tool outcomes. The returned
// error is non-nil only for failures outside the tool loop; those abort
// the run with whatever the report holds so far.
func (p *Provisioner) Run(ctx context.Context, name string) (*Report, error) {
	start := time.Now()
	report := &Report{StandardName: name, DryRun: p.dryRun}

	p.logger.Info().Str("name", name).Msg("creating new coding standard")
	if p.dryRun {
		p.logger.Info().Str("name", name).Msg("[dry-run] would create coding standard")
		report.StandardID = DryRunStandardID
	} else {
		standard, err := p.api.CreateCodingStandard(ctx, name, p.languages)
		if err != nil {
			return report, fmt.Errorf("create coding standard: %w", err)
		}
		report.StandardID = standard.ID
		p.logger.Info().Str("id", standard.ID).Msg("created coding standard")
	}

	p.logger.Info().Msg("fetching available tools")
	tools, err := p.api.ListTools(ctx)
	if err != nil {
		return report, fmt.Errorf("list tools: %w", err)
	}

	if len(tools) == 0 {
		p.logger.Warn().Msg("no tools found")
		report.Duration = time.Since(start).String()
		return report, nil
	}

	report.ToolsTotal = len(tools)
	report.Results = make([]ToolResult, 0, len(tools))

	for i, tool := range tools {
		if err := ctx.Err(); err != nil {
			report.Duration = time.Since(start).String()
			return report, err
		}

		result := p.processTool(ctx, report.StandardID, tool)
		switch {
		case result.Skipped:
			report.ToolsSkipped++
		case result.Error != "":
			report.ToolsFailed++
		default:
			report.ToolsSucceeded++
		}
		report.PatternsDisabled += result.PatternsDisabled
		report.UpdateCalls += result.UpdateCalls
		report.Results = append(report.Results, result)

		if p.progress != nil {
			elapsed := time.Since(start)
			if p.progress.ShouldShow(elapsed) {
				_ = p.progress.Update(toolLoopOperation, i+1, len(tools), elapsed)
			}
		}
	}

	if p.progress != nil && p.progress.ShouldShow(time.Since(start)) {
		_ = p.progress.Complete(toolLoopOperation, len(tools), time.Since(start))
	}

	if p.dryRun {
		p.logger.Info().Msg("[dry-run] would promote coding standard")
		p.logger.Info().Msg("[dry-run] would set as default coding standard")
	} else {
		p.logger.Info().Msg("promoting coding standard")
		if err := p.api.PromoteDraft(ctx, report.StandardID); err != nil {
			return report, fmt.Errorf("promote coding standard: %w", err)
		}

		p.logger.Info().Msg("setting as default coding standard")
		if err := p.api.SetDefault(ctx, report.StandardID); err != nil {
			return report, fmt.Errorf("set default coding standard: %w", err)
		}
		report.Promoted = true
	}

	report.Duration = time.Since(start).String()
	p.logger.Info().
		Int("tools_enabled", report.ToolsSucceeded).
		Int("patterns_disabled", report.PatternsDisabled).
		Msg("successfully created and configured coding standard")
	return report, nil
}

// processTool enables one tool and disables its low-severity patterns.
// Every failure lands in the result so the caller can move on to the next
// tool.
func (p *Provisioner) processTool(ctx context.Context, standardID string, tool codacy.Tool) ToolResult {
	result := ToolResult{UUID: tool.UUID, Name: tool.Name}

	if tool.UUID == "" || tool.Name == "" {
		p.logger.Warn().
			Str("uuid", tool.UUID).
			Str("name", tool.Name).
			Msg("skipping tool with incomplete data")
		result.Skipped = true
		return result
	}

	p.logger.Info().Str("tool", tool.Name).Msg("processing tool")

	if p.dryRun {
		p.logger.Info().Str("tool", tool.Name).Msg("[dry-run] would enable tool")
	} else {
		if err := p.api.EnableTool(ctx, standardID, tool.UUID); err != nil {
			p.logger.Error().Err(err).Str("tool", tool.Name).Msg("error processing tool")
			result.Error = err.Error()
			return result
		}
		p.logger.Info().Str("tool", tool.Name).Msg("enabled tool")
	}

	disabled, calls, err := p.disableLowSeverity(ctx, standardID, tool)
	result.PatternsDisabled = disabled
	result.UpdateCalls = calls
	if err != nil {
		p.logger.Error().Err(err).Str("tool", tool.Name).Msg("error processing tool")
		result.Error = err.Error()
	}
	return result
}

// disableLowSeverity fetches the tool's patterns and switches off the
// noisy ones in batches. It returns how many patterns were (or, in
// dry-run, would be) disabled and how many update calls were issued; on
// a mid-run failure the counts cover the batches already applied.
func (p *Provisioner) disableLowSeverity(ctx context.Context, standardID string, tool codacy.Tool) (int, int, error) {
	patterns, err := p.api.ListPatterns(ctx, standardID, tool.UUID)
	if err != nil {
		return 0, 0, err
	}

	updates, err := disablePatterns(patterns)
	if err != nil {
		return 0, 0, err
	}

	if p.dryRun {
		for _, pattern := range patterns {
			if !isLowSeverity(pattern.Definition.SeverityLevel) {
				continue
			}
			p.logger.Info().
				Str("pattern", pattern.Definition.ID).
				Str("severity", pattern.Definition.SeverityLevel).
				Msg("[dry-run] would disable pattern")
		}
		return len(updates), 0, nil
	}

	disabled, calls := 0, 0
	for _, batch := range chunkPatterns(updates, p.batchSize) {
		if err := p.api.UpdatePatterns(ctx, standardID, tool.UUID, batch); err != nil {
			return disabled, calls, err
		}
		disabled += len(batch)
		calls++
		p.logger.Info().
			Int("count", len(batch)).
			Str("tool", tool.Name).
			Msg("disabled minor patterns")
	}
	return disabled, calls, nil
}

// isLowSeverity reports whether a severity level is info or minor, however
// the API cases it.
func isLowSeverity(level string) bool {
	for _, severity := range disabledSeverities {
		if strings.EqualFold(level, severity) {
			return true
		}
	}
	return false
}

// disablePatterns builds the disable updates for every low-severity
// pattern. A matching pattern without an id is a malformed API response
// and fails the whole tool rather than sending a null update.
func disablePatterns(patterns []codacy.PatternConfiguration) ([]codacy.PatternUpdate, error) {
	var updates []codacy.PatternUpdate
	for _, pattern := range patterns {
		if !isLowSeverity(pattern.Definition.SeverityLevel) {
			continue
		}
		if pattern.Definition.ID == "" {
			return nil, errors.NewDataError("patternDefinition.id", "pattern entry has no id")
		}
		updates = append(updates, codacy.PatternUpdate{ID: pattern.Definition.ID, Enabled: false})
	}
	return updates, nil
}

// chunkPatterns splits updates into consecutive batches of at most size
// elements each.
func chunkPatterns(updates []codacy.PatternUpdate, size int) [][]codacy.PatternUpdate {
	if len(updates) == 0 {
		return nil
	}
	var batches [][]codacy.PatternUpdate
	for start := 0; start < len(updates); start += size {
		end := start + size
		if end > len(updates) {
			end = len(updates)
		}
		batches = append(batches, updates[start:end])
	}
	return batches
}
