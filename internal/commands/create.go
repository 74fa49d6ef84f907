// Package commands provides the Cobra commands for the CLI.
//
// Purpose:
//
//	Implement the create command that provisions a complete coding
//	standard (create draft, enable every tool, disable low-severity
//	patterns, promote, set as organization default) plus the read-only
//	standards and tools listing commands. Create supports dry-run
//	previews, quiet and verbose modes, an audit trail, and table/json/csv
//	report output.
//
// Dependencies:
//   - github.com/spf13/cobra: Command wiring
//   - internal/config: Configuration loading and validation
//   - internal/logging: Dual-sink logger
//   - internal/client/codacy: Codacy API client
//   - internal/provision: Workflow orchestration
//   - internal/audit: Run audit trail
//   - internal/health: API preflight
//   - internal/output: Result rendering
//   - internal/progress: Tool-loop progress reporting
package commands

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/codacy-acme/basic-coding-standard/internal/audit"
	"github.com/codacy-acme/basic-coding-standard/internal/client"
	"github.com/codacy-acme/basic-coding-standard/internal/client/codacy"
	"github.com/codacy-acme/basic-coding-standard/internal/config"
	"github.com/codacy-acme/basic-coding-standard/internal/health"
	"github.com/codacy-acme/basic-coding-standard/internal/logging"
	"github.com/codacy-acme/basic-coding-standard/internal/output"
	"github.com/codacy-acme/basic-coding-standard/internal/progress"
	"github.com/codacy-acme/basic-coding-standard/internal/provision"
)

// CreateCommand creates the create command.
func CreateCommand() *cobra.Command {
	var (
		flagProjectName   string
		flagDryRun        bool
		flagVerbose       bool
		flagQuiet         bool
		flagOutput        string
		flagFormat        string
		flagLanguagesFile string
		flagAPIURL        string
		flagAPIToken      string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create and configure an organization coding standard",
		Long: `Create provisions a complete coding standard for the organization:
it creates a draft standard, enables every available tool, disables
info and minor severity patterns, promotes the draft, and sets it as
the organization default.

Use --dry-run to preview every change without touching the organization.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, flagProjectName, flagDryRun, flagVerbose, flagQuiet,
				flagOutput, flagFormat, flagLanguagesFile, flagAPIURL, flagAPIToken)
		},
	}

	cmd.Flags().StringVar(&flagProjectName, "project-name", "", "Name for the new coding standard (required)")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Preview changes without executing")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Show debug detail on the console")
	cmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Suppress non-error console output")
	cmd.Flags().StringVar(&flagOutput, "output", "", "Log file path (default: daily file under logs/)")
	cmd.Flags().StringVar(&flagFormat, "format", "", "Report format: table, json, csv")
	cmd.Flags().StringVar(&flagLanguagesFile, "languages-file", "", "JSON or YAML file selecting the standard's languages")
	cmd.Flags().StringVar(&flagAPIURL, "api-url", "", "Codacy API base URL (overrides config)")
	cmd.Flags().StringVar(&flagAPIToken, "api-token", "", "Codacy API token (overrides config)")
	_ = cmd.MarkFlagRequired("project-name")

	return cmd
}

func runCreate(cmd *cobra.Command, projectName string, dryRun, verbose, quiet bool, logPath, format, languagesFile, apiURL, apiToken string) error {
	start := time.Now()
	runID := audit.NewRunID()

	overrides := map[string]interface{}{}
	if apiURL != "" {
		overrides["api-url"] = apiURL
	}
	if apiToken != "" {
		overrides["api-token"] = apiToken
	}
	if format != "" {
		overrides["format"] = format
	}
	if verbose {
		overrides["verbose"] = true
	}
	if quiet {
		overrides["quiet"] = true
	}

	cfg, err := config.LoadWithFlags(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := validateFormat(cfg.OutputFormat); err != nil {
		return err
	}

	var languages []string
	if languagesFile != "" {
		languages, err = ParseLanguagesFile(languagesFile)
		if err != nil {
			return err
		}
	}

	level := cfg.LogLevel
	if cfg.Quiet {
		level = "error"
	}
	logger, logFile, err := logging.New(logging.Config{
		Level:      level,
		Verbose:    cfg.Verbose,
		FilePath:   logPath,
		ConsoleOut: cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer logFile.Close()

	logger = logger.With().Str("run_id", runID).Logger()
	logger.Debug().
		Str("api_url", cfg.APIURL).
		Str("provider", cfg.Provider).
		Str("organization", cfg.Organization).
		Bool("dry_run", dryRun).
		Msg("configuration loaded")

	ctx := cmd.Context()

	checker := health.NewChecker(time.Duration(cfg.HealthTimeout) * time.Second)
	if err := checker.Require(ctx, cfg.APIURL, cfg.APIToken); err != nil {
		return err
	}

	apiClient := codacy.New(codacy.Options{
		BaseURL:      cfg.APIURL,
		Provider:     cfg.Provider,
		Organization: cfg.Organization,
		Token:        cfg.APIToken,
		PageSize:     cfg.PageSize,
		Throttle:     client.ThrottleConfig{MutationDelay: time.Duration(cfg.MutationDelay) * time.Second},
		Logger:       logger,
	})

	var indicator *progress.Indicator
	if !cfg.Quiet {
		indicator = progress.NewIndicator(cmd.ErrOrStderr(), cfg.OutputFormat)
	}

	provisioner := provision.New(apiClient, logger, provision.Options{
		DryRun:    dryRun,
		Languages: languages,
		Progress:  indicator,
	})

	report, runErr := provisioner.Run(ctx, projectName)

	outcome := "success"
	if runErr != nil {
		outcome = "failure"
	}
	params := map[string]interface{}{
		"project-name": projectName,
		"organization": cfg.Organization,
		"provider":     cfg.Provider,
		"api-url":      cfg.APIURL,
		"api-token":    cfg.APIToken,
	}
	if report != nil {
		params["standard-id"] = report.StandardID
		params["tools-enabled"] = report.ToolsSucceeded
		params["patterns-disabled"] = report.PatternsDisabled
	}
	auditLogger := audit.NewLogger(cmd.ErrOrStderr())
	if err := auditLogger.LogOperation(runID, audit.Operation{
		Type:       "standard_create",
		Command:    cmd.CommandPath(),
		Parameters: params,
		Outcome:    outcome,
		DryRun:     dryRun,
		Duration:   time.Since(start),
		Error:      runErr,
	}); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to write audit log: %v\n", err)
	}

	if runErr != nil {
		logger.Error().Err(runErr).Msg("failed to create coding standard")
		return runErr
	}

	return renderCreateReport(cmd.OutOrStdout(), cfg.OutputFormat, report)
}

// validateFormat rejects formats no renderer exists for, before any
// network traffic happens.
func validateFormat(format string) error {
	switch format {
	case "table", "json", "csv":
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (expected table, json, or csv)", format)
	}
}

func renderCreateReport(w io.Writer, format string, report *provision.Report) error {
	switch format {
	case "json":
		summary := map[string]interface{}{
			"tools_total":       report.ToolsTotal,
			"tools_succeeded":   report.ToolsSucceeded,
			"tools_failed":      report.ToolsFailed,
			"tools_skipped":     report.ToolsSkipped,
			"patterns_disabled": report.PatternsDisabled,
		}
		return output.NewJSONFormatter(w).WriteSuccess("create", report, summary)
	case "csv":
		return writeReportCSV(w, report)
	default:
		return writeReportTable(w, report)
	}
}

func writeReportTable(w io.Writer, report *provision.Report) error {
	rows := [][]string{
		{"Standard", report.StandardName},
		{"Standard ID", report.StandardID},
		{"Dry run", strconv.FormatBool(report.DryRun)},
		{"Tools enabled", fmt.Sprintf("%d/%d", report.ToolsSucceeded, report.ToolsTotal)},
		{"Tools failed", strconv.Itoa(report.ToolsFailed)},
		{"Tools skipped", strconv.Itoa(report.ToolsSkipped)},
		{"Patterns disabled", strconv.Itoa(report.PatternsDisabled)},
		{"Update calls", strconv.Itoa(report.UpdateCalls)},
		{"Promoted", strconv.FormatBool(report.Promoted)},
		{"Duration", report.Duration},
	}
	if err := output.PrintTable(w, []string{"FIELD", "VALUE"}, rows); err != nil {
		return err
	}

	var failed [][]string
	for _, result := range report.Results {
		if result.Error != "" {
			failed = append(failed, []string{result.Name, result.Error})
		}
	}
	if len(failed) == 0 {
		return nil
	}
	fmt.Fprintln(w)
	return output.PrintTable(w, []string{"FAILED TOOL", "ERROR"}, failed)
}

func writeReportCSV(w io.Writer, report *provision.Report) error {
	formatter := output.NewCSVFormatter(w)
	metadata := map[string]string{
		"Standard":    report.StandardName,
		"Standard ID": report.StandardID,
		"Dry Run":     strconv.FormatBool(report.DryRun),
	}
	if err := formatter.WriteMetadata(metadata, []string{"Standard", "Standard ID", "Dry Run"}); err != nil {
		return err
	}
	if err := formatter.WriteHeader([]string{"uuid", "name", "patternsDisabled", "updateCalls", "skipped", "error"}); err != nil {
		return err
	}
	for _, result := range report.Results {
		row := []string{
			result.UUID,
			result.Name,
			strconv.Itoa(result.PatternsDisabled),
			strconv.Itoa(result.UpdateCalls),
			strconv.FormatBool(result.Skipped),
			result.Error,
		}
		if err := formatter.WriteRow(row); err != nil {
			return err
		}
	}
	return formatter.Flush()
}
