package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codacy-acme/basic-coding-standard/internal/client"
	"github.com/codacy-acme/basic-coding-standard/internal/client/codacy"
	"github.com/codacy-acme/basic-coding-standard/internal/config"
	"github.com/codacy-acme/basic-coding-standard/internal/health"
	"github.com/codacy-acme/basic-coding-standard/internal/output"
)

// StandardsCommand creates the standards command.
func StandardsCommand() *cobra.Command {
	var (
		flagFormat   string
		flagAPIURL   string
		flagAPIToken string
	)

	cmd := &cobra.Command{
		Use:   "standards",
		Short: "List the organization's coding standards",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStandards(cmd, flagFormat, flagAPIURL, flagAPIToken)
		},
	}

	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format: table, json, csv")
	cmd.Flags().StringVar(&flagAPIURL, "api-url", "", "Codacy API base URL (overrides config)")
	cmd.Flags().StringVar(&flagAPIToken, "api-token", "", "Codacy API token (overrides config)")

	return cmd
}

func runStandards(cmd *cobra.Command, format, apiURL, apiToken string) error {
	cfg, err := loadListConfig(format, apiURL, apiToken)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	checker := health.NewChecker(time.Duration(cfg.HealthTimeout) * time.Second)
	if err := checker.Require(ctx, cfg.APIURL, cfg.APIToken); err != nil {
		return err
	}

	standards, err := newListClient(cfg).ListCodingStandards(ctx)
	if err != nil {
		return fmt.Errorf("list coding standards: %w", err)
	}

	return renderStandards(cmd.OutOrStdout(), cfg.OutputFormat, standards)
}

// loadListConfig loads configuration for the read-only listing commands.
func loadListConfig(format, apiURL, apiToken string) (*config.Config, error) {
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

	cfg, err := config.LoadWithFlags(overrides)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateFormat(cfg.OutputFormat); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newListClient builds an API client for the listing commands. They never
// mutate, so no throttle or file logging is attached.
func newListClient(cfg *config.Config) *codacy.Client {
	return codacy.New(codacy.Options{
		BaseURL:      cfg.APIURL,
		Provider:     cfg.Provider,
		Organization: cfg.Organization,
		Token:        cfg.APIToken,
		PageSize:     cfg.PageSize,
		Throttle:     client.ThrottleConfig{},
		Logger:       zerolog.Nop(),
	})
}

func renderStandards(w io.Writer, format string, standards []codacy.CodingStandard) error {
	switch format {
	case "json":
		summary := map[string]interface{}{"count": len(standards)}
		return output.NewJSONFormatter(w).WriteSuccess("standards", standards, summary)
	case "csv":
		formatter := output.NewCSVFormatter(w)
		if err := formatter.WriteHeader([]string{"id", "name", "languages", "isDraft", "isDefault"}); err != nil {
			return err
		}
		for _, standard := range standards {
			row := []string{
				standard.ID,
				standard.Name,
				strings.Join(standard.Languages, ";"),
				strconv.FormatBool(standard.IsDraft),
				strconv.FormatBool(standard.IsDefault),
			}
			if err := formatter.WriteRow(row); err != nil {
				return err
			}
		}
		return formatter.Flush()
	default:
		rows := make([][]string, 0, len(standards))
		for _, standard := range standards {
			rows = append(rows, []string{
				standard.ID,
				standard.Name,
				strconv.Itoa(len(standard.Languages)),
				strconv.FormatBool(standard.IsDraft),
				strconv.FormatBool(standard.IsDefault),
			})
		}
		return output.PrintTable(w, []string{"ID", "NAME", "LANGUAGES", "DRAFT", "DEFAULT"}, rows)
	}
}
