package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/codacy-acme/basic-coding-standard/internal/client/codacy"
	"github.com/codacy-acme/basic-coding-standard/internal/output"
)

// ToolsCommand creates the tools command.
func ToolsCommand() *cobra.Command {
	var (
		flagFormat   string
		flagAPIURL   string
		flagAPIToken string
	)

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the analysis tool catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTools(cmd, flagFormat, flagAPIURL, flagAPIToken)
		},
	}

	cmd.Flags().StringVar(&flagFormat, "format", "", "Output format: table, json, csv")
	cmd.Flags().StringVar(&flagAPIURL, "api-url", "", "Codacy API base URL (overrides config)")
	cmd.Flags().StringVar(&flagAPIToken, "api-token", "", "Codacy API token (overrides config)")

	return cmd
}

func runTools(cmd *cobra.Command, format, apiURL, apiToken string) error {
	cfg, err := loadListConfig(format, apiURL, apiToken)
	if err != nil {
		return err
	}

	tools, err := newListClient(cfg).ListTools(cmd.Context())
	if err != nil {
		return fmt.Errorf("list tools: %w", err)
	}

	return renderTools(cmd.OutOrStdout(), cfg.OutputFormat, tools)
}

func renderTools(w io.Writer, format string, tools []codacy.Tool) error {
	switch format {
	case "json":
		summary := map[string]interface{}{"count": len(tools)}
		return output.NewJSONFormatter(w).WriteSuccess("tools", tools, summary)
	case "csv":
		formatter := output.NewCSVFormatter(w)
		if err := formatter.WriteHeader([]string{"uuid", "name", "version"}); err != nil {
			return err
		}
		for _, tool := range tools {
			if err := formatter.WriteRow([]string{tool.UUID, tool.Name, tool.Version}); err != nil {
				return err
			}
		}
		return formatter.Flush()
	default:
		rows := make([][]string, 0, len(tools))
		for _, tool := range tools {
			rows = append(rows, []string{tool.UUID, tool.Name, tool.Version})
		}
		return output.PrintTable(w, []string{"UUID", "NAME", "VERSION"}, rows)
	}
}
