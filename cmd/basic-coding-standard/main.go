// Command basic-coding-standard provisions Codacy coding standards.
//
// Purpose:
//
//	This binary automates the full coding standard setup for an
//	organization: create a draft standard covering all languages, enable
//	every analysis tool, disable info and minor severity patterns,
//	promote the draft, and set it as the organization default. All
//	operations support dry-run and structured output (table/JSON/CSV).
//
// Dependencies:
//   - internal/commands: Cobra command implementations
//   - internal/config: Configuration loading from environment/config files
//
// Key Responsibilities:
//   - Initialize the CLI root command with Cobra
//   - Register subcommands (create, standards, tools)
//   - Map failures to a non-zero exit code
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codacy-acme/basic-coding-standard/internal/commands"
)

var (
	version   = "dev"
	buildTime = "unknown"
	gitCommit = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "basic-coding-standard",
		Short: "Provision Codacy coding standards",
		Long: `basic-coding-standard automates the full coding standard setup for an
organization: it creates a draft standard, enables every analysis tool,
disables low-severity patterns, promotes the draft, and sets it as the
organization default.`,
		Version:       fmt.Sprintf("%s (built %s, commit %s)", version, buildTime, gitCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.CreateCommand())
	rootCmd.AddCommand(commands.StandardsCommand())
	rootCmd.AddCommand(commands.ToolsCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
