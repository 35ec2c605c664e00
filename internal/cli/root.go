package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/gridpage/internal/config"
	"github.com/rshade/gridpage/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the gridpage CLI.
// It wires up project config resolution, logging and tracing, and the
// page, window, browse and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "gridpage",
		Short:         "Paginate tabular data from the command line",
		Long:          "gridpage: page through JSON and YAML row sets, print page windows, or browse them interactively",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			resolveProjectConfig(cmd)
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("project-dir", "", "project directory holding .gridpage/config.yaml")
	cmd.AddCommand(NewPageCmd(), NewWindowCmd(), NewBrowseCmd(), newConfigCmd())

	return cmd
}

// resolveProjectConfig locates the project .gridpage directory and, when one
// exists, replaces the global config with the merged project config.
func resolveProjectConfig(cmd *cobra.Command) {
	flagValue, _ := cmd.Flags().GetString("project-dir")
	cwd, err := os.Getwd()
	if err != nil {
		cwd = ""
	}

	projectDir := config.ResolveProjectDir(cmd.Context(), flagValue, cwd)
	config.SetResolvedProjectDir(projectDir)
	if projectDir != "" {
		config.SetGlobalConfig(config.NewWithProjectDir(cmd.Context(), projectDir))
	}
}

const rootCmdExample = `  # Show page 2 of a JSON row set, 10 rows per page
  gridpage page rows.json --page 2 --page-size 10

  # Print the page as JSON with its paging state
  gridpage page rows.json --page 3 -o json

  # Treat a file as one page of a 1,234-item server-side result
  gridpage page page7.json --server-side --total-items 1234 --page 7 --page-size 25

  # Print the page-number window for page 8 of 20
  gridpage window --total-items 200 --page 8

  # Browse generated rows interactively
  gridpage browse --generate 500

  # Initialize configuration
  gridpage config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
