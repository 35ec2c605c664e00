package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/gridpage/internal/config"
)

var errShowFormat = errors.New("output must be yaml or json")

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file, project and environment overrides.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Example: `  # Effective configuration as YAML
  gridpage config show

  # As JSON
  gridpage config show -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			w := cmd.OutOrStdout()

			switch output {
			case config.OutputJSON:
				return renderJSON(w, cfg)
			case config.OutputYAML, "":
				if path := cfg.ConfigPath(); path != "" {
					fmt.Fprintf(w, "# %s\n", path)
				}
				return renderYAML(w, cfg)
			default:
				return fmt.Errorf("%w: got %q", errShowFormat, output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", config.OutputYAML, "output format: yaml, json")

	return cmd
}
