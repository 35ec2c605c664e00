package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/gridpage/internal/config"
	"github.com/rshade/gridpage/internal/dataset"
	"github.com/rshade/gridpage/internal/logging"
)

// ErrInputConflict is returned when files and --generate are both given.
var ErrInputConflict = errors.New("dataset files and --generate are mutually exclusive")

// inputFlags selects where rows come from.
type inputFlags struct {
	generate int
}

func (f *inputFlags) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.generate, "generate", 0, "generate N synthetic rows instead of reading files")
}

// loadRows reads the dataset files in paths, or generates rows when
// --generate was set.
func (f *inputFlags) loadRows(ctx context.Context, paths []string) ([]dataset.Row, error) {
	log := logging.FromContext(ctx)

	switch {
	case f.generate < 0:
		return nil, fmt.Errorf("--generate must be non-negative, got %d", f.generate)
	case f.generate > 0 && len(paths) > 0:
		return nil, ErrInputConflict
	case f.generate > 0:
		log.Debug().Str("component", "cli").Int("rows", f.generate).Msg("generating rows")
		return dataset.Generate(f.generate), nil
	}

	rows, err := dataset.LoadAll(ctx, paths)
	if err != nil {
		return nil, fmt.Errorf("loading rows: %w", err)
	}
	log.Debug().
		Str("component", "cli").
		Int("files", len(paths)).
		Int("rows", len(rows)).
		Msg("rows loaded")
	return rows, nil
}

// applyConfigDefaults fills page size and output from the configuration when
// the corresponding flags were not given.
func applyConfigDefaults(cmd *cobra.Command, pageSize *int, output *string) {
	if pageSize != nil && !cmd.Flags().Changed("page-size") {
		*pageSize = config.GetDefaultPageSize()
	}
	if output != nil {
		*output = config.GetOutputFormat(*output)
	}
}
