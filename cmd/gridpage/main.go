// Command gridpage pages through tabular data from the command line.
package main

import (
	"errors"
	"os"

	"github.com/rshade/gridpage/internal/cli"
	"github.com/rshade/gridpage/internal/cli/pagination"
	"github.com/rshade/gridpage/internal/dataset"
	"github.com/rshade/gridpage/pkg/version"
)

// Exit codes returned by the binary.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// usageErrors are input mistakes the user can fix by changing arguments.
//
//nolint:gochecknoglobals // Read-only lookup table.
var usageErrors = []error{
	pagination.ErrInvalidPage,
	pagination.ErrInvalidPageSize,
	pagination.ErrInvalidOffset,
	pagination.ErrInvalidTotalItems,
	pagination.ErrMixedPaginationModes,
	pagination.ErrTotalItemsClientMode,
	pagination.ErrMissingTotalItems,
	pagination.ErrInvalidOutput,
	cli.ErrInputConflict,
	cli.ErrInvalidView,
	dataset.ErrNoInput,
	dataset.ErrUnsupportedFormat,
}

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

// exitCode maps a command error onto the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	for _, target := range usageErrors {
		if errors.Is(err, target) {
			return exitUsage
		}
	}
	return exitError
}

func main() {
	os.Exit(exitCode(run()))
}
