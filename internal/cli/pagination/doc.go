// Package pagination binds the gridpage paging flags to the engine.
//
// This package contains the CLI side of paging shared by the page, window and
// browse commands:
//   - Params: flag registration, validation and conversion to engine options
//   - Meta: the paging envelope printed alongside structured output
//
// The engine itself lives in pkg/pagination; this package only translates
// user input into calls on it.
package pagination
