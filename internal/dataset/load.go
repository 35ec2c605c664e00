package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/rshade/gridpage/internal/logging"
)

// Format identifies a dataset file encoding.
type Format string

// Supported dataset encodings.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// maxConcurrentLoads bounds the number of files read at once by LoadAll.
const maxConcurrentLoads = 8

// Loading errors.
var (
	ErrUnsupportedFormat = errors.New("unsupported dataset format")
	ErrMissingID         = errors.New("row is missing an id")
	ErrNoInput           = errors.New("no dataset files given")
)

// FormatFromPath picks the encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

// Parse decodes an array of rows. Every row must carry an id.
func Parse(ctx context.Context, data []byte, format Format) ([]Row, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "dataset").
		Str("operation", "parse").
		Str("format", string(format)).
		Int("data_size_bytes", len(data)).
		Msg("parsing dataset")

	var rows []Row
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&rows); err != nil {
			return nil, fmt.Errorf("parsing dataset JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("parsing dataset YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	for i, r := range rows {
		if r.ID() == "" {
			return nil, fmt.Errorf("%w: row %d", ErrMissingID, i)
		}
	}

	log.Debug().
		Str("component", "dataset").
		Int("row_count", len(rows)).
		Msg("dataset parsed successfully")

	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// Load reads and parses the dataset file at path.
func Load(ctx context.Context, path string) ([]Row, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("component", "dataset").
		Str("operation", "load").
		Str("path", path).
		Msg("loading dataset")

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error().
			Str("component", "dataset").
			Err(err).
			Str("path", path).
			Msg("failed to read dataset file")
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}

	rows, err := Parse(ctx, data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// LoadAll loads every path concurrently and concatenates the rows in argument
// order. The first failure cancels the remaining loads.
func LoadAll(ctx context.Context, paths []string) ([]Row, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}

	results := make([][]Row, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)

	for i, p := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			rows, err := Load(gCtx, p)
			if err != nil {
				return err
			}
			results[i] = rows
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	all := make([]Row, 0, total)
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}
