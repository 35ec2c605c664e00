package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// Defaults for a fresh configuration.
const (
	CurrentSchemaVersion = "1.0.0"
	DefaultPageSize      = 10
	MaxPageSize          = 1000
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	configFileName       = "config.yaml"
	supportedSchemaRange = "^1.0.0"
)

// Output formats understood by the CLI.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// Validation errors.
var (
	ErrInvalidPageSize       = fmt.Errorf("page_size must be between 1 and %d", MaxPageSize)
	ErrInvalidPageSizeOption = errors.New("page_size_options entries must be positive")
	ErrInvalidOutputFormat   = errors.New("output format must be one of table, json, yaml")
	ErrUnsupportedSchema     = errors.New("unsupported config schema_version")
)

// Config is the gridpage configuration file.
type Config struct {
	SchemaVersion string           `json:"schema_version" yaml:"schema_version"`
	Pagination    PaginationConfig `json:"pagination"     yaml:"pagination"`
	Output        OutputConfig     `json:"output"         yaml:"output"`
	Logging       LoggingConfig    `json:"logging"        yaml:"logging"`

	configPath string
}

// PaginationConfig holds engine defaults applied by the CLI and TUI.
type PaginationConfig struct {
	PageSize int `json:"page_size" yaml:"page_size"`
	// PageSizeOptions are the sizes the interactive grid cycles through.
	PageSizeOptions []int `json:"page_size_options" yaml:"page_size_options"`
}

// OutputConfig controls non-interactive rendering.
type OutputConfig struct {
	DefaultFormat string `json:"default_format" yaml:"default_format"`
}

// defaultPageSizeOptions returns the sizes offered by the grid page-size control.
func defaultPageSizeOptions() []int {
	return []int{10, 25, 50, 100} //nolint:mnd // Conventional page-size choices.
}

// Defaults returns a Config populated with built-in defaults only.
func Defaults() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Pagination: PaginationConfig{
			PageSize:        DefaultPageSize,
			PageSizeOptions: defaultPageSizeOptions(),
		},
		Output: OutputConfig{
			DefaultFormat: OutputTable,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// New returns the effective configuration: defaults, then the user config
// file when present, then environment overrides. A config file that fails to
// parse is logged and ignored.
func New() *Config {
	cfg := Defaults()

	dir, err := GetConfigDir()
	if err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
		if _, statErr := os.Stat(cfg.configPath); statErr == nil {
			if loadErr := cfg.Load(cfg.configPath); loadErr != nil {
				logger := GetLogger()
				logger.Warn().
					Str("component", "config").
					Err(loadErr).
					Str("path", cfg.configPath).
					Msg("failed to load config file, using defaults")
				path := cfg.configPath
				cfg = Defaults()
				cfg.configPath = path
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg
}

// Load reads path and unmarshals it on top of the current values.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Save writes the configuration to ConfigPath, creating its directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		dir, err := GetConfigDir()
		if err != nil {
			return err
		}
		c.configPath = filepath.Join(dir, configFileName)
	}

	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}

// ConfigPath returns the file this configuration is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath overrides the file used by Save.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Validate checks the configuration for values the CLI cannot use.
func (c *Config) Validate() error {
	if err := validateSchemaVersion(c.SchemaVersion); err != nil {
		return err
	}

	if c.Pagination.PageSize < 1 || c.Pagination.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.Pagination.PageSize)
	}

	for _, size := range c.Pagination.PageSizeOptions {
		if size < 1 || size > MaxPageSize {
			return fmt.Errorf("%w: got %d", ErrInvalidPageSizeOption, size)
		}
	}

	if !IsValidOutputFormat(c.Output.DefaultFormat) {
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}

	return nil
}

// PageSizeOptions returns the configured page-size choices, sorted, with the
// default page size included.
func (c *Config) PageSizeOptions() []int {
	opts := slices.Clone(c.Pagination.PageSizeOptions)
	if len(opts) == 0 {
		opts = defaultPageSizeOptions()
	}
	if c.Pagination.PageSize > 0 && !slices.Contains(opts, c.Pagination.PageSize) {
		opts = append(opts, c.Pagination.PageSize)
	}
	slices.Sort(opts)
	return slices.Compact(opts)
}

// IsValidOutputFormat reports whether format is a supported output format.
func IsValidOutputFormat(format string) bool {
	switch format {
	case OutputTable, OutputJSON, OutputYAML:
		return true
	default:
		return false
	}
}

// validateSchemaVersion checks version against the supported schema range.
// An empty version is accepted as the current one.
func validateSchemaVersion(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, version, err)
	}

	constraint, err := semver.NewConstraint(supportedSchemaRange)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, version, supportedSchemaRange)
	}
	return nil
}

// applyEnvOverrides applies GRIDPAGE_* environment variables. Unparseable
// values are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GRIDPAGE_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Pagination.PageSize = n
		}
	}
	if v := os.Getenv("GRIDPAGE_OUTPUT"); v != "" && IsValidOutputFormat(v) {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv("GRIDPAGE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("GRIDPAGE_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}
