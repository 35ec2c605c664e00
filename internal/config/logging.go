package config

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/gridpage/internal/logging"
)

// LoggingConfig is the logging section of the configuration file.
type LoggingConfig struct {
	Level  string `json:"level"          yaml:"level"`
	Format string `json:"format"         yaml:"format"`
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
}

// bootstrapLogger is used by the config package itself, before the CLI has
// built its own logger from the loaded configuration.
//
//nolint:gochecknoglobals // Package-level logger must exist before config is loaded.
var (
	bootstrapLogger   = newBootstrapLogger(zerolog.InfoLevel)
	bootstrapLoggerMu sync.RWMutex
)

func newBootstrapLogger(lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// GetLogger returns the config package logger.
func GetLogger() zerolog.Logger {
	bootstrapLoggerMu.RLock()
	defer bootstrapLoggerMu.RUnlock()
	return bootstrapLogger
}

// SetLogger replaces the config package logger, typically with the CLI's
// logger once logging has been set up.
func SetLogger(l zerolog.Logger) {
	bootstrapLoggerMu.Lock()
	defer bootstrapLoggerMu.Unlock()
	bootstrapLogger = l
}

// SetLogLevel changes the config package logger level. Unknown levels select
// info.
func SetLogLevel(level string) {
	bootstrapLoggerMu.Lock()
	defer bootstrapLoggerMu.Unlock()
	bootstrapLogger = bootstrapLogger.Level(logging.ParseLevel(level))
}

// ToLoggingConfig converts the file section into a logging.Config.
// A configured File switches output to the file; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: false,
	}
}

// GetLoggingConfig returns a copy of the global Logging section. Flag
// overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
