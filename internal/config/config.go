// Package config loads extraction settings from the environment.
// Values come from environment variables, optionally seeded from a .env
// file, with defaults for everything that is unset.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Input   InputConfig
	Output  OutputConfig
	Extract ExtractConfig
	Logging LoggingConfig
}

// InputConfig locates the source workbook.
type InputConfig struct {
	// DataDir is searched for the newest workbook when no path is given (default: data)
	DataDir string `env:"REM_DATA_DIR" default:"data"`

	// FilePattern is the glob matched inside DataDir
	FilePattern string `env:"REM_FILE_PATTERN" default:"tablas-relevamiento-expectativas-mercado-*.xlsx"`
}

// OutputConfig holds serialization settings.
type OutputConfig struct {
	// Dir receives the master file and one file per table (default: data)
	Dir string `env:"REM_OUTPUT_DIR" default:"data"`

	// MasterFile is the name of the file holding every table (default: rem_bloques.json)
	MasterFile string `env:"REM_MASTER_FILE" default:"rem_bloques.json"`

	// Pretty indents JSON output (default: true)
	Pretty bool `env:"REM_PRETTY" default:"true"`
}

// ExtractConfig tunes the extraction engine.
type ExtractConfig struct {
	// Sheets is a comma-separated list of sheets to process
	Sheets []string `env:"REM_SHEETS" default:"Cuadros de resultados,Resultados TOP 10"`

	// BlankThreshold is the blank-cell fraction that makes a row blank (default: 0.8)
	BlankThreshold float64 `env:"REM_BLANK_THRESHOLD" default:"0.8"`

	// Timeout bounds a whole run; 0 disables it (default: 0s)
	Timeout time.Duration `env:"REM_TIMEOUT" default:"0s"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	var errs []error

	if c.Extract.BlankThreshold <= 0 || c.Extract.BlankThreshold > 1 {
		errs = append(errs, fmt.Errorf("REM_BLANK_THRESHOLD must be in (0, 1], got %v", c.Extract.BlankThreshold))
	}
	if c.Extract.Timeout < 0 {
		errs = append(errs, fmt.Errorf("REM_TIMEOUT must not be negative, got %v", c.Extract.Timeout))
	}
	if len(c.Extract.Sheets) == 0 {
		errs = append(errs, errors.New("REM_SHEETS must name at least one sheet"))
	}
	if c.Output.MasterFile == "" {
		errs = append(errs, errors.New("REM_MASTER_FILE must not be empty"))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Logging.Format))
	}

	return errors.Join(errs...)
}
