package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/clan-sim/clan-sim/sim/trace"
)

// DefaultBlockSlowdown scales the time per unit of a blockaded mine after its
// grace request.
const DefaultBlockSlowdown = 0.7

// Status report layouts understood by the CLI.
const (
	StatusFormatLine  = "line"
	StatusFormatTable = "table"
)

// Config holds run-level settings, loadable from a YAML file.
type Config struct {
	// BlockSlowdown multiplies the rate (time per unit) of penalized
	// extractions. Must be positive.
	BlockSlowdown float64 `yaml:"block_slowdown"`
	TraceLevel    string  `yaml:"trace_level"`
	StatusFormat  string  `yaml:"status_format"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		BlockSlowdown: DefaultBlockSlowdown,
		TraceLevel:    string(trace.TraceLevelNone),
		StatusFormat:  StatusFormatLine,
	}
}

// LoadConfig reads a YAML run configuration. Keys missing from the file keep
// their defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading run config: %w", err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing run config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges and names.
func (c Config) Validate() error {
	if c.BlockSlowdown <= 0 {
		return fmt.Errorf("block_slowdown must be positive, got %g", c.BlockSlowdown)
	}
	if !trace.IsValidTraceLevel(c.TraceLevel) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	switch c.StatusFormat {
	case "", StatusFormatLine, StatusFormatTable:
	default:
		return fmt.Errorf("unknown status format %q", c.StatusFormat)
	}
	return nil
}
