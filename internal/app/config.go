package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	// ConfigPath is a matrix .hcl file or a directory of them.
	ConfigPath string

	// OutputPath overrides the derived output file name. "-" writes the
	// generated pipeline to standard output. Only valid for a single
	// input file.
	OutputPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it by pointer.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ConfigPath == "" {
		return nil, errors.New("ConfigPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
