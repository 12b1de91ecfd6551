package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	BasePath      string // checked-out base revision of the node repository
	CandidatePath string // checked-out candidate (PR) revision

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.BasePath == "" {
		return nil, errors.New("BasePath is a required configuration field and cannot be empty")
	}
	if cfg.CandidatePath == "" {
		return nil, errors.New("CandidatePath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
