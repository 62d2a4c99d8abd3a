package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/ershov-z/stageflow/pkg/errors"
	"github.com/ershov-z/stageflow/pkg/schedule"
)

// fileConfig is the shape of an optional stageflow.toml:
//
//	[schedule]
//	max_filler_budget = 3
//	lead_anchors = 2
//	trail_anchors = 4
//	filler_hosts = ["Пушкин", "Исаев"]
//	variants = 5
//
//	[output]
//	path = "arrangements.json"
//
// Unset fields keep the schedule package defaults; command-line flags
// override file values.
type fileConfig struct {
	Schedule schedule.Config `toml:"schedule"`
	Output   outputConfig    `toml:"output"`
}

type outputConfig struct {
	Path string `toml:"path"`
}

// loadConfig reads a TOML config file. An empty path returns the zero
// config, which normalizes to all defaults downstream.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}
