// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the sampler's configuration file. The file is
// optional and every value it holds can be overridden from the command line.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/rollout/pkg/rules/engines"
	"laptudirm.com/x/rollout/pkg/trial"
)

// DefaultTrials is the number of trials run when none is configured.
const DefaultTrials = 240000

// File is the path of the configuration file relative to the XDG
// configuration directories.
var File = filepath.Join("rollout", "config.yaml")

type Config struct {
	// Number of trials in the batch.
	Trials int `yaml:"trials"`

	// Number of workers running trials concurrently. Zero means one worker
	// per CPU.
	Workers int `yaml:"workers"`

	// Name of the rules engine to play the games with.
	Engine string `yaml:"engine"`

	// Number of actions after which a game is adjudicated as a draw.
	MaxActions int `yaml:"max-actions"`
}

// Default returns the configuration used when there is no file.
func Default() Config {
	return Config{
		Trials:     DefaultTrials,
		Workers:    0,
		Engine:     engines.Default,
		MaxActions: trial.DefaultMaxActions,
	}
}

// Load searches the XDG configuration directories for the configuration
// file and loads it. The default configuration is returned if no file
// exists.
func Load() (Config, error) {
	path, err := xdg.SearchConfigFile(File)
	if err != nil {
		return Default(), nil
	}

	return LoadFile(path)
}

// LoadFile loads the configuration file at the given path. Values missing
// from the file keep their defaults.
func LoadFile(path string) (Config, error) {
	config := Default()

	file, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}

	if err := yaml.Unmarshal(file, &config); err != nil {
		return config, fmt.Errorf("load config %s: %w", path, err)
	}

	return config, config.Validate()
}

// Validate checks that every value in the configuration is usable.
func (config *Config) Validate() error {
	switch {
	case config.Trials < 0:
		return errors.New("config: trials can't be negative")
	case config.Workers < 0:
		return errors.New("config: workers can't be negative")
	case config.MaxActions <= 0:
		return errors.New("config: max-actions must be positive")
	}

	if _, err := engines.Get(config.Engine); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}
