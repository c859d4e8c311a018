// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv is the environment variable holding an explicit config file path.
const PathEnv = "VORTSERCXILO_CONFIG"

// ErrConfig is the parent error for all configuration errors.
var ErrConfig = errors.New("config")

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
//
// The YAML file path is taken from VORTSERCXILO_CONFIG, falling back to
// vortsercxilo/config.yaml in the user config directory. A missing file is
// only an error when the path was set explicitly.
func Load() (*Config, error) {
	return load(configPath())
}

// Read reads the configuration like [Load] but does not validate it. Callers
// that apply overrides, such as command line flags, must call
// [Config.Validate] once the overrides are applied.
func Read() (*Config, error) {
	return read(configPath())
}

// configPath returns the config file path and whether it was set explicitly.
func configPath() (string, bool) {
	if path := os.Getenv(PathEnv); path != "" {
		return path, true
	}
	return DefaultPath(), false
}

// DefaultPath returns the default config file location, or an empty string
// if the user config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, "vortsercxilo", "config.yaml")
}

func read(path string, explicit bool) (*Config, error) {
	var cfg Config

	_, statErr := os.Stat(path)
	switch {
	case path != "" && statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
		}
	case explicit:
		return nil, fmt.Errorf("%w: file %s: %w", ErrConfig, path, statErr)
	case statErr != nil && !errors.Is(statErr, fs.ErrNotExist) && path != "":
		return nil, fmt.Errorf("%w: file %s: %w", ErrConfig, path, statErr)
	default:
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%w: read env: %w", ErrConfig, err)
		}
	}

	return &cfg, nil
}

func load(path string, explicit bool) (*Config, error) {
	cfg, err := read(path, explicit)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: validate: %w", ErrConfig, err)
	}
	return cfg, nil
}
