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

// Package config loads the command configuration from an optional YAML file
// and the environment.
package config

import "github.com/ianlewis/go-espdic/match"

// Config is the command configuration.
type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Search     SearchConfig     `yaml:"search"`
	Log        LogConfig        `yaml:"log"`
}

// DictionaryConfig holds the dictionary location settings.
type DictionaryConfig struct {
	// Path is the local dictionary file. If empty the command uses its
	// per-OS default location.
	Path string `yaml:"path" env:"VORTSERCXILO_DICTIONARY"`
	URL  string `yaml:"url"  env:"VORTSERCXILO_URL"        env-default:"http://www.denisowski.org/Esperanto/ESPDIC/espdic.txt"`
}

// SearchConfig holds default search settings.
type SearchConfig struct {
	Match   string `yaml:"match"    env:"VORTSERCXILO_MATCH"    env-default:"start"`
	XSystem bool   `yaml:"x_system" env:"VORTSERCXILO_X_SYSTEM" env-default:"false"`

	// Mode is parsed from Match during validation.
	Mode match.Mode `yaml:"-" env:"-"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"VORTSERCXILO_LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"VORTSERCXILO_LOG_FORMAT" env-default:"text"`
}
