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
	"fmt"
	"strings"

	"github.com/ianlewis/go-espdic/match"
)

// Validate checks the loaded configuration and fills in parsed fields.
// Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

func (s *SearchConfig) validate() error {
	m, err := match.ParseMode(s.Match)
	if err != nil {
		return fmt.Errorf("match: %w", err)
	}
	s.Mode = m
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("level must be one of debug, info, warn or error (got %q)", l.Level)
	}

	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "text", "json":
	default:
		return fmt.Errorf("format must be text or json (got %q)", l.Format)
	}
	return nil
}
