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

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-espdic"
	"github.com/ianlewis/go-espdic/fetch"
	"github.com/ianlewis/go-espdic/internal/config"
	"github.com/ianlewis/go-espdic/match"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error, including
	// an unavailable dictionary.
	ExitCodeUnknownError
)

// dictFile is the dictionary file name in the data directory.
const dictFile = "ESPDIC.txt"

// ErrVortsercxilo is a parent error for all command errors.
var ErrVortsercxilo = errors.New("vortsercxilo")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrVortsercxilo)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but we don't use commands.
	//
	// This is done because `vortsercxilo --help hundo` would display a
	// "command hundo not found" error instead of the help.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

// exitCode returns the process exit code for an error returned by the app.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitCodeSuccess
	case errors.Is(err, ErrFlagParse), errors.Is(err, match.ErrInvalidMatchMode):
		return ExitCodeFlagParseError
	default:
		return ExitCodeUnknownError
	}
}

func newVortsercxiloApp() *cli.App {
	return &cli.App{
		Name:      filepath.Base(os.Args[0]),
		Usage:     "Search the ESPDIC Esperanto-English dictionary.",
		ArgsUsage: "WORD...",
		Description: strings.Join([]string{
			"Esperanto-English dictionary lookup written in Go.",
			"The dictionary is downloaded on first use.",
			"http://github.com/ianlewis/go-espdic",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "match",
				Usage:   "match headwords by `MODE` (" + strings.Join(match.ModeNames(), ", ") + ")",
				Aliases: []string{"m"},
				Value:   match.Start.String(),
			},
			&cli.BoolFlag{
				Name:               "roots",
				Usage:              "strip affixes from each word before searching",
				Aliases:            []string{"r"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "x-system",
				Usage:              "accept x-system input (e.g. cx for ĉ)",
				Aliases:            []string{"x"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "table",
				Usage:              "print results as a table",
				Aliases:            []string{"t"},
				DisableDefaultText: true,
			},
			&cli.StringFlag{
				Name:    "dictionary",
				Usage:   "read the dictionary from `PATH`",
				Aliases: []string{"d"},
				Value:   defaultDictionaryPath(),
			},
			&cli.StringFlag{
				Name:  "url",
				Usage: "download the dictionary from `URL` if missing",
				Value: fetch.DefaultURL,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL` (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log `FORMAT` (text, json)",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		},
		Action: func(c *cli.Context) error {
			if c.Bool("help") {
				check(cli.ShowAppHelp(c))
				return nil
			}
			if c.Bool("version") {
				return printVersion(c)
			}
			return search(c)
		},
	}
}

func printVersion(c *cli.Context) error {
	info := version.GetVersionInfo()
	_, err := fmt.Fprintln(c.App.Writer, info.String())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVortsercxilo, err)
	}
	return nil
}

// options merges the loaded config with the command line flags. Flags that
// were set explicitly take precedence.
func options(c *cli.Context, cfg *config.Config) (*espdic.SearchOptions, error) {
	if c.IsSet("match") {
		cfg.Search.Match = c.String("match")
	}
	if c.IsSet("x-system") {
		cfg.Search.XSystem = c.Bool("x-system")
	}
	if c.IsSet("dictionary") || cfg.Dictionary.Path == "" {
		cfg.Dictionary.Path = c.String("dictionary")
	}
	if c.IsSet("url") {
		cfg.Dictionary.URL = c.String("url")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("log-format") {
		cfg.Log.Format = c.String("log-format")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}

	return &espdic.SearchOptions{
		Mode:      cfg.Search.Mode,
		RootsOnly: c.Bool("roots"),
		XSystem:   cfg.Search.XSystem,
	}, nil
}

func search(c *cli.Context) error {
	words := c.Args().Slice()
	if len(words) == 0 {
		return fmt.Errorf("%w: missing WORD argument", ErrFlagParse)
	}

	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrVortsercxilo, err)
	}

	// The match mode is validated before the dictionary is touched.
	opts, err := options(c, cfg)
	if err != nil {
		return err
	}

	log := newLogger(cfg.Log, c.App.ErrWriter)
	log.Debug("searching",
		"words", words,
		"mode", opts.Mode.String(),
		"roots", opts.RootsOnly,
		"dictionary", cfg.Dictionary.Path,
	)

	fetchOpts := *fetch.DefaultOptions
	fetchOpts.URL = cfg.Dictionary.URL
	fetchOpts.Logger = log
	if err := fetch.Ensure(c.Context, cfg.Dictionary.Path, &fetchOpts); err != nil {
		return fmt.Errorf("%w: %w", ErrVortsercxilo, err)
	}

	d, err := espdic.Open(cfg.Dictionary.Path)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrVortsercxilo, fetch.ErrDictionaryUnavailable, err)
	}
	log.Debug("loaded dictionary", "lines", d.Len())

	var p printer = &plainPrinter{w: c.App.Writer}
	if c.Bool("table") {
		p = &tablePrinter{w: c.App.Writer, grouped: len(words) > 1}
	}

	// Results are printed as each word is searched so output for earlier
	// words is kept if a later word fails.
	for _, w := range words {
		res, err := d.Search(w, opts)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrVortsercxilo, err)
		}
		if res.Root != w {
			log.Debug("normalized query", "query", w, "root", res.Root)
		}
		if err := p.Print(res); err != nil {
			return fmt.Errorf("%w: writing output: %w", ErrVortsercxilo, err)
		}
	}

	return nil
}
