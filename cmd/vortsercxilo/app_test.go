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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-espdic/fetch"
	"github.com/ianlewis/go-espdic/internal/config"
	"github.com/ianlewis/go-espdic/internal/testutil"
	"github.com/ianlewis/go-espdic/match"
)

var testLines = []string{
	"hundo : dog",
	"hundido : puppy",
	"ĉashundo : hunting dog",
	"kato : cat, puss &amp; boots",
	"katido : kitten",
	"ĉambro : room, chamber",
}

type result struct {
	stdout string
	stderr string
	err    error
	code   int
}

// runApp runs the command with args. The user config directory is isolated
// so that a developer's config does not affect the test.
func runApp(t *testing.T, args ...string) result {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	app := newVortsercxiloApp()
	app.Writer = &stdout
	app.ErrWriter = &stderr

	err := app.RunContext(context.Background(), append([]string{"vortsercxilo"}, args...))
	return result{
		stdout: stdout.String(),
		stderr: stderr.String(),
		err:    err,
		code:   exitCode(err),
	}
}

// noFetchServer fails the test if a download is attempted.
func noFetchServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("unexpected dictionary download")
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestApp_search(t *testing.T) {
	path := testutil.WriteDict(t, testLines, testutil.None)
	srv := noFetchServer(t)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "default start match",
			args:     []string{"hund"},
			expected: "hundo : dog\nhundido : puppy\n",
		},
		{
			name:     "multiple words in argument order",
			args:     []string{"kat", "hundo"},
			expected: "kato : cat, puss &amp; boots\nkatido : kitten\nhundo : dog\n",
		},
		{
			name:     "exact",
			args:     []string{"--match", "exact", "hund"},
			expected: "",
		},
		{
			name:     "end",
			args:     []string{"-m", "end", "hundo"},
			expected: "ĉashundo : hunting dog\n",
		},
		{
			name:     "anywhere",
			args:     []string{"-m", "anywhere", "hund"},
			expected: "hundo : dog\nhundido : puppy\nĉashundo : hunting dog\n",
		},
		{
			name:     "roots",
			args:     []string{"--roots", "katidoj"},
			expected: "kato : cat, puss &amp; boots\nkatido : kitten\n",
		},
		{
			name:     "roots start",
			args:     []string{"-r", "hundido"},
			expected: "hundo : dog\nhundido : puppy\n",
		},
		{
			name:     "x-system",
			args:     []string{"-x", "-m", "exact", "cxambro"},
			expected: "ĉambro : room, chamber\n",
		},
		{
			name:     "mode case insensitive",
			args:     []string{"-m", "EXACT", "kato"},
			expected: "kato : cat, puss &amp; boots\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			args := append([]string{"-d", path, "--url", srv.URL}, test.args...)
			res := runApp(t, args...)
			if res.err != nil {
				t.Fatalf("run: %v", res.err)
			}
			if diff := cmp.Diff(test.expected, res.stdout); diff != "" {
				t.Errorf("stdout (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestApp_compressed(t *testing.T) {
	srv := noFetchServer(t)

	for _, c := range []testutil.Compression{testutil.Gzip, testutil.DictZip} {
		t.Run(c.Ext(), func(t *testing.T) {
			path := testutil.WriteDict(t, testLines, c)

			res := runApp(t, "-d", path, "--url", srv.URL, "-m", "exact", "hundo")
			if res.err != nil {
				t.Fatalf("run: %v", res.err)
			}
			if diff := cmp.Diff("hundo : dog\n", res.stdout); diff != "" {
				t.Errorf("stdout (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestApp_table(t *testing.T) {
	path := testutil.WriteDict(t, testLines, testutil.None)
	srv := noFetchServer(t)

	res := runApp(t, "-d", path, "--url", srv.URL, "--table", "kato", "birdo")
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}

	for _, want := range []string{"kato:", "birdo:", "Headword", "Glosses", "cat, puss & boots"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, res.stdout)
		}
	}
	if strings.Contains(res.stdout, "&amp;") {
		t.Errorf("stdout contains undecoded entity:\n%s", res.stdout)
	}
}

func TestApp_tableSingleWord(t *testing.T) {
	path := testutil.WriteDict(t, testLines, testutil.None)
	srv := noFetchServer(t)

	res := runApp(t, "-d", path, "--url", srv.URL, "-t", "hundo")
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	if strings.Contains(res.stdout, "hundo:") {
		t.Errorf("single word output has a group header:\n%s", res.stdout)
	}
	if !strings.Contains(res.stdout, "dog") {
		t.Errorf("stdout missing entry:\n%s", res.stdout)
	}
}

func TestApp_download(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(testutil.MakeDict(testLines))
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "data", dictFile)

	res := runApp(t, "-d", path, "--url", srv.URL, "-m", "exact", "kato")
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	if diff := cmp.Diff("kato : cat, puss &amp; boots\n", res.stdout); diff != "" {
		t.Errorf("stdout (-want, +got):\n%s", diff)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("dictionary not cached: %v", err)
	}
}

func TestApp_unavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	res := runApp(t, "-d", filepath.Join(t.TempDir(), dictFile), "--url", srv.URL, "hundo")
	if !errors.Is(res.err, fetch.ErrDictionaryUnavailable) {
		t.Fatalf("run: got %v, want %v", res.err, fetch.ErrDictionaryUnavailable)
	}
	if got, want := res.code, ExitCodeUnknownError; got != want {
		t.Errorf("exit code: got %d, want %d", got, want)
	}
	if res.stdout != "" {
		t.Errorf("unexpected output: %q", res.stdout)
	}
}

func TestApp_usageErrors(t *testing.T) {
	srv := noFetchServer(t)
	missing := filepath.Join(t.TempDir(), dictFile)

	tests := []struct {
		name string
		args []string
		is   error
	}{
		{
			name: "invalid match mode",
			args: []string{"-m", "fuzzy", "hundo"},
			is:   match.ErrInvalidMatchMode,
		},
		{
			name: "no words",
			args: []string{},
			is:   ErrFlagParse,
		},
		{
			name: "unknown flag",
			args: []string{"--fuzzy", "hundo"},
			is:   ErrFlagParse,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			// The dictionary does not exist and must not be downloaded.
			args := append([]string{"-d", missing, "--url", srv.URL}, test.args...)
			res := runApp(t, args...)
			if !errors.Is(res.err, test.is) {
				t.Fatalf("run: got %v, want %v", res.err, test.is)
			}
			if got, want := res.code, ExitCodeFlagParseError; got != want {
				t.Errorf("exit code: got %d, want %d", got, want)
			}
		})
	}
}

func TestApp_config(t *testing.T) {
	path := testutil.WriteDict(t, testLines, testutil.None)
	srv := noFetchServer(t)

	t.Setenv("VORTSERCXILO_MATCH", "exact")
	t.Setenv("VORTSERCXILO_DICTIONARY", path)
	t.Setenv("VORTSERCXILO_URL", srv.URL)

	res := runApp(t, "hund", "hundo")
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	if diff := cmp.Diff("hundo : dog\n", res.stdout); diff != "" {
		t.Errorf("stdout (-want, +got):\n%s", diff)
	}

	// Flags override the config.
	res = runApp(t, "-m", "start", "hund")
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	if diff := cmp.Diff("hundo : dog\nhundido : puppy\n", res.stdout); diff != "" {
		t.Errorf("stdout (-want, +got):\n%s", diff)
	}
}

func TestApp_flagOverridesInvalidConfig(t *testing.T) {
	path := testutil.WriteDict(t, testLines, testutil.None)
	srv := noFetchServer(t)

	t.Setenv("VORTSERCXILO_MATCH", "fuzzy")
	t.Setenv("VORTSERCXILO_LOG_FORMAT", "xml")

	res := runApp(t, "--match", "exact", "--log-format", "text", "-d", path, "--url", srv.URL, "hundo")
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	if diff := cmp.Diff("hundo : dog\n", res.stdout); diff != "" {
		t.Errorf("stdout (-want, +got):\n%s", diff)
	}

	// Without the flag the invalid config value is rejected.
	res = runApp(t, "-d", path, "--url", srv.URL, "hundo")
	if !errors.Is(res.err, match.ErrInvalidMatchMode) {
		t.Fatalf("run: got %v, want %v", res.err, match.ErrInvalidMatchMode)
	}
	if got, want := res.code, ExitCodeFlagParseError; got != want {
		t.Errorf("exit code: got %d, want %d", got, want)
	}
}

func TestApp_debugLog(t *testing.T) {
	path := testutil.WriteDict(t, testLines, testutil.None)
	srv := noFetchServer(t)

	res := runApp(t, "-d", path, "--url", srv.URL, "--log-level", "debug", "--log-format", "json", "hundo")
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	if !strings.Contains(res.stderr, `"msg":"loaded dictionary"`) {
		t.Errorf("stderr missing debug log:\n%s", res.stderr)
	}
	if strings.Contains(res.stdout, "msg") {
		t.Errorf("log output written to stdout:\n%s", res.stdout)
	}
}

func TestApp_version(t *testing.T) {
	res := runApp(t, "--version")
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	if res.stdout == "" {
		t.Error("no version output")
	}
}

func TestApp_help(t *testing.T) {
	res := runApp(t, "--help")
	if res.err != nil {
		t.Fatalf("run: %v", res.err)
	}
	for _, want := range []string{"--match", "--roots", "--x-system", "--dictionary"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("help missing %q:\n%s", want, res.stdout)
		}
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err      error
		expected int
	}{
		{nil, ExitCodeSuccess},
		{ErrFlagParse, ExitCodeFlagParseError},
		{fmt.Errorf("%w: %w", ErrVortsercxilo, match.ErrInvalidMatchMode), ExitCodeFlagParseError},
		{fmt.Errorf("%w: %w", ErrVortsercxilo, fetch.ErrDictionaryUnavailable), ExitCodeUnknownError},
		{io.ErrUnexpectedEOF, ExitCodeUnknownError},
	}

	for _, test := range tests {
		if got := exitCode(test.err); got != test.expected {
			t.Errorf("exitCode(%v): got %d, want %d", test.err, got, test.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		" INFO ": slog.LevelInfo,
		"warn":   slog.LevelWarn,
		"error":  slog.LevelError,
		"":       slog.LevelWarn,
	}
	for s, want := range tests {
		if got := parseLevel(s); got != want {
			t.Errorf("parseLevel(%q): got %v, want %v", s, got, want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := newLogger(config.LogConfig{Level: "info", Format: "json"}, &buf)
	log.Debug("hidden")
	log.Info("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("debug message logged at info level:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `"msg":"shown"`) {
		t.Errorf("missing info message:\n%s", buf.String())
	}
}
