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

// Package fetch makes sure a local copy of the dictionary exists, downloading
// it on first use.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DefaultURL is the location of the ESPDIC dictionary.
const DefaultURL = "http://www.denisowski.org/Esperanto/ESPDIC/espdic.txt"

// ErrDictionaryUnavailable indicates that the dictionary could not be
// downloaded or stored.
var ErrDictionaryUnavailable = errors.New("dictionary unavailable")

// Options are options for fetching the dictionary.
type Options struct {
	// URL is the dictionary download location.
	URL string

	// Client is the HTTP client used for downloading.
	Client *http.Client

	// Logger receives debug and retry messages.
	Logger *slog.Logger

	// Retries is the number of times a failed download is retried. Only
	// network errors and 5xx responses are retried. Zero disables retries.
	Retries int

	// RetryDelay is the time to wait between attempts.
	RetryDelay time.Duration
}

// DefaultOptions is the default options for fetching. Copy it and change the
// fields to keep the default retry policy with other settings.
var DefaultOptions = &Options{
	URL:        DefaultURL,
	Client:     &http.Client{Timeout: 60 * time.Second},
	Logger:     slog.Default(),
	Retries:    1,
	RetryDelay: 500 * time.Millisecond,
}

// Ensure makes sure the dictionary exists at path. If it does not, it is
// downloaded from opts.URL. The file is written to a temporary file first so
// that an interrupted download never leaves a partial dictionary behind.
// All errors wrap [ErrDictionaryUnavailable].
func Ensure(ctx context.Context, path string, opts *Options) error {
	opts = withDefaults(opts)
	log := opts.Logger.With("component", "fetch")

	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrDictionaryUnavailable, err)
	}

	log.DebugContext(ctx, "downloading dictionary", slog.String("url", opts.URL), slog.String("path", path))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: creating directory: %w", ErrDictionaryUnavailable, err)
	}

	resp, err := get(ctx, opts, log)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDictionaryUnavailable, err)
	}
	defer resp.Body.Close()

	n, err := writeFile(path, resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDictionaryUnavailable, err)
	}

	log.DebugContext(ctx, "downloaded dictionary", slog.String("path", path), slog.Int64("bytes", n))
	return nil
}

// get requests the dictionary, retrying on network errors and 5xx
// responses. The caller must close the response body.
func get(ctx context.Context, opts *Options, log *slog.Logger) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= opts.Retries; attempt++ {
		if attempt > 0 {
			log.WarnContext(ctx, "retrying dictionary download",
				slog.Int("attempt", attempt),
				slog.String("reason", lastErr.Error()),
			)
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("downloading %q: %w", opts.URL, ctx.Err())
			case <-time.After(opts.RetryDelay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, opts.URL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}

		resp, err := opts.Client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("downloading %q: %w", opts.URL, ctx.Err())
			}
			lastErr = fmt.Errorf("downloading %q: %w", opts.URL, err)
			continue
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return resp, nil
		case resp.StatusCode >= 500:
			resp.Body.Close()
			lastErr = fmt.Errorf("downloading %q: unexpected status %d", opts.URL, resp.StatusCode)
		default:
			resp.Body.Close()
			return nil, fmt.Errorf("downloading %q: unexpected status %d", opts.URL, resp.StatusCode)
		}
	}
	return nil, lastErr
}

// writeFile writes r to a temporary file next to path and renames it into
// place once fully written.
func writeFile(path string, r io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, fmt.Errorf("creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	n, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return 0, fmt.Errorf("writing %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("renaming %q: %w", tmp.Name(), err)
	}
	return n, nil
}

// withDefaults returns a copy of opts with an empty URL and nil Client or
// Logger replaced by the defaults. Retries and RetryDelay are used as given.
func withDefaults(opts *Options) *Options {
	if opts == nil {
		opts = DefaultOptions
	}
	o := *opts
	if o.URL == "" {
		o.URL = DefaultOptions.URL
	}
	if o.Client == nil {
		o.Client = DefaultOptions.Client
	}
	if o.Logger == nil {
		o.Logger = DefaultOptions.Logger
	}
	if o.Retries < 0 {
		o.Retries = 0
	}
	return &o
}
