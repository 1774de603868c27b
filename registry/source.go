/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bennypowers.dev/cssvalues/fs"
	"bennypowers.dev/cssvalues/internal/version"
)

const (
	// DefaultTimeout bounds a single remote fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize is the largest accepted registry document (10 MB).
	DefaultMaxSize int64 = 10 * 1024 * 1024
)

// Fetcher retrieves a remote registry document.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher fetches registry documents over HTTP.
type HTTPFetcher struct {
	maxSize int64
	client  *http.Client
}

// NewHTTPFetcher returns a fetcher that rejects bodies larger than maxSize.
func NewHTTPFetcher(maxSize int64) *HTTPFetcher {
	return &HTTPFetcher{
		maxSize: maxSize,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// Fetch performs a GET request and returns the body.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "cssvalues/"+version.Get())

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("timeout fetching %s: %w", url, err)
		}
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if int64(len(body)) > f.maxSize {
		return nil, fmt.Errorf("%s exceeds %d bytes", url, f.maxSize)
	}
	return body, nil
}

func isRemote(source string) bool {
	return strings.HasPrefix(source, "https://") || strings.HasPrefix(source, "http://")
}

// Load reads each source and merges it over the default database, in
// order, so later sources win. Sources are file paths in filesystem or
// http(s) URLs; URLs need a non-nil fetcher.
func Load(ctx context.Context, filesystem fs.FileSystem, fetcher Fetcher, sources ...string) (*Database, error) {
	db := Default()
	for _, source := range sources {
		data, err := read(ctx, filesystem, fetcher, source)
		if err != nil {
			return nil, err
		}
		extra, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		db = db.Merge(extra)
	}
	return db, nil
}

func read(ctx context.Context, filesystem fs.FileSystem, fetcher Fetcher, source string) ([]byte, error) {
	if isRemote(source) {
		if fetcher == nil {
			return nil, fmt.Errorf("%w: %s", ErrRemoteSource, source)
		}
		ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
		return fetcher.Fetch(ctx, source)
	}
	data, err := filesystem.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", source, err)
	}
	return data, nil
}
