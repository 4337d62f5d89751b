package scraper

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/fandomtools/ao3list/internal/aggregate"
	"github.com/fandomtools/ao3list/internal/config"
	"github.com/fandomtools/ao3list/internal/model"
)

// Fetcher retrieves and parses category index pages.
// All fetches are sequential: one GET in flight at a time, no retries.
//
// Design decision: We use a struct holding the resty client rather than
// creating a client per request because:
//  1. Client configuration (User-Agent, timeout) should be consistent
//  2. Connection reuse works better with a shared client
//  3. Tests can point the base URL at an httptest server
type Fetcher struct {
	// client is the HTTP client used for index page requests.
	client *resty.Client

	// parser extracts fandom entries from fetched pages.
	parser *Parser

	// baseURL is the archive origin.
	baseURL string

	// mediaPath is the category index URL template with one %s
	// placeholder for the category path segment.
	mediaPath string

	// logger receives verbosity-gated progress messages. Logging is a
	// side effect only and never affects returned data.
	logger *slog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithLogger sets the logger for progress output.
func WithLogger(logger *slog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(f *Fetcher) {
		f.client.SetTimeout(timeout)
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.client.SetHeader("User-Agent", ua)
	}
}

// NewFetcher creates a Fetcher for the given archive origin and category
// index URL template.
func NewFetcher(baseURL, mediaPath string, opts ...Option) *Fetcher {
	client := resty.New()
	client.SetHeader("User-Agent", config.DefaultUserAgent)
	client.SetTimeout(config.DefaultTimeout)

	f := &Fetcher{
		client:    client,
		parser:    NewParser(baseURL),
		baseURL:   baseURL,
		mediaPath: mediaPath,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// CategoryURL builds the index URL for a category path segment.
// The segment is pre-escaped, so it is substituted into the template
// verbatim.
func (f *Fetcher) CategoryURL(segment string) string {
	return f.baseURL + fmt.Sprintf(f.mediaPath, segment)
}

// FetchFandoms retrieves one category index page and parses its fandom
// entries. A transport failure or non-success status is fatal for the
// fetch and returned as a FetchError carrying the URL.
func (f *Fetcher) FetchFandoms(ctx context.Context, url string) ([]model.Fandom, error) {
	f.logger.Info("fetching fandoms", "url", url)

	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if !resp.IsSuccess() {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode()}
	}

	fandoms, err := f.parser.Parse(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, err
	}

	f.logger.Debug("fetched fandoms", "count", len(fandoms), "url", url)
	return fandoms, nil
}

// FetchAll retrieves every listed category sequentially, merges the
// results into one deduplicated list, drops fandoms below minWorks, and
// returns the remainder sorted by work count descending. Categories are
// given as path segments (see config.PathSegment).
//
// No partial results: the first failed fetch or parse aborts the run.
func (f *Fetcher) FetchAll(ctx context.Context, segments []string, minWorks int) ([]model.Fandom, error) {
	lists := make([][]model.Fandom, 0, len(segments))
	for _, segment := range segments {
		fandoms, err := f.FetchFandoms(ctx, f.CategoryURL(segment))
		if err != nil {
			return nil, err
		}
		lists = append(lists, fandoms)
	}

	merged, duplicates := aggregate.Merge(lists...)
	if duplicates > 0 {
		f.logger.Debug("merging lists dropped duplicates", "duplicates", duplicates)
	}

	results, filtered := aggregate.FilterAndSort(merged, minWorks)
	if filtered > 0 {
		f.logger.Debug("filtered fandoms for having too few works", "filtered", filtered, "minWorks", minWorks)
	}

	return results, nil
}
