package config

import (
	"time"
)

// Default configuration values.
// These values mirror the archive's public index layout and conservative
// client behavior; all of them can be overridden via CLI flags or the
// optional configuration file.
const (
	// DefaultBaseURL is the origin of the archive. Relative paths scraped
	// from index pages are resolved against this origin.
	DefaultBaseURL = "https://archiveofourown.org"

	// DefaultMediaPath is the URL template for a category index page.
	// The single %s placeholder receives the category's escaped path
	// segment, e.g. "Anime%20*a*%20Manga".
	DefaultMediaPath = "/media/%s/fandoms"

	// DefaultTimeout is the per-request HTTP timeout. Index pages are
	// large (tens of thousands of entries for popular categories), so a
	// generous timeout avoids false failures on slow connections.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent identifies ao3list in HTTP requests.
	// A descriptive User-Agent lets archive operators identify scraper
	// traffic in their logs.
	DefaultUserAgent = "ao3list/1.0 (+https://github.com/fandomtools/ao3list)"

	// DefaultMinWorks retains every fandom regardless of work count.
	DefaultMinWorks = 0

	// DefaultVerbosity prints per-category progress but no merge or
	// filter statistics.
	DefaultVerbosity = 1

	// AppName is the application name used for XDG directory paths.
	AppName = "ao3list"
)

// Verbosity tiers. Tier 1 reports which pages are being fetched, tier 2
// additionally reports item counts and merge/filter statistics. Tier 0
// suppresses all progress output.
const (
	VerbosityQuiet   = 0
	VerbosityNormal  = 1
	VerbosityVerbose = 2
)

// Config holds all configuration options for an ao3list run.
// This struct is designed to be populated from CLI flags and passed
// through the application via dependency injection rather than global
// state.
//
// Design decision: We use a single flat struct instead of nested structs
// because the number of options is small. If the configuration grows
// significantly, consider refactoring into sub-structs.
type Config struct {
	// BaseURL is the archive origin used to build index URLs and resolve
	// relative fandom links.
	BaseURL string

	// MediaPath is the category index URL template with one %s
	// placeholder for the category path segment.
	MediaPath string

	// Categories holds the short category names to scrape. Empty means
	// all known categories.
	Categories []string

	// Format selects the output representation. Must be one of the names
	// accepted by report.ParseFormat; validated at the CLI boundary
	// before any fetching begins.
	Format string

	// MinWorks is the minimum work count a fandom must have to appear in
	// the output.
	MinWorks int

	// OutputFile is the path to write results to. Empty means stdout.
	OutputFile string

	// Verbosity is the progress-output tier (0, 1, or 2).
	Verbosity int

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .ao3list in the current directory,
	// the XDG config directory, and then the user's home directory.
	ConfigFilePath string
}

// NewConfig returns a Config populated with default values.
func NewConfig() *Config {
	return &Config{
		BaseURL:   DefaultBaseURL,
		MediaPath: DefaultMediaPath,
		MinWorks:  DefaultMinWorks,
		Verbosity: DefaultVerbosity,
		Timeout:   DefaultTimeout,
	}
}

// Validate checks the configuration for consistency.
// It returns one of the package sentinel errors wrapped with the
// offending value, so callers can use errors.Is for classification.
func (c *Config) Validate() error {
	if c.MinWorks < 0 {
		return wrapValue(ErrNegativeMinWorks, c.MinWorks)
	}
	if c.Verbosity < VerbosityQuiet || c.Verbosity > VerbosityVerbose {
		return wrapValue(ErrInvalidVerbosity, c.Verbosity)
	}
	if c.Timeout <= 0 {
		return wrapValue(ErrInvalidTimeout, c.Timeout)
	}
	for _, name := range c.Categories {
		if _, ok := PathSegment(name); !ok {
			return wrapValue(ErrUnknownCategory, name)
		}
	}
	return nil
}

// ResolvedCategories returns the category names to scrape, defaulting to
// every known category (in sorted name order) when none were selected.
func (c *Config) ResolvedCategories() []string {
	if len(c.Categories) > 0 {
		return c.Categories
	}
	return CategoryNames()
}
