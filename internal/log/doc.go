// Package log provides the progress logger used during scraping.
//
// It maps the CLI verbosity tiers onto slog levels and renders records as
// plain lines without timestamps, suitable for a human watching the
// scrape on stderr.
package log
