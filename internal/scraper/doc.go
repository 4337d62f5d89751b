// Package scraper fetches and parses the archive's category index pages.
//
// # Components
//
//   - Fetcher: issues one synchronous GET per category index URL and
//     delegates merging and filtering to the aggregate package
//   - Parser: extracts fandom entries from the "tags index group" listing
//     blocks of a fetched page
//
// The scrape is fully sequential: no concurrency, no retries, no caching.
// A failed fetch or a malformed index entry aborts the whole run so that
// callers never see partial results.
package scraper
