package scraper

import "fmt"

// FetchError is returned when a category index page could not be
// retrieved. It carries the offending URL and either the HTTP status code
// or the underlying transport error.
//
// Design decision: We define error types rather than wrapping all errors
// generically so the CLI can name the failing URL in its message and
// callers can distinguish fetch failures from parse failures with
// errors.As.
type FetchError struct {
	// URL is the category index URL that failed.
	URL string

	// StatusCode is the HTTP status code for non-success responses.
	// Zero when the failure happened before a response was received.
	StatusCode int

	// Err is the underlying transport error, if any.
	Err error
}

// Error returns a human-readable description of the fetch failure.
func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Unwrap returns the underlying transport error for errors.Is/As chains.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError is returned when an index page entry does not match the
// expected markup structure. It carries the source text of the offending
// item so a markup-format change can be diagnosed from the error message
// alone.
type ParseError struct {
	// ItemText is the trimmed visible text of the list item that failed
	// to parse.
	ItemText string

	// Reason describes what was wrong with the item.
	Reason string
}

// Error returns a human-readable description of the parse failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse index entry %q: %s", e.ItemText, e.Reason)
}
