package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/fandomtools/ao3list/internal/model"
)

// Writer defines the interface for result output.
// Implementations render an ordered fandom list in a specific format.
//
// Design decision: We use an interface to allow different output formats
// and destinations. This enables writing to files, stdout, or buffers with
// the same API. Every writer renders every record and preserves the given
// order; formats carry no other invariants.
type Writer interface {
	// Write renders the fandom list to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(fandoms []model.Fandom) (int, error)
}

// Format identifies one of the supported output representations.
type Format string

// Supported output formats.
const (
	FormatText        Format = "text"
	FormatTable       Format = "table"
	FormatJSON        Format = "json"
	FormatJSONCompact Format = "json-compact"
	FormatYAML        Format = "yaml"
	FormatMarkdown    Format = "markdown"
)

// formats maps format names to writer constructors. This is the single
// dispatch point for format selection.
var formats = map[Format]func(io.Writer) Writer{
	FormatText:        func(out io.Writer) Writer { return NewTextWriter(out) },
	FormatTable:       func(out io.Writer) Writer { return NewTableWriter(out) },
	FormatJSON:        func(out io.Writer) Writer { return NewJSONWriter(out, WithPrettyPrint()) },
	FormatJSONCompact: func(out io.Writer) Writer { return NewJSONWriter(out) },
	FormatYAML:        func(out io.Writer) Writer { return NewYAMLWriter(out) },
	FormatMarkdown:    func(out io.Writer) Writer { return NewMarkdownWriter(out) },
}

// ParseFormat validates a format name from the CLI.
// Unknown names are rejected with an error listing the valid choices.
func ParseFormat(name string) (Format, error) {
	f := Format(name)
	if _, ok := formats[f]; !ok {
		return "", fmt.Errorf("unknown output format %q (choose from %v)", name, FormatNames())
	}
	return f, nil
}

// FormatNames returns every supported format name in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(formats))
	for f := range formats {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

// NewWriter creates a Writer for the given format and destination.
func NewWriter(format Format, output io.Writer) (Writer, error) {
	constructor, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q (choose from %v)", format, FormatNames())
	}
	return constructor(output), nil
}

// baseWriter provides common functionality for result writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
