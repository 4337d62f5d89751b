package report

import (
	"encoding/json"
	"io"

	"github.com/fandomtools/ao3list/internal/model"
)

// JSONWriter outputs the fandom list as a JSON array of
// {count, name, url} objects. This format is designed for tool
// integration and programmatic processing.
//
// Design decision: We use standard encoding/json rather than a
// third-party JSON library because it is sufficient for a flat record
// array and provides consistent behavior across Go versions.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentString is the indentation string (typically "  ").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithPrettyPrint enables pretty-printed JSON with 2-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentString = "  "
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// By default the output is compact; use WithPrettyPrint for indentation.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the fandom list as a JSON array.
func (w *JSONWriter) Write(fandoms []model.Fandom) (int, error) {
	records := model.ToRecords(fandoms)

	var data []byte
	var err error
	if w.indent {
		data, err = json.MarshalIndent(records, "", w.indentString)
	} else {
		data, err = json.Marshal(records)
	}
	if err != nil {
		return 0, err
	}

	// Trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
