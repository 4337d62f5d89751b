package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fandomtools/ao3list/internal/model"
)

// TextWriter outputs one line per fandom: "<name> <count> - <url>".
// This is the default format, designed for quick terminal inspection and
// easy piping into line-oriented tools.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the fandom list as plain text lines.
func (w *TextWriter) Write(fandoms []model.Fandom) (int, error) {
	var sb strings.Builder
	for _, f := range fandoms {
		fmt.Fprintf(&sb, "%s %d - %s\n", f.Name, f.Count, f.URL)
	}
	return w.output.Write([]byte(sb.String()))
}
