package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/fandomtools/ao3list/internal/model"
)

// MarkdownWriter outputs the fandom list as a GitHub-flavored Markdown
// table. This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation: it handles header escaping and cell alignment, and
// keeps the table construction declarative.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given
// writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the fandom list as a Markdown document.
// The document is rendered to a string first and written in one go, so
// the returned count is exactly what reached the output.
func (w *MarkdownWriter) Write(fandoms []model.Fandom) (int, error) {
	md := markdown.NewMarkdown(io.Discard)

	md.H1("Fandoms")
	md.PlainText("")

	rows := make([][]string, 0, len(fandoms))
	for _, f := range fandoms {
		rows = append(rows, []string{strconv.Itoa(f.Count), f.Name, f.URL})
	}
	md.Table(markdown.TableSet{
		Header: []string{"count", "name", "URL"},
		Rows:   rows,
	})

	return io.WriteString(w.output, md.String())
}
