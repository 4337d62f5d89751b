package report

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fandomtools/ao3list/internal/model"
)

// tableHeaders are the column headers of the aligned table format, in
// output order.
var tableHeaders = [3]string{"count", "name", "URL"}

// TableWriter outputs a column-aligned table with a header row and a
// separator rule. Column widths are the maximum of the header width and
// the widest cell in that column.
//
// Design decision: We compute widths by hand rather than using
// text/tabwriter because the format is fixed: " | " separators and a
// "-|-" rule row, with the count column first.
type TableWriter struct {
	baseWriter
}

// NewTableWriter creates a TableWriter that outputs to the given writer.
func NewTableWriter(output io.Writer) *TableWriter {
	return &TableWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the fandom list as an aligned table.
func (w *TableWriter) Write(fandoms []model.Fandom) (int, error) {
	widths := columnWidths(fandoms)

	var sb strings.Builder
	sb.WriteString(pad(tableHeaders[0], widths[0]))
	sb.WriteString(" | ")
	sb.WriteString(pad(tableHeaders[1], widths[1]))
	sb.WriteString(" | ")
	sb.WriteString(tableHeaders[2])
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat("-", widths[0]))
	sb.WriteString("-|-")
	sb.WriteString(strings.Repeat("-", widths[1]))
	sb.WriteString("-|-")
	sb.WriteString(strings.Repeat("-", widths[2]))
	sb.WriteString("\n")

	for _, f := range fandoms {
		sb.WriteString(pad(strconv.Itoa(f.Count), widths[0]))
		sb.WriteString(" | ")
		sb.WriteString(pad(f.Name, widths[1]))
		sb.WriteString(" | ")
		sb.WriteString(f.URL)
		sb.WriteString("\n")
	}

	return w.output.Write([]byte(sb.String()))
}

// columnWidths returns the width of each column: the maximum of the
// header and every cell value. Widths are measured in characters, not
// bytes, so multi-byte fandom names stay aligned.
func columnWidths(fandoms []model.Fandom) [3]int {
	widths := [3]int{
		utf8.RuneCountInString(tableHeaders[0]),
		utf8.RuneCountInString(tableHeaders[1]),
		utf8.RuneCountInString(tableHeaders[2]),
	}
	for _, f := range fandoms {
		if n := utf8.RuneCountInString(strconv.Itoa(f.Count)); n > widths[0] {
			widths[0] = n
		}
		if n := utf8.RuneCountInString(f.Name); n > widths[1] {
			widths[1] = n
		}
		if n := utf8.RuneCountInString(f.URL); n > widths[2] {
			widths[2] = n
		}
	}
	return widths
}

// pad left-justifies s to the given width in characters.
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
