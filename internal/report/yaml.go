package report

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/fandomtools/ao3list/internal/model"
)

// YAMLWriter outputs the fandom list as a block-style YAML sequence of
// {count, name, url} mappings.
type YAMLWriter struct {
	baseWriter
}

// NewYAMLWriter creates a YAMLWriter that outputs to the given writer.
func NewYAMLWriter(output io.Writer) *YAMLWriter {
	return &YAMLWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the fandom list as YAML.
func (w *YAMLWriter) Write(fandoms []model.Fandom) (int, error) {
	data, err := yaml.Marshal(model.ToRecords(fandoms))
	if err != nil {
		return 0, err
	}
	return w.output.Write(data)
}
