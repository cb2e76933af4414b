// Package renderer formats engine output as markdown, ready to be printed
// through a terminal markdown renderer.
package renderer

import (
	"fmt"
	"strings"
)

// tableWriter accumulates a markdown report.
type tableWriter struct {
	*strings.Builder
}

func newTableWriter() *tableWriter {
	return &tableWriter{Builder: &strings.Builder{}}
}

// Printf formats according to a format specifier and writes to the report.
func (w *tableWriter) Printf(format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
