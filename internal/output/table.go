// Package output renders command results for terminals and scripts.
//
// Purpose:
//
//	Format command output as a human-readable table, machine-readable
//	JSON, or CSV for exports. Every formatter writes to an explicit
//	io.Writer so commands decide whether results land on stdout or in a
//	file, and tests capture output without redirecting the process.
package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// TableFormatter formats output as an aligned text table.
type TableFormatter struct {
	writer  *tabwriter.Writer
	columns int
}

// NewTableFormatter creates a table formatter writing to w.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0),
	}
}

// WriteHeader writes the column headers followed by a separator row.
func (t *TableFormatter) WriteHeader(headers ...string) error {
	t.columns = len(headers)
	if err := t.WriteRow(headers...); err != nil {
		return err
	}

	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = "---"
	}
	return t.WriteRow(separators...)
}

// WriteRow writes one table row.
func (t *TableFormatter) WriteRow(values ...string) error {
	if _, err := fmt.Fprintln(t.writer, strings.Join(values, "\t")); err != nil {
		return err
	}
	return nil
}

// Flush aligns and writes the buffered table.
func (t *TableFormatter) Flush() error {
	return t.writer.Flush()
}

// PrintTable writes a complete table to w.
func PrintTable(w io.Writer, headers []string, rows [][]string) error {
	formatter := NewTableFormatter(w)
	if err := formatter.WriteHeader(headers...); err != nil {
		return err
	}
	for _, row := range rows {
		if err := formatter.WriteRow(row...); err != nil {
			return err
		}
	}
	return formatter.Flush()
}
