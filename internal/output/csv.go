package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// CSVFormatter formats output as CSV with comment lines for metadata.
type CSVFormatter struct {
	raw    io.Writer
	writer *csv.Writer
}

// NewCSVFormatter creates a CSV formatter writing to w.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{
		raw:    w,
		writer: csv.NewWriter(w),
	}
}

// WriteComment writes a # comment line. The record buffer is flushed first
// so comments keep their position between rows.
func (c *CSVFormatter) WriteComment(comment string) error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(c.raw, "# %s\n", comment)
	return err
}

// WriteMetadata writes export metadata as comment lines.
func (c *CSVFormatter) WriteMetadata(metadata map[string]string, keys []string) error {
	for _, key := range keys {
		if err := c.WriteComment(fmt.Sprintf("%s: %s", key, metadata[key])); err != nil {
			return err
		}
	}
	return c.WriteComment(fmt.Sprintf("Export Date: %s", time.Now().UTC().Format(time.RFC3339)))
}

// WriteHeader writes the column headers.
func (c *CSVFormatter) WriteHeader(headers []string) error {
	return c.writer.Write(headers)
}

// WriteRow writes one data row.
func (c *CSVFormatter) WriteRow(row []string) error {
	return c.writer.Write(row)
}

// Flush writes any buffered records.
func (c *CSVFormatter) Flush() error {
	c.writer.Flush()
	if err := c.writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}
