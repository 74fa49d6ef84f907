package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	if err := formatter.WriteComment("Tool catalog export"); err != nil {
		t.Fatalf("WriteComment() failed: %v", err)
	}
	if err := formatter.WriteHeader([]string{"uuid", "name"}); err != nil {
		t.Fatalf("WriteHeader() failed: %v", err)
	}
	if err := formatter.WriteRow([]string{"uuid-a", "ESLint"}); err != nil {
		t.Fatalf("WriteRow() failed: %v", err)
	}
	if err := formatter.WriteRow([]string{"uuid-b", "Checkstyle, strict"}); err != nil {
		t.Fatalf("WriteRow() failed: %v", err)
	}
	if err := formatter.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want comment, header, two rows:\n%s", len(lines), buf.String())
	}
	if lines[0] != "# Tool catalog export" {
		t.Errorf("comment line = %q", lines[0])
	}
	if lines[1] != "uuid,name" {
		t.Errorf("header line = %q", lines[1])
	}
	if lines[3] != `uuid-b,"Checkstyle, strict"` {
		t.Errorf("values with commas must be quoted, got %q", lines[3])
	}
}

func TestCSVFormatterMetadataOrder(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	metadata := map[string]string{
		"Organization": "acme",
		"Provider":     "gh",
	}
	if err := formatter.WriteMetadata(metadata, []string{"Provider", "Organization"}); err != nil {
		t.Fatalf("WriteMetadata() failed: %v", err)
	}
	if err := formatter.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want two metadata lines plus export date:\n%s", len(lines), buf.String())
	}
	if lines[0] != "# Provider: gh" {
		t.Errorf("metadata order not preserved: %q", lines[0])
	}
	if lines[1] != "# Organization: acme" {
		t.Errorf("metadata order not preserved: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "# Export Date: ") {
		t.Errorf("expected export date comment, got %q", lines[2])
	}
}

func TestCSVFormatterCommentBetweenRows(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewCSVFormatter(&buf)

	formatter.WriteHeader([]string{"uuid", "name"})
	formatter.WriteRow([]string{"uuid-a", "ESLint"})
	if err := formatter.WriteComment("section break"); err != nil {
		t.Fatalf("WriteComment() failed: %v", err)
	}
	formatter.WriteRow([]string{"uuid-b", "PMD"})
	if err := formatter.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[2] != "# section break" {
		t.Errorf("comment lost its position between rows:\n%s", buf.String())
	}
}
