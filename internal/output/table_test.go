package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableFormatterAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)

	if err := formatter.WriteHeader("UUID", "NAME", "STATUS"); err != nil {
		t.Fatalf("WriteHeader() failed: %v", err)
	}
	if err := formatter.WriteRow("uuid-a", "ESLint", "enabled"); err != nil {
		t.Fatalf("WriteRow() failed: %v", err)
	}
	if err := formatter.Flush(); err != nil {
		t.Fatalf("Flush() failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header, separator, row:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "UUID") {
		t.Errorf("header line = %q", lines[0])
	}
	if got := strings.Count(lines[1], "---"); got != 3 {
		t.Errorf("separator has %d markers, want one per column: %q", got, lines[1])
	}
}

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer
	headers := []string{"FIELD", "VALUE"}
	rows := [][]string{
		{"Standard", "Default Standard"},
		{"Tools enabled", "62"},
	}

	if err := PrintTable(&buf, headers, rows); err != nil {
		t.Fatalf("PrintTable() failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "Standard", "Tools enabled", "62"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
