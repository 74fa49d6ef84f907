package output

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/codacy-acme/basic-coding-standard/internal/errors"
)

func TestJSONFormatterSuccess(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	data := map[string]interface{}{"standardId": "12345"}
	summary := map[string]interface{}{"tools_enabled": 62}

	if err := formatter.WriteSuccess("create", data, summary); err != nil {
		t.Fatalf("WriteSuccess() failed: %v", err)
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &envelope); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if envelope["success"] != true {
		t.Error("expected success=true")
	}
	if envelope["command"] != "create" {
		t.Errorf("command = %v", envelope["command"])
	}
	if envelope["timestamp"] == "" {
		t.Error("expected a timestamp")
	}
}

func TestJSONFormatterErrorCarriesCode(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	reqErr := errors.NewRequestError("POST", "coding-standards", 403, "forbidden")
	if err := formatter.WriteError("create", reqErr); err != nil {
		t.Fatalf("WriteError() failed: %v", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(buf.Bytes(), &envelope); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if envelope.Success {
		t.Error("expected success=false")
	}
	if envelope.Error == nil {
		t.Fatal("expected an error block")
	}
	if envelope.Error.Code != "REQUEST_ERROR" {
		t.Errorf("Code = %q, want REQUEST_ERROR", envelope.Error.Code)
	}
}

func TestJSONFormatterConfigurationErrorSplitsSuggestion(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	configErr := errors.NewConfigurationError("CODACY_API_TOKEN")
	if err := formatter.WriteError("create", configErr); err != nil {
		t.Fatalf("WriteError() failed: %v", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(buf.Bytes(), &envelope); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if envelope.Error.Code != "CONFIGURATION_ERROR" {
		t.Errorf("Code = %q, want CONFIGURATION_ERROR", envelope.Error.Code)
	}
	if envelope.Error.Suggestion == "" {
		t.Error("expected the suggestion in its own field")
	}
	if got := envelope.Error.Message; got != "missing required configuration: CODACY_API_TOKEN" {
		t.Errorf("Message = %q, suggestion should not be embedded", got)
	}
}

func TestJSONFormatterPlainError(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(&buf)

	if err := formatter.WriteError("create", stderrors.New("boom")); err != nil {
		t.Fatalf("WriteError() failed: %v", err)
	}

	var envelope Envelope
	if err := json.Unmarshal(buf.Bytes(), &envelope); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if envelope.Error.Message != "boom" {
		t.Errorf("Message = %q", envelope.Error.Message)
	}
	if envelope.Error.Code != "" {
		t.Errorf("plain errors carry no code, got %q", envelope.Error.Code)
	}
}
