package output

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"time"

	"github.com/codacy-acme/basic-coding-standard/internal/errors"
)

// JSONFormatter formats output as JSON with a stable envelope.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a JSON formatter writing to w.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// Envelope is the schema shared by every JSON result.
type Envelope struct {
	Success   bool                   `json:"success"`
	Timestamp string                 `json:"timestamp"`
	Command   string                 `json:"command,omitempty"`
	Data      interface{}            `json:"data,omitempty"`
	Error     *ErrorOutput           `json:"error,omitempty"`
	Summary   map[string]interface{} `json:"summary,omitempty"`
}

// ErrorOutput carries error details in JSON output.
type ErrorOutput struct {
	Message    string `json:"message"`
	Code       string `json:"code,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Write outputs one envelope, stamping the timestamp when unset.
func (j *JSONFormatter) Write(envelope Envelope) error {
	if envelope.Timestamp == "" {
		envelope.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	encoder := json.NewEncoder(j.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(envelope)
}

// WriteSuccess outputs a successful result.
func (j *JSONFormatter) WriteSuccess(command string, data interface{}, summary map[string]interface{}) error {
	return j.Write(Envelope{
		Success: true,
		Command: command,
		Data:    data,
		Summary: summary,
	})
}

// WriteError outputs a failure. Structured workflow errors contribute
// their code and suggestion so scripts can branch without parsing
// messages.
func (j *JSONFormatter) WriteError(command string, err error) error {
	errOut := &ErrorOutput{Message: err.Error()}

	var coder interface{ Code() errors.ErrorCode }
	if stderrors.As(err, &coder) {
		errOut.Code = string(coder.Code())
	}

	var configErr *errors.ConfigurationError
	if stderrors.As(err, &configErr) && configErr.Suggestion != "" {
		errOut.Suggestion = configErr.Suggestion
		errOut.Message = configErr.Message()
	}

	return j.Write(Envelope{
		Success: false,
		Command: command,
		Error:   errOut,
	})
}
