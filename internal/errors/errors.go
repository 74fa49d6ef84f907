// Package errors provides the structured error taxonomy for the CLI.
//
// Purpose:
//
//	Define the three error categories the provisioning workflow distinguishes
//	(configuration, request, data) as concrete types with recovery suggestions,
//	so callers branch with errors.As instead of string matching.
package errors

import (
	"fmt"
	"strings"
)

// ErrorCode represents a standardized error code.
type ErrorCode string

const (
	// ErrCodeConfiguration indicates missing or invalid configuration.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeRequest indicates a transport failure or non-2xx API response.
	ErrCodeRequest ErrorCode = "REQUEST_ERROR"
	// ErrCodeData indicates a response missing a field the workflow depends on.
	ErrCodeData ErrorCode = "DATA_ERROR"
)

// ConfigurationError reports required settings that are absent or unusable.
// It is raised before any HTTP request is made and is always fatal.
type ConfigurationError struct {
	Missing    []string // environment variable names
	Detail     string
	Suggestion string
}

// NewConfigurationError creates an error listing every missing required
// environment variable.
func NewConfigurationError(missing ...string) *ConfigurationError {
	return &ConfigurationError{
		Missing:    missing,
		Suggestion: "Set the listed environment variables (or the matching config file keys) and retry.",
	}
}

// Code returns the taxonomy code for this error.
func (e *ConfigurationError) Code() ErrorCode { return ErrCodeConfiguration }

// Message returns the error text without the recovery suggestion, for
// output formats that carry the suggestion in a separate field.
func (e *ConfigurationError) Message() string {
	msg := "configuration error"
	if len(e.Missing) > 0 {
		msg = fmt.Sprintf("missing required configuration: %s", strings.Join(e.Missing, ", "))
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	msg := e.Message()
	if e.Suggestion != "" {
		msg += "\n\nSuggestion: " + e.Suggestion
	}
	return msg
}

// RequestError reports a failed API call: either the request never completed
// (Err set, StatusCode zero) or the server answered outside the 2xx range.
type RequestError struct {
	Method     string
	Endpoint   string
	StatusCode int
	APIMessage string // decoded error body, when the server provided one
	Err        error  // underlying transport error, when present
}

// NewRequestError creates an error for a non-2xx API response.
func NewRequestError(method, endpoint string, status int, apiMessage string) *RequestError {
	return &RequestError{
		Method:     method,
		Endpoint:   endpoint,
		StatusCode: status,
		APIMessage: apiMessage,
	}
}

// NewTransportError creates an error for a request that never completed.
func NewTransportError(method, endpoint string, err error) *RequestError {
	return &RequestError{
		Method:   method,
		Endpoint: endpoint,
		Err:      err,
	}
}

// Code returns the taxonomy code for this error.
func (e *RequestError) Code() ErrorCode { return ErrCodeRequest }

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
	}
	if e.APIMessage != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Endpoint, e.StatusCode, e.APIMessage)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Endpoint, e.StatusCode)
}

// Unwrap exposes the underlying transport error for errors.Is/As chains.
func (e *RequestError) Unwrap() error { return e.Err }

// DataError reports a response that decoded successfully but lacks a field
// the workflow cannot proceed without.
type DataError struct {
	Field  string
	Detail string
}

// NewDataError creates an error for a missing or empty response field.
func NewDataError(field, detail string) *DataError {
	return &DataError{Field: field, Detail: detail}
}

// Code returns the taxonomy code for this error.
func (e *DataError) Code() ErrorCode { return ErrCodeData }

// Error implements the error interface.
func (e *DataError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("response missing required field %q: %s", e.Field, e.Detail)
	}
	return fmt.Sprintf("response missing required field %q", e.Field)
}
