// Package health performs the upfront API reachability check.
//
// Purpose:
//
//	Probe the Codacy API before the provisioning workflow starts so bad
//	URLs, expired tokens, and network trouble surface as one clear
//	preflight error instead of a confusing failure halfway through a run
//	that takes minutes.
//
// Dependencies:
//   - net/http: HTTP client for the probe
//   - context: Timeout control
//   - internal/errors: RequestError for probe failures
package health

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/codacy-acme/basic-coding-standard/internal/errors"
)

// DefaultTimeout bounds the preflight probe. The workflow's own calls
// carry no client timeout, so this is the only place one exists.
const DefaultTimeout = 5 * time.Second

// probePath is a cheap catalog route that answers fast with a single
// entry.
const probePath = "/api/v3/tools?limit=1"

// Checker probes the Codacy API.
type Checker struct {
	client  *http.Client
	timeout time.Duration
}

// NewChecker creates a checker. A zero timeout selects DefaultTimeout.
func NewChecker(timeout time.Duration) *Checker {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &Checker{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
	}
}

// Status reports the outcome of an API probe.
type Status struct {
	URL     string
	Healthy bool
	Error   error
}

// CheckAPI probes the tools endpoint with the configured token.
func (c *Checker) CheckAPI(ctx context.Context, baseURL, token string) Status {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	probeURL := strings.TrimRight(baseURL, "/") + probePath
	status := Status{URL: probeURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, probeURL, nil)
	if err != nil {
		status.Error = fmt.Errorf("failed to create request: %w", err)
		return status
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-token", token)

	resp, err := c.client.Do(req)
	if err != nil {
		status.Error = errors.NewTransportError(http.MethodGet, probeURL, err)
		return status
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		status.Error = errors.NewRequestError(http.MethodGet, probeURL, resp.StatusCode, "")
		return status
	}

	status.Healthy = true
	return status
}

// Require runs the probe and converts failure into a preflight error with
// troubleshooting guidance. The underlying RequestError stays reachable
// through errors.As.
func (c *Checker) Require(ctx context.Context, baseURL, token string) error {
	status := c.CheckAPI(ctx, baseURL, token)
	if status.Healthy {
		return nil
	}

	var tips strings.Builder
	tips.WriteString("Troubleshooting:\n")
	tips.WriteString("  - Verify CODACY_API_URL points at the API host\n")
	tips.WriteString("  - Check that CODACY_API_TOKEN is set and still valid\n")
	tips.WriteString("  - Ensure network connectivity")
	return fmt.Errorf("codacy api preflight failed: %w\n\n%s", status.Error, tips.String())
}
