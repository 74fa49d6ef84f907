// Package codacy provides the API client for the Codacy code-quality service.
//
// Purpose:
//
//	REST client for the Codacy v3 API: coding standard lifecycle (create,
//	promote, set default), the global tool catalog, and per-tool pattern
//	listing and bulk updates. Handles authentication headers, cursor
//	pagination, and pacing between mutating calls.
//
// Dependencies:
//   - net/http: HTTP client
//   - internal/client: Mutation pacing between calls
//   - internal/errors: Request/data error taxonomy
package codacy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/codacy-acme/basic-coding-standard/internal/client"
	"github.com/codacy-acme/basic-coding-standard/internal/errors"
)

// MaxPatternBatch is the largest patterns slice a single update call may
// carry; the API rejects larger payloads.
const MaxPatternBatch = 500

// DefaultPageSize is how many patterns a single page request asks for.
const DefaultPageSize = 100

// Options configures a Client.
type Options struct {
	BaseURL      string
	Provider     string
	Organization string
	Token        string
	PageSize     int                   // patterns per page; default DefaultPageSize
	Throttle     client.ThrottleConfig // pacing after mutating calls
	HTTPClient   *http.Client
	Logger       zerolog.Logger
}

// Client provides access to the Codacy v3 API.
type Client struct {
	baseURL      string
	authority    string
	provider     string
	organization string
	token        string
	pageSize     int
	throttle     client.ThrottleConfig
	httpClient   *http.Client
	logger       zerolog.Logger
}

// New creates a Codacy API client.
func New(opts Options) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	authority := strings.TrimPrefix(strings.TrimPrefix(baseURL, "https://"), "http://")

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &Client{
		baseURL:      baseURL,
		authority:    authority,
		provider:     opts.Provider,
		organization: opts.Organization,
		token:        opts.Token,
		pageSize:     pageSize,
		throttle:     opts.Throttle,
		httpClient:   httpClient,
		logger:       opts.Logger,
	}
}

// CreateCodingStandard creates a draft coding standard covering the given
// languages. A nil or empty languages slice selects AllLanguages.
func (c *Client) CreateCodingStandard(ctx context.Context, name string, languages []string) (*CodingStandard, error) {
	if len(languages) == 0 {
		languages = AllLanguages()
	}

	payload := createStandardRequest{Name: name, Languages: languages}

	var result standardEnvelope
	if err := c.doRequest(ctx, http.MethodPost, c.orgPath("coding-standards"), nil, payload, &result); err != nil {
		return nil, err
	}

	if result.Data.ID == "" {
		return nil, errors.NewDataError("id", "coding standard creation returned no id")
	}

	standard := result.Data
	return &standard, nil
}

// ListCodingStandards returns the organization's coding standards.
func (c *Client) ListCodingStandards(ctx context.Context) ([]CodingStandard, error) {
	var result standardsListEnvelope
	if err := c.doRequest(ctx, http.MethodGet, c.orgPath("coding-standards"), nil, nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// ListTools returns the global catalog of analysis tools.
func (c *Client) ListTools(ctx context.Context) ([]Tool, error) {
	var result toolsListEnvelope
	if err := c.doRequest(ctx, http.MethodGet, "api/v3/tools", nil, nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// EnableTool switches a tool on in the coding standard without touching its
// patterns, then waits out the mutation throttle.
func (c *Client) EnableTool(ctx context.Context, standardID, toolUUID string) error {
	endpoint := c.orgPath("coding-standards", standardID, "tools", toolUUID)
	payload := toolUpdateRequest{Enabled: true, Patterns: []PatternUpdate{}}

	if err := c.doRequest(ctx, http.MethodPatch, endpoint, nil, payload, nil); err != nil {
		return err
	}
	return c.throttle.Wait(ctx)
}

// ListPatterns fetches every pattern configured for a tool, following the
// continuation cursor until the server stops returning one. Pages are
// concatenated in server order.
func (c *Client) ListPatterns(ctx context.Context, standardID, toolUUID string) ([]PatternConfiguration, error) {
	endpoint := c.orgPath("coding-standards", standardID, "tools", toolUUID, "patterns")

	var patterns []PatternConfiguration
	cursor := ""
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("limit", strconv.Itoa(c.pageSize))
		if cursor != "" {
			query.Set("cursor", cursor)
		}

		var result patternsPageEnvelope
		if err := c.doRequest(ctx, http.MethodGet, endpoint, query, nil, &result); err != nil {
			return nil, err
		}

		patterns = append(patterns, result.Data...)

		c.logger.Debug().
			Int("page", page).
			Int("fetched", len(result.Data)).
			Int("total", len(patterns)).
			Msg("fetched pattern page")

		next := result.Pagination.Cursor
		if next == nil || *next == "" {
			break
		}
		cursor = *next
	}

	return patterns, nil
}

// UpdatePatterns applies one batch of pattern changes to a tool, then waits
// out the mutation throttle. Batches above MaxPatternBatch are rejected
// before any request is made.
func (c *Client) UpdatePatterns(ctx context.Context, standardID, toolUUID string, updates []PatternUpdate) error {
	if len(updates) > MaxPatternBatch {
		return fmt.Errorf("pattern batch of %d exceeds the %d per-call limit", len(updates), MaxPatternBatch)
	}

	endpoint := c.orgPath("coding-standards", standardID, "tools", toolUUID)
	payload := toolUpdateRequest{Enabled: true, Patterns: updates}

	if err := c.doRequest(ctx, http.MethodPatch, endpoint, nil, payload, nil); err != nil {
		return err
	}
	return c.throttle.Wait(ctx)
}

// PromoteDraft promotes the draft coding standard to active.
func (c *Client) PromoteDraft(ctx context.Context, standardID string) error {
	endpoint := c.orgPath("coding-standards", standardID, "promote")
	return c.doRequest(ctx, http.MethodPost, endpoint, nil, nil, nil)
}

// SetDefault makes the coding standard the organization default.
func (c *Client) SetDefault(ctx context.Context, standardID string) error {
	endpoint := c.orgPath("coding-standards", standardID, "setDefault")
	return c.doRequest(ctx, http.MethodPost, endpoint, nil, setDefaultRequest{IsDefault: true}, nil)
}

// orgPath builds an endpoint under the organization scope.
func (c *Client) orgPath(segments ...string) string {
	parts := append([]string{"api/v3/organizations", c.provider, c.organization}, segments...)
	return strings.Join(parts, "/")
}

// doRequest issues one API call: builds the URL, attaches the required
// headers, encodes the JSON payload, and decodes the response into out when
// out is non-nil. Non-2xx responses come back as *errors.RequestError
// carrying the decoded API message when the server provided one.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, query url.Values, payload, out interface{}) error {
	reqURL := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	httpReq.Header.Set("authority", c.authority)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("api-token", c.token)
	httpReq.Header.Set("x-requested-with", "XMLHttpRequest")

	c.logger.Debug().Str("method", method).Str("url", reqURL).Msg("issuing API request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.NewTransportError(method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.responseError(method, endpoint, resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		// Some mutations answer with an empty body.
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// responseError turns a non-2xx response into a RequestError, preferring the
// API's own message field over the raw body.
func (c *Client) responseError(method, endpoint string, resp *http.Response) *errors.RequestError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	apiMessage := strings.TrimSpace(string(body))
	var decoded apiError
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Message != "" {
		apiMessage = decoded.Message
	}

	c.logger.Error().
		Int("status", resp.StatusCode).
		Str("method", method).
		Str("endpoint", endpoint).
		Msg("API request failed")

	return errors.NewRequestError(method, endpoint, resp.StatusCode, apiMessage)
}
