// Package codacy provides types for the Codacy API client.
//
// Purpose:
//
//	Define request and response types for Codacy v3 API operations. Responses
//	are decoded into these structs at the wire boundary so the rest of the
//	workflow never touches raw maps.
package codacy

// CodingStandard represents a coding standard in API responses.
type CodingStandard struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Languages []string `json:"languages,omitempty"`
	IsDraft   bool     `json:"isDraft"`
	IsDefault bool     `json:"isDefault"`
}

// Tool represents an analysis tool from the global catalog. UUID and Name
// are the fields the provisioning workflow depends on.
type Tool struct {
	UUID    string `json:"uuid"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// PatternDefinition carries the identity and classification of a pattern.
type PatternDefinition struct {
	ID            string `json:"id"`
	SeverityLevel string `json:"severityLevel"`
	Category      string `json:"category,omitempty"`
}

// PatternConfiguration represents one pattern's state within a tool.
type PatternConfiguration struct {
	Enabled    bool              `json:"enabled"`
	Definition PatternDefinition `json:"patternDefinition"`
}

// PatternUpdate is one entry of a bulk pattern update payload.
type PatternUpdate struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

// createStandardRequest represents a coding standard creation request.
type createStandardRequest struct {
	Name      string   `json:"name"`
	Languages []string `json:"languages"`
}

// toolUpdateRequest represents a tool PATCH payload. Enabling a tool sends
// an empty patterns list; bulk updates send the changed entries.
type toolUpdateRequest struct {
	Enabled  bool            `json:"enabled"`
	Patterns []PatternUpdate `json:"patterns"`
}

// setDefaultRequest represents a setDefault payload.
type setDefaultRequest struct {
	IsDefault bool `json:"isDefault"`
}

type standardEnvelope struct {
	Data CodingStandard `json:"data"`
}

type standardsListEnvelope struct {
	Data []CodingStandard `json:"data"`
}

type toolsListEnvelope struct {
	Data []Tool `json:"data"`
}

type patternsPageEnvelope struct {
	Data       []PatternConfiguration `json:"data"`
	Pagination pagination             `json:"pagination"`
}

// pagination carries the continuation cursor; the field is absent on the
// last page.
type pagination struct {
	Cursor *string `json:"cursor"`
	Total  int     `json:"total,omitempty"`
}

// apiError is the error body shape the API uses for failed requests.
type apiError struct {
	Message string `json:"message"`
}
