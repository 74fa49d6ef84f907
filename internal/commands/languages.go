package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/codacy-acme/basic-coding-standard/internal/client/codacy"
)

// languagesDoc is the wrapped file shape: {"languages": [...]}. A bare
// list is accepted as well.
type languagesDoc struct {
	Languages []string `json:"languages" yaml:"languages"`
}

// ParseLanguagesFile reads a language selection from a JSON or YAML file.
// Names are matched against the supported catalog case-insensitively and
// returned in their canonical casing.
func ParseLanguagesFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read languages file: %w", err)
	}

	languages, err := decodeLanguages(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse languages file %s: %w", path, err)
	}
	if len(languages) == 0 {
		return nil, fmt.Errorf("languages file %s lists no languages", path)
	}

	return normalizeLanguages(languages)
}

// decodeLanguages tries JSON first, then YAML, accepting either a bare
// list or the wrapped document shape.
func decodeLanguages(data []byte) ([]string, error) {
	var bare []string
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}

	var doc languagesDoc
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc.Languages, nil
	}

	if err := yaml.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc.Languages, nil
	}

	return nil, fmt.Errorf("not a JSON or YAML language list")
}

// normalizeLanguages maps each requested name onto the catalog's casing
// and rejects names the API does not support.
func normalizeLanguages(requested []string) ([]string, error) {
	canonical := make(map[string]string)
	for _, name := range codacy.AllLanguages() {
		canonical[strings.ToLower(name)] = name
	}

	var unknown []string
	normalized := make([]string, 0, len(requested))
	for _, name := range requested {
		match, ok := canonical[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		normalized = append(normalized, match)
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("unsupported languages: %s", strings.Join(unknown, ", "))
	}
	return normalized, nil
}
