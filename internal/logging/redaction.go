package logging

import (
	"regexp"
	"strings"
)

// Redaction patterns for sensitive data in log lines and audit parameters.
var (
	// TokenHeaderPattern matches the api-token header however it is printed.
	TokenHeaderPattern = regexp.MustCompile(`(?i)(api-token[=:]\s*)([A-Za-z0-9\-_.]+)`)

	// BearerPattern matches bearer tokens.
	BearerPattern = regexp.MustCompile(`(?i)(Bearer\s+)([A-Za-z0-9\-_.]{20,})`)

	// TokenEnvPattern matches tokens in environment variable assignments,
	// CODACY_API_TOKEN included.
	TokenEnvPattern = regexp.MustCompile(`(?i)([A-Z_]*TOKEN[=:]\s*)([A-Za-z0-9\-_.]{8,})`)

	// URLCredentialsPattern matches credentials embedded in URLs.
	URLCredentialsPattern = regexp.MustCompile(`://[^/:@\s]+:[^@\s]+@`)
)

const redactedPlaceholder = "***REDACTED***"

// RedactString masks sensitive data in a string.
func RedactString(s string) string {
	if s == "" {
		return s
	}

	result := s
	result = TokenHeaderPattern.ReplaceAllString(result, `${1}`+redactedPlaceholder)
	result = BearerPattern.ReplaceAllString(result, `${1}`+redactedPlaceholder)
	result = TokenEnvPattern.ReplaceAllString(result, `${1}`+redactedPlaceholder)
	result = URLCredentialsPattern.ReplaceAllString(result, `://`+redactedPlaceholder+`@`)
	return result
}

// RedactFields masks sensitive values in a parameter map by key name. Values
// under innocuous keys are still run through RedactString when they are
// strings.
func RedactFields(fields map[string]interface{}) map[string]interface{} {
	if fields == nil {
		return nil
	}

	sensitiveKeys := []string{"password", "secret", "token", "key", "credential", "auth"}

	redacted := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		keyLower := strings.ToLower(k)
		isSensitive := false
		for _, sensitive := range sensitiveKeys {
			if strings.Contains(keyLower, sensitive) {
				isSensitive = true
				break
			}
		}

		if isSensitive {
			redacted[k] = redactedPlaceholder
			continue
		}
		if str, ok := v.(string); ok {
			redacted[k] = RedactString(str)
			continue
		}
		redacted[k] = v
	}

	return redacted
}
