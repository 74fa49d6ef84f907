// Package config provides configuration management for the CLI.
//
// Purpose:
//
//	Load configuration from multiple sources: environment variables, config files
//	(YAML/JSON), and command-line flags. Uses Viper for configuration management
//	with clear precedence: flags > environment variables > config file > defaults.
//
// Dependencies:
//   - github.com/spf13/viper: Configuration management
//   - internal/config/defaults: Default configuration values
//
// Configuration Sources:
//   - Environment variables: CODACY_* prefix (e.g., CODACY_API_TOKEN); LOG_LEVEL
//     is also honored unprefixed
//   - Config file: ~/.codacy-standard/config.yaml or ./config.yaml
//   - Command-line flags: Take precedence over all other sources
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/codacy-acme/basic-coding-standard/internal/errors"
)

// Config holds all CLI configuration.
type Config struct {
	// Codacy API
	APIToken     string
	Organization string
	Provider     string
	APIURL       string

	// Logging
	LogLevel string

	// Output Settings
	OutputFormat string // table, json, csv
	Verbose      bool
	Quiet        bool

	// Pagination / Throttle Settings
	PageSize      int // patterns per page when listing
	MutationDelay int // seconds to wait after each mutating call

	// Timeouts
	HealthTimeout int // seconds for the preflight probe

	// Config File Path (for discovery)
	ConfigFile string
}

// Load loads configuration from all sources with proper precedence.
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	ApplyDefaults(v)

	// Set environment variable prefix
	v.SetEnvPrefix("CODACY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// LOG_LEVEL is accepted without the prefix as well
	if err := v.BindEnv("log-level", "CODACY_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log-level: %w", err)
	}

	// Config file discovery
	homeDir, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(homeDir, ".codacy-standard"))
	}
	v.AddConfigPath(".") // Current directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Read config file (optional - ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		APIToken:      v.GetString("api-token"),
		Organization:  v.GetString("org-name"),
		Provider:      v.GetString("provider"),
		APIURL:        strings.TrimRight(v.GetString("api-url"), "/"),
		LogLevel:      v.GetString("log-level"),
		OutputFormat:  v.GetString("output-format"),
		Verbose:       v.GetBool("defaults.verbose"),
		Quiet:         v.GetBool("defaults.quiet"),
		PageSize:      v.GetInt("patterns.page-size"),
		MutationDelay: v.GetInt("throttle.mutation-delay"),
		HealthTimeout: v.GetInt("timeouts.health-check"),
		ConfigFile:    v.ConfigFileUsed(),
	}

	return cfg, nil
}

// LoadWithFlags loads configuration and applies flag overrides.
func LoadWithFlags(flagOverrides map[string]interface{}) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	// Apply flag overrides
	for key, value := range flagOverrides {
		switch key {
		case "api-url":
			if v, ok := value.(string); ok {
				cfg.APIURL = strings.TrimRight(v, "/")
			}
		case "api-token":
			if v, ok := value.(string); ok {
				cfg.APIToken = v
			}
		case "format":
			if v, ok := value.(string); ok {
				cfg.OutputFormat = v
			}
		case "verbose":
			if v, ok := value.(bool); ok {
				cfg.Verbose = v
			}
		case "quiet":
			if v, ok := value.(bool); ok {
				cfg.Quiet = v
			}
		}
	}

	return cfg, nil
}

// Validate checks that every required setting is present. All missing
// variables are reported together so a user can fix them in one pass.
func (c *Config) Validate() error {
	var missing []string
	if c.APIToken == "" {
		missing = append(missing, "CODACY_API_TOKEN")
	}
	if c.Organization == "" {
		missing = append(missing, "CODACY_ORG_NAME")
	}
	if c.Provider == "" {
		missing = append(missing, "CODACY_PROVIDER")
	}
	if len(missing) > 0 {
		return errors.NewConfigurationError(missing...)
	}
	return nil
}
