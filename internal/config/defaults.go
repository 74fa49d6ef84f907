package config

import (
	"github.com/spf13/viper"
)

// ApplyDefaults sets default configuration values in the provided Viper instance.
func ApplyDefaults(v *viper.Viper) {
	// Codacy API
	v.SetDefault("api-url", "https://app.codacy.com")

	// Logging
	v.SetDefault("log-level", "INFO")

	// Output Settings
	v.SetDefault("output-format", "table") // table, json, csv
	v.SetDefault("defaults.verbose", false)
	v.SetDefault("defaults.quiet", false)

	// Pattern listing
	v.SetDefault("patterns.page-size", 100)

	// Throttle Settings
	v.SetDefault("throttle.mutation-delay", 2) // seconds after each mutating call

	// Timeouts
	v.SetDefault("timeouts.health-check", 5) // seconds
}
