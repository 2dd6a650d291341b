package config

import (
	"fmt"
	"strings"
)

var (
	validLogLevels    = []string{"debug", "info", "warn", "error"}
	validLogFormats   = []string{"text", "json"}
	validEnvironments = []string{"dev", "development", "staging", "production"}
)

// Validate checks the loaded configuration for values that would only
// fail later, at listener or pool construction time.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of %s, got %q", strings.Join(validLogLevels, ", "), c.LogLevel)
	}
	if !contains(validLogFormats, c.LogFormat) {
		return fmt.Errorf("LOG_FORMAT must be one of %s, got %q", strings.Join(validLogFormats, ", "), c.LogFormat)
	}
	if !contains(validEnvironments, c.Environment) {
		return fmt.Errorf("ENVIRONMENT must be one of %s, got %q", strings.Join(validEnvironments, ", "), c.Environment)
	}
	if c.DBMaxConns < 1 {
		return fmt.Errorf("DB_MAX_CONNS must be at least 1, got %d", c.DBMaxConns)
	}
	return nil
}

// Warnings returns non-fatal configuration concerns worth logging at
// startup.
func (c *Config) Warnings() []string {
	var warnings []string

	if c.Environment == "production" || c.Environment == "staging" {
		if c.DBPassword == "postgres" {
			warnings = append(warnings, "DB_PASSWORD is using the default value; set a real password")
		}
		if len(c.APIKey) < 16 {
			warnings = append(warnings, "API_KEY is shorter than 16 characters; generate a stronger key with: openssl rand -hex 32")
		}
	}

	return warnings
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
