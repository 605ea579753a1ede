package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration values.
type Config struct {
	AppBaseURL           string
	UseDropDownButton    bool
	DefaultPopupLikePref bool
	DefaultEmailLikePref bool
	PrefCacheTTL         time.Duration
}

// NewConfig creates a new Config instance, loading values from environment
// variables. The notification defaults mirror the plugin's activation
// defaults: popup on, email off.
func NewConfig() *Config {
	return &Config{
		AppBaseURL:           getEnv("APP_BASE_URL", "http://localhost:8080"),
		UseDropDownButton:    getEnvAsBool("LIKE_USE_DROPDOWN_BUTTON", false),
		DefaultPopupLikePref: getEnvAsBool("LIKE_DEFAULT_POPUP_PREF", true),
		DefaultEmailLikePref: getEnvAsBool("LIKE_DEFAULT_EMAIL_PREF", false),
		PrefCacheTTL:         time.Minute * time.Duration(getEnvAsInt("LIKE_PREF_CACHE_TTL_MINUTES", 30)),
	}
}

// GetAppBaseURL returns the base URL of the application.
func (c *Config) GetAppBaseURL() string {
	return c.AppBaseURL
}

// GetUseDropDownButton returns whether the profile like button is folded into
// the member options dropdown instead of rendered standalone.
func (c *Config) GetUseDropDownButton() bool {
	return c.UseDropDownButton
}

// GetDefaultPopupLikePref returns the popup notification default for users
// without an explicit preference.
func (c *Config) GetDefaultPopupLikePref() bool {
	return c.DefaultPopupLikePref
}

// GetDefaultEmailLikePref returns the email notification default for users
// without an explicit preference.
func (c *Config) GetDefaultEmailLikePref() bool {
	return c.DefaultEmailLikePref
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
