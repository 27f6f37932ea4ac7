package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/transcribe-proxy/internal/logger"
)

// DefaultOpenAIBaseURL is the production OpenAI API base. Tests and
// self-hosted deployments override it via OPENAI_BASE_URL.
const DefaultOpenAIBaseURL = "https://api.openai.com"

const defaultUpstreamTimeout = 60 * time.Second

// Config is the immutable process configuration, constructed once at startup.
type Config struct {
	// Host and Port define the listen address.
	Host string
	Port int

	// OpenAIAPIKey authenticates outbound transcription calls. May be empty;
	// requests then fail with a CONFIG_ERROR rather than at startup, so the
	// health endpoint stays available for diagnosis.
	OpenAIAPIKey string
	// ClientToken is the shared-secret required from clients. Empty disables
	// client authentication.
	ClientToken string
	// CORSOrigins lists allowed browser origins. Empty disables CORS handling.
	CORSOrigins []string

	// OpenAIBaseURL is the upstream API base URL.
	OpenAIBaseURL string
	// UpstreamTimeout bounds the total duration of one upstream call.
	UpstreamTimeout time.Duration

	// Log configures structured logging.
	Log logger.Config
}

// Load reads configuration from the environment. A local .env file is loaded
// first if present (development convenience; real deployments set variables
// directly).
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 8080)
	v.SetDefault("OPENAI_BASE_URL", DefaultOpenAIBaseURL)
	v.SetDefault("UPSTREAM_TIMEOUT_SEC", 60)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("LOG_TIMESTAMP", true)

	cfg := &Config{
		Host:            v.GetString("HOST"),
		Port:            v.GetInt("PORT"),
		OpenAIAPIKey:    strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
		ClientToken:     strings.TrimSpace(v.GetString("APP_CLIENT_TOKEN")),
		CORSOrigins:     splitCSV(v.GetString("CORS_ALLOW_ORIGINS")),
		OpenAIBaseURL:   strings.TrimRight(v.GetString("OPENAI_BASE_URL"), "/"),
		UpstreamTimeout: time.Duration(v.GetInt("UPSTREAM_TIMEOUT_SEC")) * time.Second,
		Log: logger.Config{
			Level:     v.GetString("LOG_LEVEL"),
			Format:    v.GetString("LOG_FORMAT"),
			Output:    v.GetString("LOG_OUTPUT"),
			NoColor:   v.GetBool("LOG_NO_COLOR"),
			Timestamp: v.GetBool("LOG_TIMESTAMP"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 0 and 65535 (got: %d)", c.Port)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT_SEC must be positive (got: %s)", c.UpstreamTimeout)
	}
	if c.OpenAIBaseURL == "" {
		return fmt.Errorf("OPENAI_BASE_URL must not be empty")
	}
	return nil
}

// HasOpenAIKey reports whether an upstream API key is configured.
func (c *Config) HasOpenAIKey() bool {
	return c.OpenAIAPIKey != ""
}

// ClientTokenRequired reports whether client authentication is enabled.
func (c *Config) ClientTokenRequired() bool {
	return c.ClientToken != ""
}

// CORSEnabled reports whether any allowed origin is configured.
func (c *Config) CORSEnabled() bool {
	return len(c.CORSOrigins) > 0
}

// splitCSV splits a comma-separated value, trimming whitespace and dropping
// empty items.
func splitCSV(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
