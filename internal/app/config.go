package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the mobile core and its binaries.
type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Platform the host app runs on; only android triggers the runtime
	// camera permission prompt.
	Platform string `envconfig:"APP_PLATFORM" default:"android"`

	APIBaseURL string        `envconfig:"API_BASE_URL" default:"http://127.0.0.1:8090"`
	APITimeout time.Duration `envconfig:"API_TIMEOUT" default:"15s"`

	StubEnabled        bool          `envconfig:"STUB_ENABLED" default:"true"`
	StubAddr           string        `envconfig:"STUB_ADDR" default:":8090"`
	StubReadTimeout    time.Duration `envconfig:"STUB_READ_TIMEOUT" default:"15s"`
	StubWriteTimeout   time.Duration `envconfig:"STUB_WRITE_TIMEOUT" default:"15s"`
	StubRequestTimeout time.Duration `envconfig:"STUB_REQUEST_TIMEOUT" default:"30s"`
	StubRateLimit      int           `envconfig:"STUB_RATE_LIMIT" default:"300"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
