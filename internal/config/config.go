// Package config holds environment-driven configuration for the client demo
// and the stub backend.
package config

import (
	"fmt"
	"net/url"
	"time"

	pkgconfig "github.com/AbbasAliNaqvi/FoodForConferencesGo/pkg/config"
)

// Client holds configuration for the ordering client.
type Client struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Backend API, including the /api prefix.
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:5050/api"`

	// Credentials used by the demo binary.
	Email    string `env:"DEMO_EMAIL" envDefault:"attendee@example.com"`
	Password string `env:"DEMO_PASSWORD" envDefault:"password123"`

	// Checkout behavior.
	Currency     string `env:"CHECKOUT_CURRENCY" envDefault:"usd"`
	MerchantName string `env:"MERCHANT_NAME" envDefault:"FoodForConferences"`

	// HTTP client.
	RequestTimeoutSecs int `env:"HTTP_TIMEOUT_SECONDS" envDefault:"10"`
	MaxRetries         int `env:"HTTP_MAX_RETRIES" envDefault:"2"`

	// Circuit breaker for backend calls.
	CBMaxRequests  uint32  `env:"CB_MAX_REQUESTS" envDefault:"1"`
	CBIntervalSecs int     `env:"CB_INTERVAL_SECONDS" envDefault:"60"`
	CBTimeoutSecs  int     `env:"CB_TIMEOUT_SECONDS" envDefault:"30"`
	CBFailureRatio float64 `env:"CB_FAILURE_RATIO" envDefault:"0.5"`
	CBMinRequests  uint32  `env:"CB_MIN_REQUESTS" envDefault:"5"`
}

// LoadClient reads client configuration from environment variables.
func LoadClient() (*Client, error) {
	cfg := &Client{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate performs sanity checks beyond what env parsing gives us.
func (c *Client) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("API_BASE_URL %q is not a valid absolute URL", c.APIBaseURL)
	}
	if len(c.Currency) != 3 {
		return fmt.Errorf("CHECKOUT_CURRENCY %q must be a 3-letter code", c.Currency)
	}
	if c.RequestTimeoutSecs <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT_SECONDS must be positive")
	}
	return nil
}

// RequestTimeout returns the HTTP request timeout as a duration.
func (c *Client) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSecs) * time.Second
}

// Server holds configuration for the stub backend.
type Server struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	HTTPPort            int `env:"STUB_HTTP_PORT" envDefault:"5050"`
	ShutdownTimeoutSecs int `env:"SHUTDOWN_TIMEOUT_SECONDS" envDefault:"10"`
}

// LoadServer reads stub backend configuration from environment variables.
func LoadServer() (*Server, error) {
	cfg := &Server{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, err
	}
	if cfg.HTTPPort <= 0 || cfg.HTTPPort > 65535 {
		return nil, fmt.Errorf("STUB_HTTP_PORT %d is out of range", cfg.HTTPPort)
	}
	return cfg, nil
}

// ShutdownTimeout returns the graceful shutdown window as a duration.
func (s *Server) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSecs) * time.Second
}
