// Package config loads the application configuration from a yaml file and
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, scraper behavior,
// the external providers, and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"5m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Crawls issue up to `limit` provider calls, so this is deliberately generous.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"4m" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins the CORS middleware accepts
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:3000,http://localhost:5173,http://127.0.0.1:8000" yaml:"allowedOrigins"` //nolint: lll
	} `yaml:"http"`

	// Scraper contains crawl orchestration settings
	Scraper struct {
		// AllowedDomain restricts scrape targets to this domain and its subdomains
		AllowedDomain string `env:"SCRAPER_ALLOWED_DOMAIN" env-default:"kenyalaw.org" yaml:"allowedDomain"`
		// DefaultLimit is the page limit applied when a request omits one
		DefaultLimit int `env:"SCRAPER_DEFAULT_LIMIT" env-default:"10" yaml:"defaultLimit"`
		// MaxLimit is the ceiling for the per-request page limit
		MaxLimit int `env:"SCRAPER_MAX_LIMIT" env-default:"50" yaml:"maxLimit"`
		// FetchConcurrency bounds the number of concurrent provider calls per crawl
		FetchConcurrency int `env:"SCRAPER_FETCH_CONCURRENCY" env-default:"3" yaml:"fetchConcurrency"`
		// FetchDelay is a polite pause applied by each fetch worker between pages
		FetchDelay time.Duration `env:"SCRAPER_FETCH_DELAY" env-default:"50ms" yaml:"fetchDelay"`
	} `yaml:"scraper"`

	// Firecrawl configures the external scraping provider
	Firecrawl struct {
		// APIKey authenticates against the FireCrawl API. Required.
		APIKey string `env:"FIRECRAWLAPI_KEY" yaml:"apiKey"`
		// BaseURL overrides the FireCrawl endpoint; empty selects the public API
		BaseURL string `env:"FIRECRAWL_BASE_URL" yaml:"baseURL"`
		// Timeout is the per-call timeout for provider requests
		Timeout time.Duration `env:"FIRECRAWL_TIMEOUT" env-default:"60s" yaml:"timeout"`
	} `yaml:"firecrawl"`

	// Gemini configures the language model used by the chat endpoint
	Gemini struct {
		// APIKey authenticates against the Gemini API; chat is disabled when empty
		APIKey string `env:"GEMINI_API_KEY" yaml:"apiKey"`
		// Model is the Gemini model name
		Model string `env:"GEMINI_MODEL" env-default:"gemini-2.5-flash" yaml:"model"`
		// Timeout is the per-call timeout for model requests
		Timeout time.Duration `env:"GEMINI_TIMEOUT" env-default:"60s" yaml:"timeout"`
	} `yaml:"gemini"`

	// Docstore configures the in-memory document store backing the chat endpoint
	Docstore struct {
		// MaxDocuments caps the number of retained crawl documents; the oldest
		// is evicted when the cap is exceeded
		MaxDocuments int `env:"DOCSTORE_MAX_DOCUMENTS" env-default:"100" yaml:"maxDocuments"`
	} `yaml:"docstore"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// ErrMissingAPIKey is returned when no FireCrawl API key is configured. The
// service cannot start without one.
var ErrMissingAPIKey = errors.New("FIRECRAWLAPI_KEY is not set")

// Load receives the path for a yaml config file and returns a filled Config
// struct. When the file does not exist, configuration is read from the
// environment alone. A missing FireCrawl API key is a fatal configuration
// error.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if _, err := os.Stat(configPath); err == nil {
		if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
	}

	if cfg.Firecrawl.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	return &cfg, nil
}
