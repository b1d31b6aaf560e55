// Package config holds runtime settings for the storefront CLI and loads
// them from defaults, an optional JSON file, and command-line flags, in
// that order of precedence.
package config

import "time"

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - APIEndpoint: base URL of the bookstore REST API.
//   - RequestTimeout: per-request HTTP timeout.
//   - S3*: the S3-compatible object store that keeps product thumbnails.
//   - PresignTTL: validity window of generated thumbnail URLs.
type Config struct {
	APIEndpoint    string
	RequestTimeout time.Duration

	S3Endpoint string
	S3Region   string
	S3Bucket   string
	S3User     string
	S3Password string
	PresignTTL time.Duration
}

// LoadDefaults populates c with sensible defaults for local development.
func (c *Config) LoadDefaults() {
	c.APIEndpoint = "https://localhost:7014"
	c.RequestTimeout = 15 * time.Second
	c.S3Endpoint = "http://localhost:9000"
	c.S3Region = "us-east-1"
	c.S3Bucket = "bookvite"
	c.PresignTTL = 15 * time.Minute
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
