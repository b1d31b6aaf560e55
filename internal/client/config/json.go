package config

import (
	"encoding/json"
	"os"

	"github.com/bookvite/storefront/internal/flagx"
	"github.com/bookvite/storefront/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15s"
// or as integer nanoseconds. After parsing, non-empty values are copied
// into the runtime Config.
type JsonConfig struct {
	APIEndpoint    string         `json:"api_endpoint"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	S3Endpoint     string         `json:"s3_endpoint"`
	S3Region       string         `json:"s3_region"`
	S3Bucket       string         `json:"s3_bucket"`
	S3User         string         `json:"s3_user"`
	S3Password     string         `json:"s3_password"`
	PresignTTL     timex.Duration `json:"presign_ttl"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags (via
// flagx.JsonConfigFlags); if neither is set, no JSON is loaded. Read or
// unmarshal errors panic, since a config file that was explicitly pointed
// at but cannot be used is not something to run past.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIEndpoint != "" {
		cfg.APIEndpoint = jc.APIEndpoint
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.S3Endpoint != "" {
		cfg.S3Endpoint = jc.S3Endpoint
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3User != "" {
		cfg.S3User = jc.S3User
	}
	if jc.S3Password != "" {
		cfg.S3Password = jc.S3Password
	}
	if jc.PresignTTL.Duration != 0 {
		cfg.PresignTTL = jc.PresignTTL.Duration
	}
}
