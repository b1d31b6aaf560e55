package config

import (
	"flag"
	"os"
	"time"

	"github.com/bookvite/storefront/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string            base URL of the bookstore API (default from Config)
//	-t int               request timeout in seconds (default from Config)
//	-s3-endpoint string  object store endpoint
//	-s3-bucket string    thumbnail bucket
//	-s3-user string      object store access key
//	-s3-password string  object store secret key
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{
		"-a", "-t", "-s3-endpoint", "-s3-bucket", "-s3-user", "-s3-password",
	})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIEndpoint, "a", cfg.APIEndpoint, "base URL of the bookstore API")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.S3Endpoint, "s3-endpoint", cfg.S3Endpoint, "object store endpoint")
	fs.StringVar(&cfg.S3Bucket, "s3-bucket", cfg.S3Bucket, "thumbnail bucket")
	fs.StringVar(&cfg.S3User, "s3-user", cfg.S3User, "object store access key")
	fs.StringVar(&cfg.S3Password, "s3-password", cfg.S3Password, "object store secret key")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
