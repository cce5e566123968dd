package config

import (
	"context"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=3001"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`

	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	// DatabasePath is the SQLite file; parent directories are created on open.
	DatabasePath string `env:"DATABASE_PATH, default=data/careerfair.sqlite"`
	// UploadDir is the root for stored resume files, served under /uploads.
	UploadDir string `env:"UPLOAD_DIR, default=uploads"`
}

// Load reads configuration from environment variables using go-envconfig.
// A malformed environment is unrecoverable, so it panics.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// IsDevelopment reports whether the server runs with development behaviour
// such as error details in responses.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
