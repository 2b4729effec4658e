package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Env holds the process settings of the coupongen binaries.
type Env struct {
	Log    LogConfig
	Render RenderConfig
	Server ServerConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `envconfig:"COUPON_LOG_LEVEL" default:"info"`
	Pretty bool   `envconfig:"COUPON_LOG_PRETTY" default:"false"`
}

// RenderConfig holds defaults applied when a request or document omits them.
type RenderConfig struct {
	Density float64 `envconfig:"COUPON_DENSITY" default:"1"`
	// Font is a TTF/OTF path replacing the built-in Go Regular face.
	Font string `envconfig:"COUPON_FONT"`
}

// ServerConfig holds preview server configuration.
type ServerConfig struct {
	Addr            string `envconfig:"COUPON_ADDR" default:":8080"`
	ShutdownTimeout int    `envconfig:"COUPON_SHUTDOWN_TIMEOUT" default:"10"` // seconds
}

// LoadEnv seeds the environment from the given .env files, if they
// exist, and parses it into Env. Variables already set win over the
// files. With no files, ".env" in the working directory is tried.
func LoadEnv(files ...string) (*Env, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var env Env
	if err := envconfig.Process("", &env); err != nil {
		return nil, err
	}
	return &env, nil
}
