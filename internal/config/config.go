// Package config loads runtime settings from environment variables.
//
// A .env file in the working directory is loaded first, if present;
// variables already set in the environment take precedence over it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/wtask/dian/internal/logger"
)

// Relay - chatroom server settings.
type Relay struct {
	// Backlog - listen backlog of the relay socket
	Backlog int `env:"LISTEN_BACKLOG" envDefault:"10"`
	Log     logger.Config
}

// Calculator - calculator server settings.
type Calculator struct {
	// ShutdownTimeout - max time to wait for workers on stop
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	Log             logger.Config
}

// Client - settings of interactive clients.
type Client struct {
	Log logger.Config
}

var dotenv sync.Once

// Load - parses environment into cfg, cfg must be a pointer to struct.
func Load(cfg any) error {
	var dotenvErr error
	dotenv.Do(func() {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			dotenvErr = err
		}
	})
	if dotenvErr != nil {
		return fmt.Errorf("config.Load: can't read .env: %w", dotenvErr)
	}
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}
	return nil
}

// MustLoad - same as Load but panics on error.
func MustLoad(cfg any) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
