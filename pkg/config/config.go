// Package config loads application configuration: the data-directory
// location from the environment (.env) and the user settings YAML that
// declares accounts and sheet sources. Configuration is loaded once and
// passed down as an immutable value; nothing re-reads it mid-computation.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Env is the environment-level configuration.
type Env struct {
	DataDir string
	Debug   bool
}

// LoadEnv loads environment configuration. A .env file in the current
// directory is loaded automatically if present; a custom path may be given.
func LoadEnv(envPath ...string) (*Env, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		return nil, fmt.Errorf("DATA_DIR is not set: run `monzo-beancount init` or set it in .env")
	}

	return &Env{
		DataDir: dataDir,
		Debug:   os.Getenv("DEBUG") == "true",
	}, nil
}
