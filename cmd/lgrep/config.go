package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every environment variable name below.
const envPrefix = "LGREP"

// envConfig holds environment-based defaults for the CLI flags.
// Every value can still be overridden by an explicit flag.
type envConfig struct {
	// ColorLine is the line number text color.
	// Env: LGREP_COLOR_LINE (default: dark-green)
	ColorLine string `envconfig:"COLOR_LINE" default:"dark-green"`

	// ColorMatch is the matched text color.
	// Env: LGREP_COLOR_MATCH (default: dark-red)
	ColorMatch string `envconfig:"COLOR_MATCH" default:"dark-red"`

	// NoColor disables colored output.
	// Env: LGREP_NO_COLOR (default: false)
	NoColor bool `envconfig:"NO_COLOR" default:"false"`

	// Limit is the default matched lines limit, 0 for unlimited.
	// Env: LGREP_LIMIT (default: 0)
	Limit uint64 `envconfig:"LIMIT" default:"0"`
}

// loadEnvConfig loads flag defaults from an optional .env file in the
// current directory and from the environment. Environment variables take
// precedence over the .env file contents.
func loadEnvConfig() (envConfig, error) {
	if err := loadDotEnv(".env"); err != nil {
		return envConfig{}, err
	}
	var cfg envConfig
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return envConfig{}, err
	}
	return cfg, nil
}

// loadDotEnv loads environment variables from a .env file.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}
