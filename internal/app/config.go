package app

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds runtime wiring options for building the app. Values come
// from the environment (a local .env file is honoured); flags may
// override them afterwards.
type Config struct {
	// BaseURL is the versioned API root, e.g. http://localhost:8000/api/v1.
	BaseURL string `env:"VENDORHUB_BASE_URL" envDefault:"http://localhost:8000/api/v1"`
	// Home is the state directory, e.g. $HOME/.vendorhub.
	Home string `env:"VENDORHUB_HOME"`
	// AdminEmail receives recovery and access requests.
	AdminEmail string `env:"VENDORHUB_ADMIN_EMAIL" envDefault:"admin@amberenterprises.com"`
	// Timeout bounds each API round-trip. The core itself defines no
	// timeout; this is the transport policy.
	Timeout time.Duration `env:"VENDORHUB_TIMEOUT" envDefault:"10s"`
	Verbose bool          `env:"VENDORHUB_VERBOSE"`
}

// LoadConfig reads .env when present, then parses the environment.
func LoadConfig() (Config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
