// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11` to
// deliver a small API that:
//
//   - Loads a `.env` file from the working directory when one exists.
//   - Parses the environment into any Go struct using `env` field tags.
//   - Exposes a panicking helper (`MustLoad`) for configuration the process
//     cannot start without.
//
// # Usage
//
// Create a struct describing the configuration and annotate its fields:
//
//	type AppConfig struct {
//	    Dataset string `env:"PLACEGEN_DATASET"`
//	    Env     string `env:"APP_ENV" envDefault:"development"`
//	}
//
// Then populate it at startup:
//
//	var cfg AppConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
package config
