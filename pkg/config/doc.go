// Package config loads application configuration from environment
// variables into tagged structs, with an optional .env file for local
// development.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env. Each
// configuration type is parsed at most once per process and served from a
// cache afterwards, so independent components can Load the same struct
// without re-reading the environment.
//
//	type ClientConfig struct {
//		BaseURL  string `env:"USERKIT_API_URL" envDefault:"http://localhost:8080"`
//		StateDir string `env:"USERKIT_STATE_DIR"`
//	}
//
//	var cfg ClientConfig
//	if err := config.Load(&cfg); err != nil { ... }
//
// Reset clears the cache, which tests use to reload under a changed
// environment.
package config
