// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file from the working directory on first use and
// uses the caarlos0/env library for parsing environment variables into struct
// fields. Variables already present in the environment win over .env values.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/webroot/core/config"
//
//	type Config struct {
//		AppName string `env:"APP_NAME" envDefault:"webroot"`
//		Static  static.Config
//		Server  server.Config
//	}
//
//	func main() {
//		var cfg Config
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is parsed only once per process:
//
//	var cfg1 static.Config
//	config.Load(&cfg1) // Parses the environment
//
//	var cfg2 static.Config
//	config.Load(&cfg2) // Returns the cached value, cfg1 == cfg2
//
// Different types are cached independently. Reset drops every cached entry;
// tests use it after changing variables.
package config
