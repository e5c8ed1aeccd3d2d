// Package config loads application configuration from environment variables
// into typed structs using github.com/caarlos0/env. A .env file in the working
// directory is loaded once, if present, before the first parse so local
// development does not need exported variables.
//
// # Usage
//
//	type serverConfig struct {
//		Addr     string `env:"HTTP_ADDR" envDefault:":8080"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg serverConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
//
// MustLoad panics on failure and suits configuration the process cannot start
// without.
package config
