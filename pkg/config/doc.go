// Package config loads typed configuration from environment variables.
//
// Structs declare their variables with caarlos0/env tags; Load fills them,
// reading an optional .env file first via godotenv. Every configuration type
// is parsed once per process and served from a cache afterwards.
//
//	var cfg struct {
//	    Server httpserver.Config
//	    Log    logger.Config
//	}
//	config.MustLoad(&cfg)
//
// LoadEnv loads additional .env files explicitly. Failures are reported as
// ErrParsingConfig or ErrLoadingEnvFile joined with the underlying error, so
// errors.Is works on both.
package config
