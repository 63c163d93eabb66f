package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig mirrors Config for environment parsing. Pointer fields record
// presence, so only variables actually set in the environment mark the
// corresponding Config field as set.
type envConfig struct {
	SessionPerRequestConn *bool   `env:"SPLOITKIT_SESSION_PER_REQUEST_CONN"`
	CacheProxyURL         *string `env:"SPLOITKIT_CACHE_PROXY_URL"`
	CacheAuthKey          *string `env:"SPLOITKIT_CACHE_AUTH_KEY"`
	CacheDuration         *string `env:"SPLOITKIT_CACHE_DURATION"`
}

var defaultEnvLoaded sync.Once

// FromEnv builds a Config from SPLOITKIT_* environment variables. A .env file
// in the working directory is loaded once per process if present. Variables
// absent from the environment leave the corresponding field unset. The
// user-agent provider is a function and has no environment representation.
func FromEnv() (Config, error) {
	defaultEnvLoaded.Do(func() {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load()
	})

	var ec envConfig
	if err := env.Parse(&ec); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	var cfg Config
	if ec.SessionPerRequestConn != nil {
		cfg.SessionPerRequestConn = Some(*ec.SessionPerRequestConn)
	}
	if ec.CacheProxyURL != nil {
		cfg.CacheProxyURL = Some(*ec.CacheProxyURL)
	}
	if ec.CacheAuthKey != nil {
		cfg.CacheAuthKey = Some(*ec.CacheAuthKey)
	}
	if ec.CacheDuration != nil {
		cfg.CacheDuration = Some(*ec.CacheDuration)
	}
	return cfg, nil
}
