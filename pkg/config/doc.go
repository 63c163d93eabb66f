// Package config holds the process-wide defaults consulted by the kit's
// session constructors.
//
// Every optional setting is represented as an Optional, a small option type
// whose unset state is distinct from any concrete value, including false and
// the empty string, so constructors can tell "fall back to the library
// default" apart from "explicitly disabled". The user-agent provider is a
// function and uses nil as its unset state instead.
//
// Resolution order everywhere in the kit is: explicit constructor option,
// then configuration store, then hard-coded default. The store itself never
// validates anything; a missing value only becomes an error when a
// constructor that requires it consumes it.
//
// # Usage
//
// Thread a Config through session construction explicitly:
//
//	cfg := config.Config{
//	    SessionPerRequestConn: config.Some(true),
//	    CacheProxyURL:         config.Some("http://cache:8080"),
//	}
//	s := session.New(session.WithConfig(cfg))
//
// Or populate the shared default instance once at startup and let simple call
// sites rely on it:
//
//	config.SetDefault(cfg)
//	s := session.New()
//
// # Environment
//
// FromEnv builds a Config from SPLOITKIT_* variables (loading a .env file
// once, if one exists), wrapping github.com/joho/godotenv and
// github.com/caarlos0/env/v11:
//
//	SPLOITKIT_SESSION_PER_REQUEST_CONN=true
//	SPLOITKIT_CACHE_PROXY_URL=http://cache:8080
//	SPLOITKIT_CACHE_AUTH_KEY=k1
//	SPLOITKIT_CACHE_DURATION=5m
//
// Parse failures are reported wrapped in ErrParsingConfig.
package config
