package cacheproxy

import (
	"log/slog"
	"time"

	"github.com/sploitkit/sploitkit/pkg/config"
)

// settings accumulates constructor options. Empty strings mean "not given"
// and fall through to the configuration store, so an empty explicit value
// cannot mask a missing one.
type settings struct {
	proxyURL string
	authKey  string
	duration string

	store    config.Config
	storeSet bool

	timeout time.Duration
	logger  *slog.Logger
}

func defaultSettings() *settings {
	return &settings{}
}

// Option configures cache proxy session construction.
type Option func(*settings)

// WithProxyURL sets the forward proxy endpoint, e.g. "http://cache:8080".
func WithProxyURL(proxyURL string) Option {
	return func(s *settings) {
		if proxyURL != "" {
			s.proxyURL = proxyURL
		}
	}
}

// WithAuthKey sets the opaque credential sent as X-Cache-Auth-Key.
func WithAuthKey(key string) Option {
	return func(s *settings) {
		if key != "" {
			s.authKey = key
		}
	}
}

// WithDuration sets the cache lifetime sent as X-Cache-Duration. The value
// is passed through untouched; the proxy defines the syntax.
func WithDuration(duration string) Option {
	return func(s *settings) {
		if duration != "" {
			s.duration = duration
		}
	}
}

// WithConfig injects the configuration store consulted for fields no
// explicit option covers. Without it the session reads config.Default().
func WithConfig(cfg config.Config) Option {
	return func(s *settings) {
		s.store = cfg
		s.storeSet = true
	}
}

// WithTimeout bounds each request end to end. Zero or negative values are
// ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithLogger attaches a logger for debug-level lifecycle events. Without one
// the session is silent.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		if log != nil {
			s.logger = log
		}
	}
}
