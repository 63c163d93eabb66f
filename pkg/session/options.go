package session

import (
	"log/slog"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"

	"github.com/sploitkit/sploitkit/pkg/config"
	"github.com/sploitkit/sploitkit/pkg/useragent"
)

// settings accumulates constructor options before resolution against the
// configuration store. Tri-state fields stay unset unless an option touches
// them so the store can fill the gap.
type settings struct {
	baseURL    string
	perRequest config.Optional[bool]
	userAgent  useragent.Provider

	store    config.Config
	storeSet bool

	timeout time.Duration
	headers map[string]string
	logger  *slog.Logger

	camouflage bool
	hello      utls.ClientHelloID
}

func defaultSettings() *settings {
	return &settings{
		headers: make(map[string]string),
	}
}

// Option configures session construction.
type Option func(*settings)

// WithBaseURL sets the base URL that relative request URLs resolve against.
// No validation happens here; a malformed base surfaces when the first
// request is issued.
func WithBaseURL(base string) Option {
	return func(s *settings) {
		s.baseURL = base
	}
}

// WithPerRequestConnections forces every request onto its own connection,
// closed after the response completes. Passing false pins pooled behavior
// even when the configuration store asks for per-request connections.
func WithPerRequestConnections(enabled bool) Option {
	return func(s *settings) {
		s.perRequest = config.Some(enabled)
	}
}

// WithUserAgent sets the provider consulted for the User-Agent header on
// every outgoing request. See package useragent for the built-in strategies.
func WithUserAgent(p useragent.Provider) Option {
	return func(s *settings) {
		if p != nil {
			s.userAgent = p
		}
	}
}

// WithConfig injects the configuration store consulted for settings no
// explicit option covers. Without it the session reads config.Default().
func WithConfig(cfg config.Config) Option {
	return func(s *settings) {
		s.store = cfg
		s.storeSet = true
	}
}

// WithTimeout bounds each request end to end, including redirects and body
// reads. Zero or negative values are ignored and the client default of no
// timeout applies.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithHeader adds a default header sent on every request. Per-request values
// win over session defaults. In per-request connection mode a Connection
// default is discarded so the mode stays unadvertised on the wire.
func WithHeader(key, value string) Option {
	return func(s *settings) {
		if key != "" {
			s.headers[http.CanonicalHeaderKey(key)] = value
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

// WithTLSCamouflage enables uTLS ClientHello parroting with the default
// Firefox parrot. Camouflaged connections speak HTTP/1.1 only.
func WithTLSCamouflage() Option {
	return WithClientHello(utls.HelloFirefox_55)
}

// WithClientHello enables uTLS ClientHello parroting with a specific parrot.
func WithClientHello(hello utls.ClientHelloID) Option {
	return func(s *settings) {
		s.camouflage = true
		s.hello = hello
	}
}
