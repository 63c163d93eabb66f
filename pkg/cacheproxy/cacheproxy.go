package cacheproxy

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/sploitkit/sploitkit/pkg/config"
)

// Session is an HTTP client context whose traffic all flows through one
// authenticated caching proxy. Zero value is not usable; use New to create
// instances.
type Session struct {
	client *http.Client
	log    *slog.Logger
}

// New creates a cache proxy session. Proxy URL, auth key, and duration each
// resolve from the explicit option first and the configuration store second
// (config.Default() unless WithConfig injects one). All three are required;
// construction fails with ErrMissingConfig naming every field that resolved
// to nothing, not just the first.
func New(opts ...Option) (*Session, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	store := s.store
	if !s.storeSet {
		store = config.Default()
	}

	proxyURL := s.proxyURL
	if proxyURL == "" {
		proxyURL = store.CacheProxyURL.Or("")
	}
	authKey := s.authKey
	if authKey == "" {
		authKey = store.CacheAuthKey.Or("")
	}
	duration := s.duration
	if duration == "" {
		duration = store.CacheDuration.Or("")
	}

	missing := make([]string, 0, 3)
	if proxyURL == "" {
		missing = append(missing, "proxy URL")
	}
	if authKey == "" {
		missing = append(missing, "auth key")
	}
	if duration == "" {
		missing = append(missing, "cache duration")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("invalid proxy url %s: %w", proxyURL, err)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	transport.Proxy = http.ProxyURL(u)

	sess := &Session{
		client: &http.Client{
			Transport: &authTransport{
				base:     transport,
				authKey:  authKey,
				duration: duration,
			},
			Timeout: s.timeout,
		},
		log: s.logger,
	}

	if sess.log != nil {
		sess.log.Debug("cache proxy session configured",
			slog.String("proxy_url", proxyURL),
			slog.String("cache_duration", duration),
		)
	}

	return sess, nil
}

// Do issues the request through the proxy.
func (s *Session) Do(req *http.Request) (*http.Response, error) {
	return s.client.Do(req)
}

// Get issues a GET for the given absolute URL through the proxy.
func (s *Session) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return s.client.Do(req)
}

// Head issues a HEAD for the given absolute URL through the proxy.
func (s *Session) Head(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, err
	}
	return s.client.Do(req)
}

// Post issues a POST with the given body and Content-Type through the proxy.
// Note the caller contract: the cache cannot distinguish responses by body.
func (s *Session) Post(ctx context.Context, url, contentType string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	return s.client.Do(req)
}

// Client exposes the underlying *http.Client. Requests made through it keep
// the proxy routing and cache headers.
func (s *Session) Client() *http.Client {
	return s.client
}

// Close releases every pooled connection the session still holds.
func (s *Session) Close() {
	s.client.CloseIdleConnections()
	if s.log != nil {
		s.log.Debug("cache proxy session closed")
	}
}

// authTransport stamps the proxy's credential and cache lifetime onto every
// outgoing request. For https targets the headers travel inside the tunneled
// request, visible to the origin but not to the proxy itself.
type authTransport struct {
	base     http.RoundTripper
	authKey  string
	duration string
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.Header.Set("X-Cache-Auth-Key", t.authKey)
	out.Header.Set("X-Cache-Duration", t.duration)
	return t.base.RoundTrip(out)
}

func (t *authTransport) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	if c, ok := t.base.(closeIdler); ok {
		c.CloseIdleConnections()
	}
}
