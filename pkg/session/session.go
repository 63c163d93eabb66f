package session

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/sploitkit/sploitkit/pkg/config"
	"github.com/sploitkit/sploitkit/pkg/useragent"
)

// Session is a reusable HTTP client context carrying a base URL, a
// verification-free TLS policy, a User-Agent strategy, and a connection
// lifecycle policy. Zero value is not usable; use New to create instances.
type Session struct {
	client  *http.Client
	baseURL string
	log     *slog.Logger
}

// New creates a session. Settings no option covers are read from the
// configuration store (config.Default() unless WithConfig injects one) and
// fall back to pooled connections with the standard client User-Agent.
//
// Construction never fails. A malformed base URL surfaces as an error from
// the first request that needs it.
func New(opts ...Option) *Session {
	s := defaultSettings()
	for _, opt := range opts {
		opt(s)
	}

	store := s.store
	if !s.storeSet {
		store = config.Default()
	}

	perRequest := false
	if v, ok := s.perRequest.Value(); ok {
		perRequest = v
	} else if v, ok := store.SessionPerRequestConn.Value(); ok {
		perRequest = v
	}

	ua := s.userAgent
	if ua == nil {
		ua = store.SessionUserAgent
	}
	if ua == nil {
		ua = useragent.Default
	}

	if perRequest {
		// The mode must stay unadvertised: no keep-alive negotiation or
		// close on the wire. Callers wanting a Connection header set it on
		// individual requests.
		delete(s.headers, "Connection")
	}

	transport := newTransport(perRequest)
	if s.camouflage {
		transport.DialTLSContext = camouflageDialTLS(s.hello)
		disableHTTP2(transport)
	}

	jar, _ := cookiejar.New(nil)

	sess := &Session{
		client: &http.Client{
			Transport: &headerTransport{
				base:      transport,
				userAgent: ua,
				headers:   s.headers,
			},
			Jar:     jar,
			Timeout: s.timeout,
		},
		baseURL: s.baseURL,
		log:     s.logger,
	}

	if sess.log != nil {
		sess.log.Debug("session configured",
			slog.String("base_url", s.baseURL),
			slog.Bool("per_request_connections", perRequest),
			slog.Bool("tls_camouflage", s.camouflage),
		)
	}

	return sess
}

// Do issues the request through the session. A relative request URL is
// resolved against the base URL first; an absolute one bypasses the base
// entirely.
func (s *Session) Do(req *http.Request) (*http.Response, error) {
	if req.URL != nil && !req.URL.IsAbs() && s.baseURL != "" {
		base, err := url.Parse(s.baseURL)
		if err != nil {
			return nil, err
		}
		req.URL = base.ResolveReference(req.URL)
	}
	return s.client.Do(req)
}

// Get issues a GET to the given URL, resolved against the base URL when
// relative.
func (s *Session) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := s.newRequest(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	return s.client.Do(req)
}

// Head issues a HEAD to the given URL, resolved against the base URL when
// relative.
func (s *Session) Head(ctx context.Context, url string) (*http.Response, error) {
	req, err := s.newRequest(ctx, http.MethodHead, url, nil)
	if err != nil {
		return nil, err
	}
	return s.client.Do(req)
}

// Post issues a POST with the given body and Content-Type.
func (s *Session) Post(ctx context.Context, url, contentType string, body io.Reader) (*http.Response, error) {
	req, err := s.newRequest(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	return s.client.Do(req)
}

// PostForm issues a POST with the form data URL-encoded as the body.
func (s *Session) PostForm(ctx context.Context, url string, data url.Values) (*http.Response, error) {
	return s.Post(ctx, url, "application/x-www-form-urlencoded", strings.NewReader(data.Encode()))
}

// Client exposes the underlying *http.Client. Requests made through it keep
// the session's TLS policy, default headers, and User-Agent handling but
// bypass base URL resolution.
func (s *Session) Client() *http.Client {
	return s.client
}

// Close releases every pooled connection the session still holds. The session
// remains usable afterward; new requests dial fresh connections.
func (s *Session) Close() {
	s.client.CloseIdleConnections()
	if s.log != nil {
		s.log.Debug("session closed")
	}
}

func (s *Session) newRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Request, error) {
	target, err := s.resolveURL(rawURL)
	if err != nil {
		return nil, err
	}
	return http.NewRequestWithContext(ctx, method, target, body)
}

// resolveURL joins a request URL with the base URL using RFC 3986 reference
// resolution, the way a browser resolves a relative link against a page URL.
func (s *Session) resolveURL(rawURL string) (string, error) {
	if s.baseURL == "" {
		return rawURL, nil
	}
	ref, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	if ref.IsAbs() {
		return rawURL, nil
	}
	base, err := url.Parse(s.baseURL)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}
