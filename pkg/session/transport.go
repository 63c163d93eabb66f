package session

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"

	"github.com/sploitkit/sploitkit/pkg/useragent"
)

// newTransport builds the session transport from the process default so proxy
// environment handling and pool limits carry over. Certificate verification is
// off for every session; lab targets rarely present valid chains.
func newTransport(perRequest bool) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	if perRequest {
		// A negative per-host idle limit makes the pool refuse every returned
		// connection, so each one is closed at release on all exit paths.
		// DisableKeepAlives would do the same but advertises "Connection:
		// close" on the wire, which this mode must not do.
		t.MaxIdleConnsPerHost = -1
		disableHTTP2(t)
	}
	return t
}

// disableHTTP2 pins the transport to HTTP/1.1. A multiplexed protocol would
// put several requests on one connection and defeat connection-per-request
// observability.
func disableHTTP2(t *http.Transport) {
	t.ForceAttemptHTTP2 = false
	t.TLSNextProto = make(map[string]func(string, *tls.Conn) http.RoundTripper)
}

// headerTransport finalizes headers at send time: session defaults first,
// without clobbering per-request values, then the User-Agent provider's
// verdict, which overrides everything including omission.
type headerTransport struct {
	base      http.RoundTripper
	userAgent useragent.Provider
	headers   map[string]string // canonical keys
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	for key, value := range t.headers {
		if _, exists := out.Header[key]; !exists {
			out.Header.Set(key, value)
		}
	}
	if t.userAgent != nil {
		if ua, ok := t.userAgent(); ok {
			out.Header.Set("User-Agent", ua)
		} else {
			// An empty value tells the http package to send no User-Agent
			// header line at all.
			out.Header.Set("User-Agent", "")
		}
	}
	return t.base.RoundTrip(out)
}

func (t *headerTransport) CloseIdleConnections() {
	type closeIdler interface{ CloseIdleConnections() }
	if c, ok := t.base.(closeIdler); ok {
		c.CloseIdleConnections()
	}
}

// camouflageDialTLS returns a TLS dialer that handshakes with a uTLS
// ClientHello imitating the given parrot instead of crypto/tls's own
// fingerprint. ALPN is pinned to HTTP/1.1; the transport it installs into
// must have HTTP/2 disabled. Proxied requests never reach this dialer, so
// camouflage does not apply to them.
func camouflageDialTLS(hello utls.ClientHelloID) func(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		raw, err := dialer.DialContext(ctx, network, addr)
		if err != nil {
			return nil, err
		}
		conn := utls.UClient(raw, &utls.Config{
			ServerName:         host,
			InsecureSkipVerify: true,
			NextProtos:         []string{"http/1.1"},
		}, hello)
		if err := conn.HandshakeContext(ctx); err != nil {
			_ = raw.Close()
			return nil, err
		}
		return conn, nil
	}
}
