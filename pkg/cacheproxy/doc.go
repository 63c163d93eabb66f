// Package cacheproxy provides an HTTP session that forces every request
// through an authenticated caching proxy, for CTF and exploit-development
// workflows where repeated probes against a fragile or rate-limited target
// should be answered from a cache instead.
//
// The session routes both http and https traffic through the proxy as a
// forward proxy and attaches two headers the proxy expects on every request:
//
//	X-Cache-Auth-Key:  opaque credential for the proxy
//	X-Cache-Duration:  how long a response may be replayed, e.g. "10s", "5m"
//
// The duration is an opaque string in the proxy's own short-form syntax; the
// session does not validate it. TLS certificate verification is disabled, as
// everywhere in this kit.
//
// # Usage
//
//	import (
//	    "context"
//
//	    "github.com/sploitkit/sploitkit/pkg/cacheproxy"
//	)
//
//	s, err := cacheproxy.New(
//	    cacheproxy.WithProxyURL("http://cache:8080"),
//	    cacheproxy.WithAuthKey("k1"),
//	    cacheproxy.WithDuration("5m"),
//	)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	resp, err := s.Get(context.Background(), "https://target.ctf/leak")
//
// Proxy URL, auth key, and duration resolve independently from the explicit
// option or, failing that, the configuration store. Construction fails with
// ErrMissingConfig naming every field that resolved to nothing.
//
// # Caller Contract
//
// The cache keys responses by URL alone. Requests whose responses depend on
// cookies, headers, or request bodies are not safe through this session; the
// session does not detect or prevent such use.
//
// There is no base URL, no User-Agent customization, and no per-request
// connection mode here. Use pkg/session when you need those.
package cacheproxy
