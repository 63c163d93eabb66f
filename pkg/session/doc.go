// Package session provides an HTTP session tuned for offensive-security and
// CTF tooling: base URL resolution, TLS certificate verification disabled,
// pluggable User-Agent generation, and an optional one-connection-per-request
// mode for working alongside intercepting proxies and traffic monitors.
//
// A Session wraps a standard *http.Client, so everything the client does
// (redirects, cookies, proxies from the environment) keeps working. The
// package adds behavior at the edges and reimplements nothing.
//
// # Key Features
//
// - Relative request URLs resolved against a configured base URL
// - TLS certificate verification disabled unconditionally (lab targets rarely
// carry valid certificates)
// - User-Agent chosen per request by a useragent.Provider, including sending
// no header at all
// - Per-request connection mode: every connection is closed after one
// request/response cycle instead of being pooled, without advertising
// "Connection: close"
// - Optional TLS ClientHello camouflage via uTLS parroting
// - Session defaults resolved from an explicit config.Config or the shared
// default store
//
// # Basic Usage
//
//	import (
//	    "context"
//
//	    "github.com/sploitkit/sploitkit/pkg/session"
//	)
//
//	s := session.New(
//	    session.WithBaseURL("https://target.ctf:8443/api/"),
//	    session.WithPerRequestConnections(true),
//	)
//	defer s.Close()
//
//	resp, err := s.Get(context.Background(), "flag")
//
// # Configuration Resolution
//
// Each optional setting resolves in order: explicit option, then the
// configuration store (config.Default() unless WithConfig injects one), then
// the hard default. Hard defaults are pooled connections and the standard
// client User-Agent. An explicit WithPerRequestConnections(false) therefore
// wins over a store that says true.
//
// # Per-Request Connections
//
// When per-request mode is active the session's transport never returns a
// connection to the idle pool: the connection is closed as part of completing
// the request, on every exit path, before the next request can begin. Network
// observers see one distinct connection per request. The session does not send
// a Connection header in this mode, so the teardown is not advertised to the
// server; HTTP/2 is disabled on the transport so each request maps to one
// observable connection.
//
// Known limitation: the mode has no effect on traffic that flows through an
// HTTP proxy. Proxied connections keep the client's ordinary reuse behavior.
//
// # TLS Camouflage
//
// WithTLSCamouflage (or WithClientHello for a specific parrot) replaces the
// transport's TLS dialing with a uTLS handshake imitating a mainstream
// browser's ClientHello, for targets that fingerprint clients at the TLS
// layer. Camouflaged connections speak HTTP/1.1 and, like the per-request
// override, the camouflage does not apply to proxied traffic.
package session
