// Package sploitkit is a configuration and convenience layer over net/http
// for offensive-security and CTF tooling.
//
// The kit does not reimplement an HTTP stack, a connection pool, or a proxy.
// It composes the standard client with the behaviors exploit scripts keep
// rewriting by hand: disabled certificate verification, base URL resolution,
// pluggable User-Agent generation, one-connection-per-request dispatch for
// clean traffic captures, and routing through an authenticated caching proxy.
//
// Key Features:
//
//   - Process-wide defaults store with explicit unset semantics (pkg/config)
//   - User-Agent strategies, from "send nothing" to browser imitation (pkg/useragent)
//   - HTTP session with base URL, TLS verification off, per-request
//     connections, and optional uTLS ClientHello camouflage (pkg/session)
//   - Session variant forcing traffic through a caching proxy (pkg/cacheproxy)
//   - slog factory for tools built on the kit (pkg/logger)
//
// Basic Usage:
//
//	// Set process-wide defaults once at startup
//	config.SetDefault(config.Config{
//	    SessionPerRequestConn: config.Some(true),
//	    SessionUserAgent:      useragent.Random(useragent.Browsers()...),
//	})
//
//	// Sessions pick the defaults up
//	s := session.New(session.WithBaseURL("https://target.ctf/"))
//	defer s.Close()
//
//	resp, err := s.Get(ctx, "admin/flag")
//
// Every package stands alone; import only what the tool needs.
package sploitkit
