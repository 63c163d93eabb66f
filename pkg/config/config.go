package config

import (
	"sync"

	"github.com/sploitkit/sploitkit/pkg/useragent"
)

// Config holds process-wide defaults consulted by session constructors when no
// explicit option is supplied. Fields left unset fall through to the
// hard-coded defaults documented on each constructor. Config is a plain value;
// no assignment is validated, and missing or malformed values surface only
// when a constructor consumes them.
type Config struct {
	// SessionPerRequestConn makes sessions open a dedicated connection per
	// request and close it once the response completes.
	SessionPerRequestConn Optional[bool]

	// SessionUserAgent supplies the User-Agent provider for sessions. A nil
	// provider means unset.
	SessionUserAgent useragent.Provider

	// CacheProxyURL is the caching proxy endpoint for cache-proxy sessions.
	CacheProxyURL Optional[string]

	// CacheAuthKey is the credential sent as X-Cache-Auth-Key.
	CacheAuthKey Optional[string]

	// CacheDuration is the opaque duration string sent as X-Cache-Duration,
	// e.g. "10s" or "5m". The syntax belongs to the proxy and is not parsed
	// here.
	CacheDuration Optional[string]
}

// Set replaces every field of c with other's corresponding field. It is a full
// overwrite, not a merge: fields other leaves unset become unset on c too.
func (c *Config) Set(other Config) {
	*c = other
}

var (
	defaultMu  sync.RWMutex
	defaultCfg Config
)

// Default returns a copy of the shared configuration. Constructors read it
// when no explicit Config is injected; mutating the returned value does not
// affect the shared instance.
func Default() Config {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCfg
}

// SetDefault replaces the shared configuration. Call it once during process
// startup, before sessions are constructed.
func SetDefault(cfg Config) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCfg.Set(cfg)
}
