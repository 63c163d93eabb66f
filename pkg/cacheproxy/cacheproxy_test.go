package cacheproxy_test

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sploitkit/sploitkit/pkg/cacheproxy"
	"github.com/sploitkit/sploitkit/pkg/config"
)

func TestNew_MissingConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        []cacheproxy.Option
		wantMissing []string
		wantPresent []string
	}{
		{
			name:        "all three missing",
			opts:        nil,
			wantMissing: []string{"proxy URL", "auth key", "cache duration"},
		},
		{
			name:        "only proxy URL given",
			opts:        []cacheproxy.Option{cacheproxy.WithProxyURL("http://cache:8080")},
			wantMissing: []string{"auth key", "cache duration"},
			wantPresent: []string{"proxy URL"},
		},
		{
			name: "only duration missing",
			opts: []cacheproxy.Option{
				cacheproxy.WithProxyURL("http://cache:8080"),
				cacheproxy.WithAuthKey("k1"),
			},
			wantMissing: []string{"cache duration"},
			wantPresent: []string{"proxy URL", "auth key"},
		},
		{
			name: "empty option falls through to nothing",
			opts: []cacheproxy.Option{
				cacheproxy.WithProxyURL(""),
				cacheproxy.WithAuthKey("k1"),
				cacheproxy.WithDuration("5m"),
			},
			wantMissing: []string{"proxy URL"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// An explicit empty store isolates the case from the shared default.
			opts := append(tt.opts, cacheproxy.WithConfig(config.Config{}))
			s, err := cacheproxy.New(opts...)
			require.Nil(t, s)
			require.ErrorIs(t, err, cacheproxy.ErrMissingConfig)
			for _, field := range tt.wantMissing {
				assert.Contains(t, err.Error(), field)
			}
			for _, field := range tt.wantPresent {
				assert.NotContains(t, err.Error(), field)
			}
		})
	}
}

func TestNew_InvalidProxyURL(t *testing.T) {
	t.Parallel()

	s, err := cacheproxy.New(
		cacheproxy.WithProxyURL("://missing-scheme"),
		cacheproxy.WithAuthKey("k1"),
		cacheproxy.WithDuration("5m"),
		cacheproxy.WithConfig(config.Config{}),
	)
	require.Nil(t, s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid proxy url")
}

func TestNew_StoreSuppliesFields(t *testing.T) {
	t.Parallel()

	s, err := cacheproxy.New(cacheproxy.WithConfig(config.Config{
		CacheProxyURL: config.Some("http://cache:8080"),
		CacheAuthKey:  config.Some("k1"),
		CacheDuration: config.Some("5m"),
	}))
	require.NoError(t, err)
	require.NotNil(t, s)
	s.Close()
}

func TestNew_SharedDefaultStoreFallback(t *testing.T) {
	// Mutates the shared default store; must not run in parallel.
	previous := config.Default()
	t.Cleanup(func() { config.SetDefault(previous) })

	config.SetDefault(config.Config{
		CacheProxyURL: config.Some("http://cache:8080"),
		CacheAuthKey:  config.Some("k1"),
		CacheDuration: config.Some("5m"),
	})

	s, err := cacheproxy.New()
	require.NoError(t, err)
	require.NotNil(t, s)
	s.Close()
}

func TestSession_Get_HTTPTargetThroughProxy(t *testing.T) {
	t.Parallel()

	// A forward proxy receives the full target URL in the request line.
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, r.URL.IsAbs(), "proxy must receive an absolute-form request")
		assert.Equal(t, "target.ctf", r.URL.Host)
		assert.Equal(t, "/leak", r.URL.Path)
		assert.Equal(t, "k1", r.Header.Get("X-Cache-Auth-Key"))
		assert.Equal(t, "5m", r.Header.Get("X-Cache-Duration"))
		io.WriteString(w, "cached")
	}))
	defer proxy.Close()

	s, err := cacheproxy.New(
		cacheproxy.WithProxyURL(proxy.URL),
		cacheproxy.WithAuthKey("k1"),
		cacheproxy.WithDuration("5m"),
		cacheproxy.WithConfig(config.Config{}),
	)
	require.NoError(t, err)
	defer s.Close()

	// target.ctf never resolves; the request only ever reaches the proxy.
	resp, err := s.Get(context.Background(), "http://target.ctf/leak")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "cached", string(body))
}

func TestSession_Post_HeadersOnEveryRequest(t *testing.T) {
	t.Parallel()

	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "k1", r.Header.Get("X-Cache-Auth-Key"))
		assert.Equal(t, "10s", r.Header.Get("X-Cache-Duration"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(body))
	}))
	defer proxy.Close()

	s, err := cacheproxy.New(
		cacheproxy.WithProxyURL(proxy.URL),
		cacheproxy.WithAuthKey("k1"),
		cacheproxy.WithDuration("10s"),
		cacheproxy.WithConfig(config.Config{}),
	)
	require.NoError(t, err)
	defer s.Close()

	resp, err := s.Post(context.Background(), "http://target.ctf/upload", "text/plain", strings.NewReader("payload"))
	require.NoError(t, err)
	resp.Body.Close()
}

func TestSession_ExplicitProxyBeatsStore(t *testing.T) {
	t.Parallel()

	storeProxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the store's proxy")
	}))
	defer storeProxy.Close()

	explicitProxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer explicitProxy.Close()

	s, err := cacheproxy.New(
		cacheproxy.WithConfig(config.Config{
			CacheProxyURL: config.Some(storeProxy.URL),
			CacheAuthKey:  config.Some("store-key"),
			CacheDuration: config.Some("1m"),
		}),
		cacheproxy.WithProxyURL(explicitProxy.URL),
	)
	require.NoError(t, err)
	defer s.Close()

	resp, err := s.Get(context.Background(), "http://target.ctf/")
	require.NoError(t, err)
	resp.Body.Close()
}

// connectProxy tunnels CONNECT requests to their target, counting how many
// arrive, so a test can prove https traffic routes through the proxy.
func connectProxy(connects *atomic.Int32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodConnect {
			http.Error(w, "CONNECT only", http.StatusMethodNotAllowed)
			return
		}
		connects.Add(1)

		target, err := net.Dial("tcp", r.Host)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		hj, ok := w.(http.Hijacker)
		if !ok {
			target.Close()
			http.Error(w, "hijacking not supported", http.StatusInternalServerError)
			return
		}
		clientConn, _, err := hj.Hijack()
		if err != nil {
			target.Close()
			return
		}
		clientConn.Write([]byte("HTTP/1.1 200 Connection Established\r\n\r\n"))

		go func() {
			defer target.Close()
			defer clientConn.Close()
			io.Copy(target, clientConn)
		}()
		io.Copy(clientConn, target)
		target.Close()
		clientConn.Close()
	})
}

func TestSession_Get_HTTPSTargetThroughProxy(t *testing.T) {
	t.Parallel()

	// Self-signed TLS origin; reaching it through the tunnel also proves
	// certificate verification is off for this session type.
	origin := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k1", r.Header.Get("X-Cache-Auth-Key"))
		assert.Equal(t, "5m", r.Header.Get("X-Cache-Duration"))
		io.WriteString(w, "tunneled")
	}))
	defer origin.Close()

	var connects atomic.Int32
	proxy := httptest.NewServer(connectProxy(&connects))
	defer proxy.Close()

	s, err := cacheproxy.New(
		cacheproxy.WithProxyURL(proxy.URL),
		cacheproxy.WithAuthKey("k1"),
		cacheproxy.WithDuration("5m"),
		cacheproxy.WithConfig(config.Config{}),
	)
	require.NoError(t, err)
	defer s.Close()

	resp, err := s.Get(context.Background(), origin.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "tunneled", string(body))
	assert.Equal(t, int32(1), connects.Load(), "https traffic must tunnel through the proxy")
}
