package useragent

import (
	"math/rand"
	"sync"
	"time"
)

// Provider returns the User-Agent value to send on the next request.
// A Provider reporting ok=false asks for the header to be omitted from the
// wire entirely; an empty string with ok=true is passed through as-is and the
// underlying client decides how to treat it.
type Provider func() (value string, ok bool)

// defaultUserAgent is the identification string net/http sends when no
// User-Agent header has been set on a request.
const defaultUserAgent = "Go-http-client/1.1"

// None is a Provider that always omits the User-Agent header.
func None() (string, bool) {
	return "", false
}

// Default is a Provider that returns the standard identification string the
// unmodified client would have sent, useful to make the header explicit in
// captures and logs.
func Default() (string, bool) {
	return defaultUserAgent, true
}

// Static returns a Provider that sends ua on every request.
func Static(ua string) Provider {
	return func() (string, bool) {
		return ua, true
	}
}

// Random returns a Provider that picks uniformly from uas on every call, so
// sequential requests on the same session rotate identifiers. With no
// arguments the returned Provider omits the header.
func Random(uas ...string) Provider {
	list := make([]string, len(uas))
	copy(list, uas)
	return func() (string, bool) {
		if len(list) == 0 {
			return "", false
		}
		mu.Lock()
		i := rnd.Intn(len(list))
		mu.Unlock()
		return list[i], true
	}
}

// Browsers returns a copy of the built-in browser identifier list, intended
// to be fed to Random for traffic that should not stand out as tooling.
func Browsers() []string {
	list := make([]string, len(browsers))
	copy(list, browsers)
	return list
}

var (
	rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	mu  sync.Mutex
)

// browsers holds desktop browser identifiers current enough to blend into
// ordinary traffic. Entries are rotated manually when a release goes stale.
var browsers = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:128.0) Gecko/20100101 Firefox/128.0",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:128.0) Gecko/20100101 Firefox/128.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64; rv:128.0) Gecko/20100101 Firefox/128.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36 Edg/126.0.0.0",
}
