package cacheproxy

import "errors"

// ErrMissingConfig indicates one or more of proxy URL, auth key, and cache
// duration resolved to nothing from both the explicit options and the
// configuration store. The wrapped message names every missing field.
var ErrMissingConfig = errors.New("cache proxy configuration incomplete")
