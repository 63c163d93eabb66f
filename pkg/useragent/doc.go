// Package useragent provides User-Agent strategies for the kit's HTTP sessions.
//
// A strategy is a Provider: a zero-argument function returning the header value
// for the next request, together with an ok flag. Returning ok=false instructs
// the session to omit the User-Agent header from the wire entirely, which is
// different from sending an empty value.
//
// Two plain function strategies cover the common cases:
//
//   - None always omits the header.
//   - Default reproduces the identification string the unmodified client would
//     have sent on its own.
//
// Static and Random build providers from caller-supplied strings, and Browsers
// returns a small built-in list of real browser identifiers suitable for
// Random. Providers are invoked once per request, so a Random provider rotates
// the header between requests issued on the same session.
//
// Example:
//
//	s := session.New(
//	    session.WithUserAgent(useragent.Random(useragent.Browsers()...)),
//	)
package useragent
