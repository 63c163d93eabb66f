// Package logger provides a thin factory around Go's slog package with
// functional options for configuration.
//
// The package standardises structured logging across tools built on the kit by
// exposing a single factory, New, that creates a *slog.Logger configured by a
// set of Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Redirect output to any io.Writer
//
// # Usage
//
//	import "github.com/sploitkit/sploitkit/pkg/logger"
//
//	func main() {
//	    log := logger.New(
//	        logger.WithTextFormatter(),
//	        logger.WithLevel(slog.LevelDebug),
//	        logger.WithAttr(slog.String("target", "10.0.0.5")),
//	    )
//	    logger.SetAsDefault(log)
//
//	    log.Info("starting scan", slog.Int("ports", 1024))
//	}
//
// Sessions in pkg/session and pkg/cacheproxy accept a *slog.Logger via their
// WithLogger options; pass one built here to see request-level debug output.
//
// # Configuration
//
// The behaviour of New can be tuned with a variety of Option helpers:
//
//   - WithFormat / WithTextFormatter / WithJSONFormatter - override output format.
//   - WithLevel - set a custom slog.Level.
//   - WithOutput - write somewhere other than stdout.
//   - WithAttr - attach static attributes.
//   - WithHandlerOptions - full control over slog.HandlerOptions.
//
// Defaults are text format at INFO level on stdout, which suits interactive
// tooling. Switch to WithJSONFormatter when logs are collected by machines.
package logger
