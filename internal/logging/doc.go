// Package logging provides structured logging for the BuildIT client.
//
// It wraps a global zap logger with a few helpers used by the API client
// and the terminal UI. Logging is silent by default so that it never
// interferes with the full-screen interface or the styled command output.
//
// # Enabling
//
//	BUILDIT_LOG_LEVEL=debug BUILDIT_LOG_FILE=/tmp/buildit.log buildit
//
// Levels:
//   - Debug: request bodies, truncated response bodies
//   - Info: request/response summaries
//   - Warn: degraded behaviour (kit catalog unavailable)
//   - Error: failures reported to the user
//
// # Usage
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.Warn("Failed to load kit catalog", zap.Error(err))
package logging
