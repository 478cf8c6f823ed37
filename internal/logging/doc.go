// Package logging provides structured logging for lunitool.
//
// This package wraps a zap logger with convenience functions. The terminal UI
// owns stdout, so entries go to a log file and, optionally, to an in-memory
// Buffer that backs the installer's log panel.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed debugging info (key dispatch, cursor movement)
//   - Info: Normal operations (screen changes, language and theme switches)
//   - Warn: Non-fatal issues (repaired task index, keyboard backend failures)
//   - Error: Unexpected states the UI survives
//
// # Configuration
//
// Initialize logging at startup:
//
//	buf := logging.NewBuffer(logging.DefaultBufferLines)
//	if err := logging.Initialize(logging.Options{Level: "debug", Buffer: buf}); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// When Options.Level is empty the LUNITOOL_LOG_LEVEL environment variable is
// consulted, then info is used.
//
// # Output Format
//
// The log file uses zap's console encoder:
//
//	2025-11-25T10:30:45.123-0800  INFO  wizard/machine.go:120  Language changed  {"language": "en"}
//
// The panel buffer keeps a compact single-line form:
//
//	10:30:45 INFO  Language changed language=en
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Buffer guards its lines
// with a mutex.
package logging
