// Package logger provides structured logging for authcore.
//
// It wraps the standard library log/slog with:
//
//   - JSON structured logging (default) or text output
//   - automatic redaction of credentials and session tokens
//   - context-aware request-ID propagation
//   - dynamic log level adjustment (used by config hot-reload)
package logger
