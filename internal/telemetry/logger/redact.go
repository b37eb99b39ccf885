// Package logger provides structured logging for authcore.
package logger

import (
	"log/slog"
	"strings"
)

// Key patterns whose values must never appear in logs. "senha" is the
// wire name of the password field.
var sensitiveKeyPatterns = []string{
	"password",
	"senha",
	"secret",
	"token",
	"credential",
	"authorization",
	"bearer",
}

// jwtPrefix matches the base64url encoding of `{"alg":...`, the start of
// every compact-serialized JWT this service issues.
const jwtPrefix = "eyJ"

// redactedValue is the placeholder for redacted sensitive data.
const redactedValue = "***REDACTED***"

// redactSensitive checks if an attribute contains sensitive data and
// redacts it if necessary.
func redactSensitive(a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindString {
		strVal := a.Value.String()

		// Session tokens are masked keeping a short fingerprint so log
		// lines remain correlatable.
		if strings.HasPrefix(strVal, jwtPrefix) {
			return slog.String(a.Key, maskToken(strVal))
		}

		keyLower := strings.ToLower(a.Key)
		for _, pattern := range sensitiveKeyPatterns {
			if strings.Contains(keyLower, pattern) {
				if strVal != "" {
					return slog.String(a.Key, redactedValue)
				}
				break
			}
		}
	}

	// Handle nested groups recursively.
	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		newAttrs := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			newAttrs[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(newAttrs...)}
	}

	return a
}

// maskToken keeps the first and last 3 characters of a token.
func maskToken(value string) string {
	if len(value) <= 10 {
		return redactedValue
	}
	return value[:3] + "..." + value[len(value)-3:]
}

// IsSensitiveKey checks if a key name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}
