// Package config defines the server configuration structure.
//
// Configuration is loaded via infra/confloader with priority
// Env > File > Default and validated by Verify before the server starts.
package config
