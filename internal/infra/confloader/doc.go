// Package confloader provides the configuration loading mechanism.
//
// It uses Koanf for flexible configuration loading from multiple sources
// with priority: Env > File > Default, plus an fsnotify-based watcher for
// reacting to configuration file changes at runtime.
package confloader
