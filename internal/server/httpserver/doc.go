// Package httpserver provides the HTTP server for authcore.
//
// It uses the Go standard library net/http, wiring the account handlers
// behind a middleware chain (request IDs, panic recovery, CORS, access
// logging, rate limiting, metrics) and gating the profile endpoint with
// the session guard.
package httpserver
