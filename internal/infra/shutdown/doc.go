// Package shutdown provides graceful shutdown handling.
//
// Components register named hooks at startup; on SIGINT/SIGTERM the hooks
// run in reverse registration order under a shared timeout.
package shutdown
