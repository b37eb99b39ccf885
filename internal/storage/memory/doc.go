// Package memory provides the in-memory user store for authcore.
//
// The store is process-local by design: records live for the lifetime of
// the process and the instance identifier regenerates on every start,
// which is what ties session-token validity to a single process run.
package memory
