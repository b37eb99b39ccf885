// Package domain defines the core domain models for authcore.
//
// Domain models are pure value objects and entities without any
// IO dependencies or framework coupling. This package contains:
//
//   - User: registered account entity and its metadata subset
//   - SessionClaims: the claim set embedded in session tokens
//   - Errors: domain-specific error definitions
package domain
