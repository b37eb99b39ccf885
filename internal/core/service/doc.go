// Package service provides domain services for authcore.
//
// Domain services contain pure business logic and orchestrate operations
// on domain models. They define interfaces for storage dependencies:
//
//   - CredentialService: password hashing and session-token issuance
//   - AccountService: registration, login, and profile retrieval
package service
