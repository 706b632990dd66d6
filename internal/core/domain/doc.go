// Package domain defines the core business entities for workspaced.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Credential: The OAuth tokens and scopes the process operates with
//   - ScopeSet: An immutable set of capability scopes
//   - ResourceRef / ListPage: The cursor-based listing contract used for
//     name-to-identifier resolution
//   - Operation payloads: OutgoingMail, EventDetails, FileUpload, ...
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
