// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The two load-bearing pieces are the Authenticator (credential
// lifecycle: load, validate, refresh, reissue, persist) and the Resolver
// (name-to-identifier translation over paged remote listings). The
// per-capability access layers compose the two: authenticate, resolve
// where needed, then issue exactly one remote call.
package services
