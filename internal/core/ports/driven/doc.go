// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CredentialStore: Durable persistence for the single credential record
//   - AuthFlow: Refresh and interactive issuance against the identity provider
//   - RemoteServices: Per-capability handles on the remote resource service
//     (MailService, CalendarService, DriveService)
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
