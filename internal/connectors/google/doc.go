// Package google provides shared infrastructure for Google API gateways.
//
// This package contains common utilities used by the gmail, drive, and
// calendar gateways including:
//   - Service factories for creating API clients from a validated credential
//   - Error classification mapping googleapi errors into the domain taxonomy
//   - Rate limiting to respect Google API quotas
//
// # Usage
//
// Each gateway package (gmail, drive, calendar) uses this package to
// create authenticated API clients:
//
//	svc, err := google.NewGmailService(ctx, cred)
//
// # OAuth2 Scopes
//
// The service operates with these scopes, fixed at configuration:
//   - https://www.googleapis.com/auth/gmail.send
//   - https://www.googleapis.com/auth/drive
//   - https://www.googleapis.com/auth/calendar
package google
