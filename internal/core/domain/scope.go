package domain

// Google OAuth scopes used by the service, one per capability.
const (
	ScopeMailSend = "https://www.googleapis.com/auth/gmail.send"
	ScopeDrive    = "https://www.googleapis.com/auth/drive"
	ScopeCalendar = "https://www.googleapis.com/auth/calendar"
)

// ScopeSet is an immutable set of OAuth capability scopes.
// The full set is fixed at process configuration; per-operation
// requirements are subsets of it.
type ScopeSet []string

// AllScopes is the complete scope set the service is configured for.
// Requesting everything upfront avoids re-consent between capabilities.
func AllScopes() ScopeSet {
	return ScopeSet{ScopeMailSend, ScopeDrive, ScopeCalendar}
}

// MailScopes returns the scopes required for mail operations.
func MailScopes() ScopeSet { return ScopeSet{ScopeMailSend} }

// CalendarScopes returns the scopes required for calendar operations.
func CalendarScopes() ScopeSet { return ScopeSet{ScopeCalendar} }

// DriveScopes returns the scopes required for drive operations.
func DriveScopes() ScopeSet { return ScopeSet{ScopeDrive} }

// Contains reports whether s is a superset of other.
func (s ScopeSet) Contains(other ScopeSet) bool {
	for _, want := range other {
		found := false
		for _, have := range s {
			if have == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
