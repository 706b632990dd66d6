package domain

import "time"

// expiryLeeway is how close to expiry a token is still treated as usable.
// Tokens inside the leeway window are refreshed eagerly so a remote call
// never starts with a token about to lapse mid-flight.
const expiryLeeway = 30 * time.Second

// Credential holds the OAuth tokens granted for this installation.
// Exactly one credential exists per process; the Authenticator owns it.
type Credential struct {
	// AccessToken is the bearer token for API access.
	AccessToken string `json:"access_token"`
	// RefreshToken is used to obtain new access tokens. May be empty.
	RefreshToken string `json:"refresh_token,omitempty"`
	// TokenType is typically "Bearer".
	TokenType string `json:"token_type"`
	// Expiry is when the access token expires. Zero means unknown/no expiry.
	Expiry time.Time `json:"expiry,omitempty"`
	// Scopes are the capability scopes granted with this credential.
	Scopes ScopeSet `json:"scopes"`
}

// IsExpired returns true if the access token has expired or is about to.
func (c *Credential) IsExpired() bool {
	if c.Expiry.IsZero() {
		return false
	}
	return time.Now().After(c.Expiry.Add(-expiryLeeway))
}

// HasRefreshToken returns true if a refresh token is available.
func (c *Credential) HasRefreshToken() bool {
	return c.RefreshToken != ""
}

// Covers reports whether the credential's granted scopes are a superset
// of the required scopes. A credential that does not cover an operation's
// scopes is invalid for that operation regardless of expiry.
func (c *Credential) Covers(required ScopeSet) bool {
	return c.Scopes.Contains(required)
}

// Valid reports whether the credential can be used as-is for an
// operation requiring the given scopes.
func (c *Credential) Valid(required ScopeSet) bool {
	return c.AccessToken != "" && !c.IsExpired() && c.Covers(required)
}
