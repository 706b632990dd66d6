package driven

import (
	"context"

	"github.com/archeteam/workspaced/internal/core/domain"
)

// AuthFlow obtains credentials from the identity provider.
// Implementations encapsulate the provider's OAuth quirks; the core only
// sees the two ways a credential can come into existence.
type AuthFlow interface {
	// Refresh exchanges the credential's refresh token for a new access
	// token. Returns domain.ErrProviderRejected (wrapped) when the
	// provider explicitly denies the exchange.
	Refresh(ctx context.Context, cred *domain.Credential) (*domain.Credential, error)

	// IssueNew runs a full interactive authorisation flow for the given
	// scopes. Returns domain.ErrInteractionRequired (wrapped) when the
	// flow cannot proceed headlessly.
	IssueNew(ctx context.Context, scopes domain.ScopeSet) (*domain.Credential, error)
}
