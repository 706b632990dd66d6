package driving

import (
	"context"

	"github.com/archeteam/workspaced/internal/core/domain"
)

// AuthOps exposes the credential lifecycle to driving adapters.
type AuthOps interface {
	// EnsureValid returns a credential valid for the required scopes,
	// refreshing or reissuing as needed.
	EnsureValid(ctx context.Context, required domain.ScopeSet) (*domain.Credential, error)

	// Peek reports the stored credential without side effects;
	// (nil, nil) when none is stored.
	Peek(ctx context.Context) (*domain.Credential, error)
}
