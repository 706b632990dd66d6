package driven

import (
	"context"

	"github.com/archeteam/workspaced/internal/core/domain"
)

// CredentialStore persists the process's single credential record.
//
// Save must be atomic from the caller's perspective: after a crash either
// the full updated credential is on durable storage or the prior one
// remains, never a partial write.
type CredentialStore interface {
	// Load returns the persisted credential, or (nil, nil) when absent.
	// A malformed or unreadable record is an error; callers decide
	// whether that is fatal.
	Load(ctx context.Context) (*domain.Credential, error)

	// Save overwrites the persisted credential atomically.
	Save(ctx context.Context, cred *domain.Credential) error
}
