package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driven"
	"github.com/archeteam/workspaced/internal/logger"
)

// Authenticator produces a valid, non-expired credential on demand.
// It owns the process's single credential: loading it from the store,
// refreshing or reissuing it when invalid, and persisting every change.
//
// All slow-path work happens under one mutex, so at most one
// refresh/reissuance is in flight per process. Late-arriving callers
// block on the mutex and pick up the in-flight result on re-check
// instead of triggering a duplicate flow.
type Authenticator struct {
	store  driven.CredentialStore
	flow   driven.AuthFlow
	scopes domain.ScopeSet

	mu   sync.Mutex
	cred *domain.Credential
}

// NewAuthenticator creates an authenticator. scopes is the full scope set
// requested on reissuance; requesting everything upfront avoids a second
// consent prompt when another capability is used later.
func NewAuthenticator(store driven.CredentialStore, flow driven.AuthFlow, scopes domain.ScopeSet) *Authenticator {
	if len(scopes) == 0 {
		scopes = domain.AllScopes()
	}
	return &Authenticator{
		store:  store,
		flow:   flow,
		scopes: scopes,
	}
}

// EnsureValid returns a credential that is present, unexpired and covers
// the required scopes, running a refresh or a full reissuance when needed.
// Failures are typed: domain.ErrInteractionRequired,
// domain.ErrProviderRejected or domain.ErrStoreUnavailable.
func (a *Authenticator) EnsureValid(ctx context.Context, required domain.ScopeSet) (*domain.Credential, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cred != nil && a.cred.Valid(required) {
		return a.cred, nil
	}

	cred, err := a.store.Load(ctx)
	if err != nil {
		// A malformed or unreadable persisted credential is unknown,
		// not fatal: it triggers issuance below.
		logger.Warn("stored credential unreadable, treating as absent: %v", err)
		cred = nil
	}

	if cred != nil && cred.Valid(required) {
		a.cred = cred
		return cred, nil
	}

	if cred != nil && cred.HasRefreshToken() && cred.Covers(required) {
		refreshed, refreshErr := a.flow.Refresh(ctx, cred)
		if refreshErr == nil {
			return a.persist(ctx, refreshed)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		logger.Warn("token refresh failed, falling back to reissuance: %v", refreshErr)
	}

	issued, err := a.flow.IssueNew(ctx, a.scopes)
	if err != nil {
		return nil, fmt.Errorf("authorisation flow: %w", err)
	}

	return a.persist(ctx, issued)
}

// Peek reports the currently stored credential without refreshing or
// reissuing. Returns (nil, nil) when none is stored.
func (a *Authenticator) Peek(ctx context.Context) (*domain.Credential, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.cred != nil {
		return a.cred, nil
	}
	return a.store.Load(ctx)
}

// persist writes the credential to durable storage as the last step
// before returning it. The store's save is atomic, so a crash here never
// corrupts the previously persisted credential.
func (a *Authenticator) persist(ctx context.Context, cred *domain.Credential) (*domain.Credential, error) {
	if err := a.store.Save(ctx, cred); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
	}
	a.cred = cred
	logger.Debug("credential persisted, expires %s", cred.Expiry)
	return cred, nil
}
