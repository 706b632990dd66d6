package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/logger"
)

// DefaultResolveBudget bounds a single resolution's wall-clock cost
// against very large listings or a temporarily slow backend.
const DefaultResolveBudget = 10 * time.Second

// Resolver translates a human-readable resource name into the remote
// service's opaque identifier via a paged listing and exact-match scan.
//
// Names are not unique at the remote service; the first match in listing
// order wins, deterministically. Results are never cached: every call
// re-resolves, trading latency for freshness.
type Resolver struct {
	budget time.Duration
}

// NewResolver creates a resolver with the given per-call budget.
// A non-positive budget selects DefaultResolveBudget.
func NewResolver(budget time.Duration) *Resolver {
	if budget <= 0 {
		budget = DefaultResolveBudget
	}
	return &Resolver{budget: budget}
}

// Resolve scans pages from list until name matches exactly, the cursor is
// exhausted (domain.ErrResourceNotFound) or the budget elapses
// (domain.ErrResolveTimeout). Listing failures are surfaced as
// domain.ErrRemote without internal retry; resolution never mutates
// remote state, so the whole operation is safe for the caller to retry.
func (r *Resolver) Resolve(ctx context.Context, kind domain.ResourceKind, name string, list domain.ListPage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.budget)
	defer cancel()

	var pageToken string
	for page := 1; ; page++ {
		items, next, err := list(ctx, pageToken)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return "", fmt.Errorf("resolve %s %q: %w", kind, name, domain.ErrResolveTimeout)
			}
			if errors.Is(err, context.Canceled) {
				return "", fmt.Errorf("resolve %s %q: %w", kind, name, err)
			}
			return "", fmt.Errorf("resolve %s %q: %w: %v", kind, name, domain.ErrRemote, err)
		}

		for _, item := range items {
			if item.Name == name {
				logger.Debug("resolved %s %q to %s (page %d)", kind, name, item.ID, page)
				return item.ID, nil
			}
		}

		if next == "" {
			return "", fmt.Errorf("resolve %s %q: %w", kind, name, domain.ErrResourceNotFound)
		}
		pageToken = next

		// The budget is checked between page fetches so a listing that
		// returns quickly but endlessly still terminates.
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return "", fmt.Errorf("resolve %s %q: %w", kind, name, domain.ErrResolveTimeout)
			}
			return "", fmt.Errorf("resolve %s %q: %w", kind, name, ctx.Err())
		default:
		}
	}
}
