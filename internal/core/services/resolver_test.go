package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archeteam/workspaced/internal/core/domain"
)

func TestResolver_Resolve_FindsMatchOnLaterPage(t *testing.T) {
	pages := [][]domain.ResourceRef{
		{{ID: "1", Name: "alpha"}, {ID: "2", Name: "beta"}},
		{{ID: "3", Name: "gamma"}},
		{{ID: "4", Name: "target"}, {ID: "5", Name: "delta"}},
	}
	r := NewResolver(time.Second)

	id, err := r.Resolve(context.Background(), domain.KindFile, "target", listPages(pages))

	require.NoError(t, err)
	assert.Equal(t, "4", id)
}

func TestResolver_Resolve_ExhaustedListingIsNotFound(t *testing.T) {
	pages := [][]domain.ResourceRef{
		{{ID: "1", Name: "alpha"}},
		{{ID: "2", Name: "beta"}},
		{{ID: "3", Name: "gamma"}},
	}
	r := NewResolver(time.Second)

	_, err := r.Resolve(context.Background(), domain.KindFolder, "missing", listPages(pages))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResourceNotFound)
}

func TestResolver_Resolve_DuplicateNamesFirstMatchWins(t *testing.T) {
	pages := [][]domain.ResourceRef{
		{{ID: "first", Name: "report"}, {ID: "second", Name: "report"}},
		{{ID: "third", Name: "report"}},
	}
	r := NewResolver(time.Second)

	// Same listing order must give the same answer every time.
	for i := 0; i < 3; i++ {
		id, err := r.Resolve(context.Background(), domain.KindFile, "report", listPages(pages))
		require.NoError(t, err)
		assert.Equal(t, "first", id)
	}
}

func TestResolver_Resolve_BudgetElapsesBeforeMatch(t *testing.T) {
	// Every page fetch is slow; the match sits behind more pages than
	// the budget allows, so the resolver must report a timeout even
	// though the name exists.
	slow := func(ctx context.Context, pageToken string) ([]domain.ResourceRef, string, error) {
		select {
		case <-time.After(30 * time.Millisecond):
		case <-ctx.Done():
			return nil, "", ctx.Err()
		}
		if pageToken == "zz" {
			return []domain.ResourceRef{{ID: "late", Name: "target"}}, "", nil
		}
		return []domain.ResourceRef{{ID: "x", Name: "other"}}, pageToken + "z", nil
	}
	r := NewResolver(50 * time.Millisecond)

	_, err := r.Resolve(context.Background(), domain.KindCalendar, "target", slow)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResolveTimeout)
}

func TestResolver_Resolve_ListingFailureIsRemoteError(t *testing.T) {
	failing := func(_ context.Context, _ string) ([]domain.ResourceRef, string, error) {
		return nil, "", errors.New("backend unavailable")
	}
	r := NewResolver(time.Second)

	_, err := r.Resolve(context.Background(), domain.KindEvent, "standup", failing)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRemote)
	assert.NotErrorIs(t, err, domain.ErrResourceNotFound)
}

func TestResolver_Resolve_CallerCancellationPassesThrough(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	blocked := func(ctx context.Context, _ string) ([]domain.ResourceRef, string, error) {
		<-ctx.Done()
		return nil, "", ctx.Err()
	}
	r := NewResolver(time.Second)

	_, err := r.Resolve(ctx, domain.KindFile, "anything", blocked)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// listPages adapts canned pages to the listing contract.
func listPages(pages [][]domain.ResourceRef) domain.ListPage {
	return func(_ context.Context, pageToken string) ([]domain.ResourceRef, string, error) {
		return pageFrom(pages, pageToken)
	}
}
