package sqlite

import (
	"strings"

	"github.com/archeteam/workspaced/internal/core/domain"
)

// Scopes are stored space-separated, the same shape OAuth providers use
// on the wire.

func joinScopes(scopes domain.ScopeSet) string {
	return strings.Join(scopes, " ")
}

func splitScopes(s string) domain.ScopeSet {
	if s == "" {
		return nil
	}
	return domain.ScopeSet(strings.Fields(s))
}
