package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archeteam/workspaced/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "credentials.json"))
	require.NoError(t, err)
	return store
}

func TestStore_Load_MissingFileMeansAbsent(t *testing.T) {
	store := newTestStore(t)

	cred, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestStore_SaveAndLoad_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	saved := &domain.Credential{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		Expiry:       time.Now().Add(time.Hour).Truncate(time.Second),
		Scopes:       domain.AllScopes(),
	}
	require.NoError(t, store.Save(context.Background(), saved))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved.AccessToken, loaded.AccessToken)
	assert.Equal(t, saved.RefreshToken, loaded.RefreshToken)
	assert.True(t, saved.Expiry.Equal(loaded.Expiry))
	assert.Equal(t, saved.Scopes, loaded.Scopes)
}

func TestStore_Save_OverwritesPrevious(t *testing.T) {
	store := newTestStore(t)

	first := &domain.Credential{AccessToken: "first", TokenType: "Bearer"}
	second := &domain.Credential{AccessToken: "second", TokenType: "Bearer"}
	require.NoError(t, store.Save(context.Background(), first))
	require.NoError(t, store.Save(context.Background(), second))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "second", loaded.AccessToken)
}

func TestStore_Save_RestrictsPermissions(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save(context.Background(), &domain.Credential{AccessToken: "x"}))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestStore_Load_CorruptFileIsAnError(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0600))

	_, err := store.Load(context.Background())

	require.Error(t, err)
}

func TestStore_Save_LeavesNoTempFiles(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Save(context.Background(), &domain.Credential{AccessToken: "x"}))

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the credential file should remain after save")
}
