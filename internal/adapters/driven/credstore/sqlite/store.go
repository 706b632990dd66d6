// Package sqlite implements the credential store on SQLite. The record
// lives in a single-row table and writes are transactional, which gives
// the same atomic-overwrite guarantee as the file store while keeping
// the credential next to any other local state.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/archeteam/workspaced/internal/core/domain"
	"github.com/archeteam/workspaced/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CredentialStore = (*Store)(nil)

// recordID is the fixed key of the single credential row.
const recordID = 1

const schema = `
CREATE TABLE IF NOT EXISTS credential (
	id            INTEGER PRIMARY KEY CHECK (id = 1),
	access_token  TEXT NOT NULL,
	refresh_token TEXT NOT NULL DEFAULT '',
	token_type    TEXT NOT NULL DEFAULT 'Bearer',
	expiry        TEXT NOT NULL DEFAULT '',
	scopes        TEXT NOT NULL DEFAULT '',
	updated_at    TEXT NOT NULL
);`

// Store is a SQLite-backed credential store.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (and if needed creates) the credential database.
// If dataDir is empty, defaults to ~/.workspaced/data.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".workspaced", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "credentials.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the persisted credential, or (nil, nil) when absent.
func (s *Store) Load(ctx context.Context) (*domain.Credential, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT access_token, refresh_token, token_type, expiry, scopes
		 FROM credential WHERE id = ?`, recordID)

	var cred domain.Credential
	var expiry, scopes string
	err := row.Scan(&cred.AccessToken, &cred.RefreshToken, &cred.TokenType, &expiry, &scopes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read credential row: %w", err)
	}

	if expiry != "" {
		t, err := time.Parse(time.RFC3339, expiry)
		if err != nil {
			return nil, fmt.Errorf("parse credential expiry: %w", err)
		}
		cred.Expiry = t
	}
	cred.Scopes = splitScopes(scopes)

	return &cred, nil
}

// Save overwrites the single credential row transactionally.
func (s *Store) Save(ctx context.Context, cred *domain.Credential) error {
	var expiry string
	if !cred.Expiry.IsZero() {
		expiry = cred.Expiry.Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO credential (id, access_token, refresh_token, token_type, expiry, scopes, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
			access_token = excluded.access_token,
			refresh_token = excluded.refresh_token,
			token_type = excluded.token_type,
			expiry = excluded.expiry,
			scopes = excluded.scopes,
			updated_at = excluded.updated_at`,
		recordID, cred.AccessToken, cred.RefreshToken, cred.TokenType,
		expiry, joinScopes(cred.Scopes), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("write credential row: %w", err)
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}
