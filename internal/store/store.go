package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/osokin/lingvo/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
	seq    *sequenceCounter
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		client.Close()
		return nil, err
	}

	return &Store{db: db, client: client, seq: seq}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// UserRepo returns a UserRepo backed by this store.
func (s *Store) UserRepo() UserRepo {
	return &userRepo{client: s.client}
}

// VocabRepo returns a VocabRepo backed by this store.
func (s *Store) VocabRepo() VocabRepo {
	return &vocabRepo{client: s.client}
}

// AuditRepo returns an AuditRepo backed by this store.
func (s *Store) AuditRepo() AuditRepo {
	return &auditRepo{client: s.client, seq: s.seq}
}

// Wipe removes all user data: profiles, vocabulary, and audit events.
func (s *Store) Wipe(ctx context.Context) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin wipe: %w", err)
	}
	if _, err := tx.VocabEntry.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("wipe vocabulary: %w", err)
	}
	if _, err := tx.MessageEvent.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("wipe message events: %w", err)
	}
	if _, err := tx.LLMRequestEvent.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("wipe llm events: %w", err)
	}
	if _, err := tx.User.Delete().Exec(ctx); err != nil {
		tx.Rollback()
		return fmt.Errorf("wipe users: %w", err)
	}
	return tx.Commit()
}

// applyPragmas configures SQLite for single-process bot usage.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LINGVO_DB environment variable
// 2. $XDG_DATA_HOME/lingvo/lingvo.db
// 3. ~/.local/share/lingvo/lingvo.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LINGVO_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lingvo", "lingvo.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
