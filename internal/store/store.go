// Package store is the optional deck library: imported sentence lists saved
// under a name so they can be loaded again at start. Only sentence content is
// stored, never play progress.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"wordorder-go/internal/sentences"
)

var ErrDeckNotFound = errors.New("deck not found")

// Deck is a saved sentence list.
type Deck struct {
	ID         string
	Name       string
	Sentences  []string
	ImportedAt time.Time
}

// DeckInfo summarises a deck for listings.
type DeckInfo struct {
	Name       string
	Count      int
	ImportedAt time.Time
}

type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (creating if needed) the sqlite library at path.
func Open(path string, logger zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open library: %w", err)
	}
	return &Store{db: db, log: logger.With().Str("component", "store").Logger()}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the schema.
func (s *Store) Migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS decks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			sentences TEXT NOT NULL,
			sentence_count INTEGER NOT NULL,
			imported_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_decks_imported_at ON decks(imported_at DESC)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// SaveDeck stores list under name, replacing an existing deck of that name.
// It returns the deck id, which is stable across replacements.
func (s *Store) SaveDeck(ctx context.Context, name string, list []string) (string, error) {
	payload, err := sentences.Marshal(list)
	if err != nil {
		return "", err
	}
	const q = `
INSERT INTO decks (id, name, sentences, sentence_count, imported_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
	sentences = excluded.sentences,
	sentence_count = excluded.sentence_count,
	imported_at = excluded.imported_at`
	now := time.Now().UnixMilli()
	if _, err := s.db.ExecContext(ctx, q, uuid.NewString(), name, string(payload), len(list), now); err != nil {
		return "", fmt.Errorf("failed to save deck %q: %w", name, err)
	}

	var id string
	if err := s.db.QueryRowContext(ctx, "SELECT id FROM decks WHERE name = ?", name).Scan(&id); err != nil {
		return "", fmt.Errorf("failed to get ID for deck %q: %w", name, err)
	}
	s.log.Debug().Str("deck", name).Str("id", id).Int("sentences", len(list)).Msg("deck saved")
	return id, nil
}

// LoadDeck returns the deck called name, or ErrDeckNotFound.
func (s *Store) LoadDeck(ctx context.Context, name string) (Deck, error) {
	var (
		d       Deck
		payload string
		ms      int64
	)
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, sentences, imported_at FROM decks WHERE name = ?", name,
	).Scan(&d.ID, &d.Name, &payload, &ms)
	if errors.Is(err, sql.ErrNoRows) {
		return Deck{}, fmt.Errorf("%w: %s", ErrDeckNotFound, name)
	}
	if err != nil {
		return Deck{}, fmt.Errorf("failed to load deck %q: %w", name, err)
	}

	d.Sentences, err = sentences.Parse([]byte(payload))
	if err != nil {
		return Deck{}, fmt.Errorf("deck %q is corrupt: %w", name, err)
	}
	d.ImportedAt = time.UnixMilli(ms)
	return d, nil
}

// ListDecks returns all decks, most recently imported first.
func (s *Store) ListDecks(ctx context.Context) ([]DeckInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name, sentence_count, imported_at FROM decks ORDER BY imported_at DESC, name ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query decks: %w", err)
	}
	defer rows.Close()

	var decks []DeckInfo
	for rows.Next() {
		var (
			info DeckInfo
			ms   int64
		)
		if err := rows.Scan(&info.Name, &info.Count, &ms); err != nil {
			return nil, fmt.Errorf("failed to scan deck row: %w", err)
		}
		info.ImportedAt = time.UnixMilli(ms)
		decks = append(decks, info)
	}
	return decks, rows.Err()
}

// DeckName is the library name for a sentence file: its base name without
// the extension.
func DeckName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
