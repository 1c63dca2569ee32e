package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/mcoot/wordduel/internal/model"
	"github.com/mcoot/wordduel/internal/storage"
)

// Storage is a SQLite-backed implementation of the storage interface.
// Matches are stored as JSON documents keyed by ID.
type Storage struct {
	db *sql.DB
}

// New opens the database at cfg.Path and applies pending migrations
func New(ctx context.Context, cfg Config, logger *slog.Logger) (*Storage, error) {
	db, err := openDB(cfg.Path)
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database
func (s *Storage) Close() error {
	return s.db.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	data, err := json.Marshal(match)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
        INSERT INTO matches (id, data, last_update) VALUES (?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET data=excluded.data, last_update=excluded.last_update`,
		string(match.ID), string(data), match.LastUpdate.UTC(),
	)
	return err
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM matches WHERE id=?`, string(id)).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}

	var match model.Match
	if err := json.Unmarshal([]byte(data), &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM matches WHERE id=?`, string(id))
	return err
}

// Roster operations

func (s *Storage) AddToRoster(ctx context.Context, playerID model.PlayerID, matchID model.MatchID) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO rosters (player_id, match_id) VALUES (?, ?)`,
		string(playerID), string(matchID),
	)
	return err
}

func (s *Storage) RemoveFromRoster(ctx context.Context, playerID model.PlayerID, matchID model.MatchID) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM rosters WHERE player_id=? AND match_id=?`,
		string(playerID), string(matchID),
	)
	return err
}

func (s *Storage) GetRoster(ctx context.Context, playerID model.PlayerID) ([]model.MatchID, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT match_id FROM rosters WHERE player_id=? ORDER BY match_id ASC`,
		string(playerID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []model.MatchID{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, model.MatchID(id))
	}
	return ids, rows.Err()
}

// Lexicon operations

func (s *Storage) GetLexiconWords(ctx context.Context) ([]string, error) {
	var stored int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM lexicon_stored`).Scan(&stored)
	if err != nil {
		return nil, err
	}
	if stored == 0 {
		return nil, model.ErrLexiconNotStored
	}

	rows, err := s.db.QueryContext(ctx, `SELECT word FROM lexicon`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func (s *Storage) SaveLexiconWords(ctx context.Context, words []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM lexicon`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO lexicon (word) VALUES (?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, w := range words {
		if _, err := stmt.ExecContext(ctx, w); err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO lexicon_stored (id) VALUES (1)`); err != nil {
		return err
	}
	return tx.Commit()
}
