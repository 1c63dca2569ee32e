package storage

import (
	"context"

	"github.com/mcoot/wordduel/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Match operations
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error

	// Roster operations (the ongoing matches of each player)
	AddToRoster(ctx context.Context, playerID model.PlayerID, matchID model.MatchID) error
	RemoveFromRoster(ctx context.Context, playerID model.PlayerID, matchID model.MatchID) error
	GetRoster(ctx context.Context, playerID model.PlayerID) ([]model.MatchID, error)

	// Lexicon operations
	GetLexiconWords(ctx context.Context) ([]string, error)
	SaveLexiconWords(ctx context.Context, words []string) error
}
