package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mcoot/wordduel/internal/model"
	"github.com/mcoot/wordduel/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Matches are copied on the way in and out so callers never share state.
type Storage struct {
	mu sync.RWMutex

	matches      map[model.MatchID]*model.Match
	rosters      map[model.PlayerID]map[model.MatchID]struct{}
	lexiconWords []string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		matches: make(map[model.MatchID]*model.Match),
		rosters: make(map[model.PlayerID]map[model.MatchID]struct{}),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = match.Clone()
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, model.ErrMatchNotFound
	}
	return match.Clone(), nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.matches, id)
	return nil
}

// Roster operations

func (s *Storage) AddToRoster(ctx context.Context, playerID model.PlayerID, matchID model.MatchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	roster, ok := s.rosters[playerID]
	if !ok {
		roster = make(map[model.MatchID]struct{})
		s.rosters[playerID] = roster
	}
	roster[matchID] = struct{}{}
	return nil
}

func (s *Storage) RemoveFromRoster(ctx context.Context, playerID model.PlayerID, matchID model.MatchID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if roster, ok := s.rosters[playerID]; ok {
		delete(roster, matchID)
		if len(roster) == 0 {
			delete(s.rosters, playerID)
		}
	}
	return nil
}

func (s *Storage) GetRoster(ctx context.Context, playerID model.PlayerID) ([]model.MatchID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]model.MatchID, 0, len(s.rosters[playerID]))
	for id := range s.rosters[playerID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// Lexicon operations

func (s *Storage) GetLexiconWords(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lexiconWords == nil {
		return nil, model.ErrLexiconNotStored
	}
	result := make([]string, len(s.lexiconWords))
	copy(result, s.lexiconWords)
	return result, nil
}

func (s *Storage) SaveLexiconWords(ctx context.Context, words []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lexiconWords = make([]string, len(words))
	copy(s.lexiconWords, words)
	return nil
}
