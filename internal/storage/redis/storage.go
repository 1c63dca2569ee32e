package redis

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordduel/internal/model"
	"github.com/mcoot/wordduel/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Match operations

func (s *Storage) SaveMatch(ctx context.Context, match *model.Match) error {
	data, err := json.Marshal(match)
	if err != nil {
		return err
	}

	// Refresh both rosters along with the match so they expire together
	pipe := s.client.Pipeline()
	pipe.Set(ctx, matchKey(match.ID), data, s.cfg.MatchTTL)
	if s.cfg.MatchTTL > 0 {
		for _, p := range match.Players {
			pipe.Expire(ctx, rosterKey(p.ID), s.cfg.MatchTTL)
		}
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error) {
	data, err := s.client.Get(ctx, matchKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrMatchNotFound
		}
		return nil, err
	}

	var match model.Match
	if err := json.Unmarshal(data, &match); err != nil {
		return nil, err
	}
	return &match, nil
}

func (s *Storage) DeleteMatch(ctx context.Context, id model.MatchID) error {
	return s.client.Del(ctx, matchKey(id)).Err()
}

// Roster operations

func (s *Storage) AddToRoster(ctx context.Context, playerID model.PlayerID, matchID model.MatchID) error {
	key := rosterKey(playerID)

	pipe := s.client.Pipeline()
	pipe.SAdd(ctx, key, string(matchID))
	if s.cfg.MatchTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.MatchTTL)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) RemoveFromRoster(ctx context.Context, playerID model.PlayerID, matchID model.MatchID) error {
	return s.client.SRem(ctx, rosterKey(playerID), string(matchID)).Err()
}

func (s *Storage) GetRoster(ctx context.Context, playerID model.PlayerID) ([]model.MatchID, error) {
	members, err := s.client.SMembers(ctx, rosterKey(playerID)).Result()
	if err != nil {
		return nil, err
	}

	sort.Strings(members)
	ids := make([]model.MatchID, len(members))
	for i, m := range members {
		ids[i] = model.MatchID(m)
	}
	return ids, nil
}

// Lexicon operations

func (s *Storage) GetLexiconWords(ctx context.Context) ([]string, error) {
	key := lexiconKey()

	// Check if the lexicon exists
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrLexiconNotStored
	}

	return s.client.SMembers(ctx, key).Result()
}

func (s *Storage) SaveLexiconWords(ctx context.Context, words []string) error {
	key := lexiconKey()

	// Delete the existing lexicon and add new words atomically
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		// Convert []string to []interface{} for SAdd
		members := make([]interface{}, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, key, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}
