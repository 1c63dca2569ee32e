package redis

import (
	"fmt"

	"github.com/mcoot/wordduel/internal/model"
)

// Key prefix for all wordduel data
const keyPrefix = "wordduel"

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// rosterKey returns the Redis key for the SET of match IDs a player is in
func rosterKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:roster:%s", keyPrefix, playerID)
}

// lexiconKey returns the Redis key for the lexicon word set
func lexiconKey() string {
	return fmt.Sprintf("%s:lexicon", keyPrefix)
}
