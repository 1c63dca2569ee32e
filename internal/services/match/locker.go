package match

import (
	"sync"

	"github.com/mcoot/wordduel/internal/model"
)

// matchLocks hands out one mutex per match ID so that at most one
// load-apply-save is in flight for a match at a time. Entries are dropped
// once nobody holds or waits on them.
type matchLocks struct {
	mu    sync.Mutex
	locks map[model.MatchID]*matchLock
}

type matchLock struct {
	mu   sync.Mutex
	refs int
}

func newMatchLocks() *matchLocks {
	return &matchLocks{locks: make(map[model.MatchID]*matchLock)}
}

// lock blocks until the match is free and returns the unlock func
func (l *matchLocks) lock(id model.MatchID) func() {
	l.mu.Lock()
	entry, ok := l.locks[id]
	if !ok {
		entry = &matchLock{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}

// size returns the number of matches currently locked or waited on
func (l *matchLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
