package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// MatchState is the externally visible phase of a match
type MatchState string

const (
	MatchStateAwaitingMove MatchState = "awaiting_move" // Current player must play or pass
	MatchStateEnded        MatchState = "ended"         // Both players passed in a row
	MatchStateClosed       MatchState = "closed"        // Both players acknowledged the end
)

// Match is the complete state of one two-player game
type Match struct {
	ID          MatchID
	Board       *Board
	Bag         *Bag
	Players     [2]PlayerState
	CurrentTurn PlayerIndex
	Ended       bool

	CreatedAt  time.Time
	LastUpdate time.Time
}

// PlayerIndex returns the seat of the given player, or false if they are not in the match
func (m *Match) PlayerIndex(id PlayerID) (PlayerIndex, bool) {
	for i, p := range m.Players {
		if p.ID == id {
			return PlayerIndex(i), true
		}
	}
	return 0, false
}

// Player returns the state for the given seat
func (m *Match) Player(i PlayerIndex) *PlayerState {
	return &m.Players[i]
}

// State derives the match phase from its flags
func (m *Match) State() MatchState {
	switch {
	case m.Ended && m.BothAcknowledged():
		return MatchStateClosed
	case m.Ended:
		return MatchStateEnded
	default:
		return MatchStateAwaitingMove
	}
}

// BothAcknowledged returns true once both players have acknowledged the end
func (m *Match) BothAcknowledged() bool {
	return m.Players[0].AcknowledgedEnded && m.Players[1].AcknowledgedEnded
}

// TileCount returns the tiles in the bag, both hands and on the board.
// It equals TotalTiles for the whole life of a match.
func (m *Match) TileCount() int {
	return m.Bag.Len() + len(m.Players[0].Hand) + len(m.Players[1].Hand) + m.Board.PieceCount()
}

// Clone returns a deep copy of the match
func (m *Match) Clone() *Match {
	clone := *m
	clone.Board = m.Board.Clone()
	clone.Bag = m.Bag.Clone()
	for i := range clone.Players {
		clone.Players[i].Hand = m.Players[i].Hand.Clone()
	}
	return &clone
}
