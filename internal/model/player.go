package model

// PlayerID is the pre-authenticated identity of a player
type PlayerID string

// PlayerIndex is a player's seat in a match: 0 or 1
type PlayerIndex int

// Opponent returns the other seat
func (i PlayerIndex) Opponent() PlayerIndex {
	return 1 - i
}

// PlayerState is one player's side of a match
type PlayerState struct {
	ID                PlayerID
	Hand              Hand
	Passed            bool
	AcknowledgedEnded bool
}
