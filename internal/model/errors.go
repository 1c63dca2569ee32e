package model

import (
	"errors"
	"fmt"
)

// Rejection is a user-reportable refusal of an action. Its message is safe
// to show directly to the acting player.
type Rejection struct {
	reason string
}

func newRejection(reason string) *Rejection {
	return &Rejection{reason: reason}
}

func (r *Rejection) Error() string {
	return r.reason
}

// IsRejection returns true if err is (or wraps) a user-reportable rejection
func IsRejection(err error) bool {
	var r *Rejection
	return errors.As(err, &r)
}

// Move rejections
var (
	ErrNoTilesPlaced = newRejection("at least one tile must be placed")
	ErrOutOfBounds   = newRejection("tiles must be placed inside the board")
	ErrNotInLine     = newRejection("tiles must be in a straight line")
	ErrNotAdjacent   = newRejection("at least one tile must touch another existing tile")
	ErrCellOccupied  = newRejection("tiles cannot be played where existing tiles are")
	ErrInvalidWord   = newRejection("not a valid word")
	ErrGap           = newRejection("tiles must be placed in a line with no gaps")
)

// Turn rejections
var (
	ErrPieceNotInHand  = newRejection("you don't have that piece in your hand")
	ErrLetterMismatch  = newRejection("that piece isn't that letter")
	ErrNotPlayerTurn   = newRejection("it's not your turn")
	ErrMatchEnded      = newRejection("this game has finished")
	ErrMatchNotEnded   = newRejection("this game hasn't ended yet")
	ErrNotInMatch      = newRejection("you aren't in that game")
	ErrSelfMatch       = newRejection("you can't play against yourself")
	ErrMissingPlayerID = newRejection("a player identity is required")
)

// InvalidWordError reports a run of letters that is not in the lexicon
type InvalidWordError struct {
	Word string
}

func (e *InvalidWordError) Error() string {
	return fmt.Sprintf("%s is not a valid word", e.Word)
}

// Unwrap lets errors.Is(err, ErrInvalidWord) match
func (e *InvalidWordError) Unwrap() error {
	return ErrInvalidWord
}

// Not-found errors
var (
	ErrMatchNotFound    = errors.New("match not found")
	ErrLexiconNotStored = errors.New("lexicon not stored")
)
