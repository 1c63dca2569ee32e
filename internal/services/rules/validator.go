package rules

import (
	"github.com/mcoot/wordduel/internal/model"
)

// Lexicon is the word membership test the validator needs
type Lexicon interface {
	Contains(word string) bool
}

// Validator decides whether a move is legal on a board. It never modifies
// the board it is given.
type Validator struct {
	lexicon Lexicon
}

// New creates a new Validator
func New(lexicon Lexicon) *Validator {
	return &Validator{lexicon: lexicon}
}

// Validate checks a move for the given player, short-circuiting on the
// first failure. The returned error is always a model rejection.
func (v *Validator) Validate(board *model.Board, player model.PlayerIndex, move model.Move) error {
	_, err := v.ResultingBoard(board, player, move)
	return err
}

// ResultingBoard validates the move and returns the board it would produce
func (v *Validator) ResultingBoard(board *model.Board, player model.PlayerIndex, move model.Move) (*model.Board, error) {
	if len(move) == 0 {
		return nil, model.ErrNoTilesPlaced
	}

	for _, p := range move {
		if !board.IsValidPosition(p.Position) {
			return nil, model.ErrOutOfBounds
		}
	}

	sameX, sameY := alignment(move)
	if len(move) > 1 && sameX == sameY {
		return nil, model.ErrNotInLine
	}

	if board.HasPieces() && !touchesExisting(board, move) {
		return nil, model.ErrNotAdjacent
	}

	next, err := board.Apply(player, move)
	if err != nil {
		return nil, err
	}

	if run, ok := InvalidRun(next, v.lexicon); ok {
		return nil, &model.InvalidWordError{Word: run.Word}
	}

	if hasGap(next, move) {
		return nil, model.ErrGap
	}

	return next, nil
}

// alignment reports whether every placement shares the first one's x
// (vertical line) and whether every placement shares its y (horizontal line)
func alignment(move model.Move) (sameX, sameY bool) {
	sameX, sameY = true, true
	first := move[0].Position
	for _, p := range move[1:] {
		if p.Position.X != first.X {
			sameX = false
		}
		if p.Position.Y != first.Y {
			sameY = false
		}
	}
	return sameX, sameY
}

// touchesExisting reports whether any placement is orthogonally next to a
// piece already on the board
func touchesExisting(board *model.Board, move model.Move) bool {
	for _, p := range move {
		for _, n := range p.Position.Neighbors() {
			if board.IsOccupied(n) {
				return true
			}
		}
	}
	return false
}

// hasGap walks the played line from the lowest to the highest placement
// and reports whether any cell in between is empty on the resulting board.
// It panics if the move has no line axis, which earlier checks rule out.
func hasGap(board *model.Board, move model.Move) bool {
	sameX, sameY := alignment(move)

	coord := func(p model.Position) int { return p.X }
	at := func(i int) model.Position { return model.Position{X: i, Y: move[0].Position.Y} }
	switch {
	case sameY:
	case sameX:
		coord = func(p model.Position) int { return p.Y }
		at = func(i int) model.Position { return model.Position{X: move[0].Position.X, Y: i} }
	default:
		panic("rules: move is neither horizontal nor vertical")
	}

	lo, hi := coord(move[0].Position), coord(move[0].Position)
	for _, p := range move[1:] {
		lo = min(lo, coord(p.Position))
		hi = max(hi, coord(p.Position))
	}

	for i := lo + 1; i < hi; i++ {
		if !board.IsOccupied(at(i)) {
			return true
		}
	}
	return false
}

// Interface check
type ValidatorInterface interface {
	Validate(board *model.Board, player model.PlayerIndex, move model.Move) error
	ResultingBoard(board *model.Board, player model.PlayerIndex, move model.Move) (*model.Board, error)
}

var _ ValidatorInterface = (*Validator)(nil)
