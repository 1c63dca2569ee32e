package rules

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordduel/internal/model"
)

type wordSet map[string]bool

func (w wordSet) Contains(word string) bool { return w[word] }

type ValidatorSuite struct {
	suite.Suite
	lexicon   wordSet
	validator *Validator
	board     *model.Board
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}

func (s *ValidatorSuite) SetupTest() {
	s.lexicon = wordSet{"CAT": true, "CATS": true, "AT": true, "TA": true}
	s.validator = New(s.lexicon)
	s.board = model.NewBoard(model.BoardSize)
}

func place(letter model.Letter, x, y int) model.Placement {
	return model.Placement{Letter: letter, Position: model.Position{X: x, Y: y}}
}

func (s *ValidatorSuite) put(owner model.PlayerIndex, letter model.Letter, x, y int) {
	s.board.Cells[y][x] = &model.Piece{Owner: owner, Letter: letter}
}

func (s *ValidatorSuite) TestEmptyMoveRejected() {
	err := s.validator.Validate(s.board, 0, model.Move{})
	s.ErrorIs(err, model.ErrNoTilesPlaced)
}

func (s *ValidatorSuite) TestOutOfBoundsRejected() {
	for _, p := range []model.Placement{place('A', -1, 0), place('A', 0, 15), place('A', 15, 3)} {
		err := s.validator.Validate(s.board, 0, model.Move{p})
		s.ErrorIs(err, model.ErrOutOfBounds)
	}
}

func (s *ValidatorSuite) TestNotInLineRejected() {
	move := model.Move{place('C', 7, 7), place('A', 8, 8)}
	err := s.validator.Validate(s.board, 0, move)
	s.ErrorIs(err, model.ErrNotInLine)
}

func (s *ValidatorSuite) TestSamePositionTwiceIsNotALine() {
	move := model.Move{place('A', 7, 7), place('T', 7, 7)}
	err := s.validator.Validate(s.board, 0, move)
	s.ErrorIs(err, model.ErrNotInLine)
}

func (s *ValidatorSuite) TestDuplicateTargetInLineConflicts() {
	move := model.Move{place('A', 7, 7), place('T', 8, 7), place('A', 7, 7)}
	err := s.validator.Validate(s.board, 0, move)
	s.ErrorIs(err, model.ErrCellOccupied)
}

func (s *ValidatorSuite) TestFirstMoveSingleTileAnywhere() {
	err := s.validator.Validate(s.board, 0, model.Move{place('Q', 0, 0)})
	s.NoError(err)
}

// A lone tile is never a run, so the opening move may be any single letter
// even with an empty lexicon. This boundary is intentional.
func (s *ValidatorSuite) TestSingleTileNonWordAllowedAsFirstMove() {
	validator := New(wordSet{})

	s.NoError(validator.Validate(s.board, 0, model.Move{place('Q', 7, 7)}))
}

func (s *ValidatorSuite) TestSingleTileFormingRunIsChecked() {
	s.put(1, 'X', 5, 4)

	err := s.validator.Validate(s.board, 0, model.Move{place('Q', 5, 5)})
	s.EqualError(err, "XQ is not a valid word")

	err = s.validator.Validate(s.board, 0, model.Move{place('Q', 9, 9)})
	s.ErrorIs(err, model.ErrNotAdjacent)
}

func (s *ValidatorSuite) TestWordOnEmptyBoard() {
	move := model.Move{place('C', 7, 7), place('A', 8, 7), place('T', 9, 7)}

	next, err := s.validator.ResultingBoard(s.board, 0, move)
	s.Require().NoError(err)
	s.Equal(3, next.PieceCount())
	s.Equal(0, s.board.PieceCount(), "original board must not change")

	piece, ok := next.Get(model.Position{X: 8, Y: 7})
	s.Require().True(ok)
	s.Equal(model.Piece{Owner: 0, Letter: 'A'}, piece)
}

func (s *ValidatorSuite) TestVerticalWord() {
	move := model.Move{place('T', 3, 5), place('C', 3, 3), place('A', 3, 4)}
	s.NoError(s.validator.Validate(s.board, 1, move))
}

func (s *ValidatorSuite) TestInvalidWordReportsWord() {
	move := model.Move{place('D', 7, 7), place('O', 8, 7), place('G', 9, 7)}

	err := s.validator.Validate(s.board, 0, move)
	s.ErrorIs(err, model.ErrInvalidWord)
	s.EqualError(err, "DOG is not a valid word")
	s.True(model.IsRejection(err))
}

func (s *ValidatorSuite) TestGapRejected() {
	// Vertical pair with (7,8) empty; each lone tile is not a run so only
	// the gap check catches it
	move := model.Move{place('A', 7, 7), place('T', 7, 9)}

	err := s.validator.Validate(s.board, 0, move)
	s.ErrorIs(err, model.ErrGap)
	s.Contains(err.Error(), "no gaps")
}

func (s *ValidatorSuite) TestHorizontalGapRejected() {
	move := model.Move{place('A', 2, 7), place('T', 4, 7)}
	err := s.validator.Validate(s.board, 0, move)
	s.ErrorIs(err, model.ErrGap)
}

func (s *ValidatorSuite) TestGapFilledByExistingTileAccepted() {
	s.put(1, 'A', 8, 7)

	move := model.Move{place('C', 7, 7), place('T', 9, 7)}
	s.NoError(s.validator.Validate(s.board, 0, move))
}

func (s *ValidatorSuite) TestNotAdjacentRejected() {
	s.put(1, 'A', 7, 7)
	s.put(1, 'T', 8, 7)

	move := model.Move{place('C', 0, 0), place('A', 1, 0), place('T', 2, 0)}
	err := s.validator.Validate(s.board, 0, move)
	s.ErrorIs(err, model.ErrNotAdjacent)
}

func (s *ValidatorSuite) TestConflictRejectedRegardlessOfWords() {
	s.put(1, 'C', 7, 7)
	s.put(1, 'A', 8, 7)

	err := s.validator.Validate(s.board, 0, model.Move{place('Z', 7, 7)})
	s.ErrorIs(err, model.ErrCellOccupied)

	err = s.validator.Validate(s.board, 0, model.Move{place('C', 7, 7), place('A', 8, 7), place('T', 9, 7)})
	s.ErrorIs(err, model.ErrCellOccupied)
}

func (s *ValidatorSuite) TestAdjacencyCheckedBeforeConflict() {
	s.put(1, 'C', 7, 7)

	// (7,7) is occupied but none of its neighbours are
	err := s.validator.Validate(s.board, 0, model.Move{place('Z', 7, 7)})
	s.ErrorIs(err, model.ErrNotAdjacent)
}

func (s *ValidatorSuite) TestExtendingExistingWord() {
	s.put(1, 'C', 7, 7)
	s.put(1, 'A', 8, 7)
	s.put(1, 'T', 9, 7)

	s.NoError(s.validator.Validate(s.board, 0, model.Move{place('S', 10, 7)}))
}

func (s *ValidatorSuite) TestCrossWordsRevalidated() {
	s.put(1, 'C', 7, 7)
	s.put(1, 'A', 8, 7)
	s.put(1, 'T', 9, 7)

	// T under the A makes the vertical word AT
	s.NoError(s.validator.Validate(s.board, 0, model.Move{place('T', 8, 8)}))

	err := s.validator.Validate(s.board, 0, model.Move{place('X', 8, 8)})
	s.EqualError(err, "AX is not a valid word")
}

func (s *ValidatorSuite) TestWholeBoardRescanFindsUnrelatedBadWord() {
	s.put(1, 'Z', 0, 0)
	s.put(1, 'Z', 1, 0)
	s.put(1, 'C', 7, 7)

	err := s.validator.Validate(s.board, 0, model.Move{place('A', 8, 7), place('T', 9, 7)})
	s.EqualError(err, "ZZ is not a valid word")
}

func (s *ValidatorSuite) TestFirstInvalidRunInScanOrderWins() {
	s.put(1, 'Z', 0, 9)
	s.put(1, 'Z', 1, 9)
	s.put(1, 'X', 4, 3)
	s.put(1, 'X', 5, 3)
	s.put(1, 'T', 6, 5)

	err := s.validator.Validate(s.board, 0, model.Move{place('A', 5, 5)})
	s.EqualError(err, "XX is not a valid word")
}

func (s *ValidatorSuite) TestResolvedBlankPlacesChosenLetter() {
	next, err := s.validator.ResultingBoard(s.board, 1, model.Move{place('Z', 7, 7)})
	s.Require().NoError(err)

	piece, ok := next.Get(model.Position{X: 7, Y: 7})
	s.Require().True(ok)
	s.Equal(model.Letter('Z'), piece.Letter)
	s.Equal(model.PlayerIndex(1), piece.Owner)
}

func (s *ValidatorSuite) TestRejectionIsIdempotent() {
	move := model.Move{place('A', 7, 7), place('T', 7, 9)}

	first := s.validator.Validate(s.board, 0, move)
	second := s.validator.Validate(s.board, 0, move)
	s.Require().Error(first)
	s.Equal(first.Error(), second.Error())
	s.Equal(0, s.board.PieceCount())
}

func (s *ValidatorSuite) TestChecksRunInOrder() {
	// Out of bounds is reported before the line check
	move := model.Move{place('A', 20, 0), place('B', 1, 1)}
	s.ErrorIs(s.validator.Validate(s.board, 0, move), model.ErrOutOfBounds)

	// Word check is reported before the gap check
	s.put(1, 'Q', 8, 7)
	move = model.Move{place('Q', 7, 7), place('Q', 10, 7)}
	err := s.validator.Validate(s.board, 0, move)
	s.EqualError(err, "QQ is not a valid word")
}

func (s *ValidatorSuite) TestHasGapPanicsWithoutAxis() {
	s.Panics(func() {
		hasGap(s.board, model.Move{place('A', 1, 1), place('B', 2, 2)})
	})
}
