package scoring

import (
	"fmt"
	"strings"

	"github.com/mcoot/wordduel/internal/model"
)

// Lexicon is the word membership test used for word score lookups
type Lexicon interface {
	Contains(word string) bool
}

// Service computes scores from letter values. Scores are always derived
// from the board, never stored.
type Service struct {
	lexicon Lexicon
}

// New creates a new scoring Service
func New(lexicon Lexicon) *Service {
	return &Service{
		lexicon: lexicon,
	}
}

// Scores sums letter values per owner over every placed piece. It panics on
// a letter missing from the catalog, which only a corrupted board can hold.
func (s *Service) Scores(board *model.Board) [2]int {
	var scores [2]int
	for y := 0; y < board.Size; y++ {
		for x := 0; x < board.Size; x++ {
			piece, ok := board.Get(model.Position{X: x, Y: y})
			if !ok {
				continue
			}
			value, ok := model.LetterValue(piece.Letter)
			if !ok {
				panic(fmt.Sprintf("scoring: unknown letter %q at (%d, %d)", rune(piece.Letter), x, y))
			}
			scores[piece.Owner] += value
		}
	}
	return scores
}

// ScoreWord returns the letter-value sum of word if it is in the lexicon
func (s *Service) ScoreWord(word string) (int, bool) {
	word = strings.ToUpper(word)
	if !s.lexicon.Contains(word) {
		return 0, false
	}

	total := 0
	for _, r := range word {
		value, ok := model.LetterValue(model.Letter(r))
		if !ok {
			return 0, false
		}
		total += value
	}
	return total, true
}

// Interface check
type ServiceInterface interface {
	Scores(board *model.Board) [2]int
	ScoreWord(word string) (int, bool)
}

var _ ServiceInterface = (*Service)(nil)
