package request

import (
	"fmt"
	"strings"

	"github.com/mcoot/wordduel/internal/model"
)

// CreateMatchRequest is the request body for starting a match
type CreateMatchRequest struct {
	Opponent string `json:"opponent"`
}

// Placement puts the hand tile at index Piece onto the board at (X, Y)
type Placement struct {
	Piece  int    `json:"piece"`
	Letter string `json:"letter"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// MoveRequest is the request body for validating or playing a move
type MoveRequest struct {
	Placements []Placement `json:"placements"`
}

// ToMove converts the request into a model.Move.
// Letters are case-insensitive.
func (r MoveRequest) ToMove() (model.Move, error) {
	move := make(model.Move, 0, len(r.Placements))
	for i, p := range r.Placements {
		var letter model.Letter
		if err := letter.UnmarshalText([]byte(strings.ToUpper(p.Letter))); err != nil {
			return nil, fmt.Errorf("placement %d: %w", i, err)
		}
		move = append(move, model.Placement{
			HandIndex: p.Piece,
			Letter:    letter,
			Position:  model.Position{X: p.X, Y: p.Y},
		})
	}
	return move, nil
}
