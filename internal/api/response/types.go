package response

import (
	"time"

	"github.com/mcoot/wordduel/internal/model"
	"github.com/mcoot/wordduel/internal/services/match"
)

// Cell is an occupied board cell
type Cell struct {
	Letter string `json:"letter"`
	Owner  int    `json:"owner"`
}

// Board represents the match board. Empty cells are null.
type Board struct {
	Size  int       `json:"size"`
	Cells [][]*Cell `json:"cells"`
}

// BoardFromModel converts model.Board to response Board
func BoardFromModel(b *model.Board) Board {
	cells := make([][]*Cell, b.Size)
	for y := 0; y < b.Size; y++ {
		cells[y] = make([]*Cell, b.Size)
		for x := 0; x < b.Size; x++ {
			if piece, ok := b.Get(model.Position{X: x, Y: y}); ok {
				cells[y][x] = &Cell{Letter: piece.Letter.String(), Owner: int(piece.Owner)}
			}
		}
	}
	return Board{Size: b.Size, Cells: cells}
}

// Scores represents both totals from the caller's point of view
type Scores struct {
	Mine   int `json:"mine"`
	Theirs int `json:"theirs"`
}

// ScoresFromModel converts match.Scores
func ScoresFromModel(s match.Scores) Scores {
	return Scores{Mine: s.Mine, Theirs: s.Theirs}
}

// MatchView represents a match as seen by the caller
type MatchView struct {
	ID             string    `json:"id"`
	State          string    `json:"state"`
	Board          Board     `json:"board"`
	Hand           []string  `json:"hand"`
	Opponent       string    `json:"opponent"`
	OpponentPassed bool      `json:"opponent_passed"`
	MyTurn         bool      `json:"my_turn"`
	Ended          bool      `json:"ended"`
	BagCount       int       `json:"bag_count"`
	Scores         Scores    `json:"scores"`
	LastUpdate     time.Time `json:"last_update"`
}

// MatchViewFromModel converts match.View
func MatchViewFromModel(v *match.View) MatchView {
	hand := make([]string, len(v.Hand))
	for i, t := range v.Hand {
		hand[i] = t.String()
	}
	return MatchView{
		ID:             string(v.ID),
		State:          string(v.State),
		Board:          BoardFromModel(v.Board),
		Hand:           hand,
		Opponent:       string(v.Opponent),
		OpponentPassed: v.OpponentPassed,
		MyTurn:         v.MyTurn,
		Ended:          v.Ended,
		BagCount:       v.BagCount,
		Scores:         ScoresFromModel(v.Scores),
		LastUpdate:     v.LastUpdate,
	}
}

// Roster lists the caller's ongoing matches
type Roster struct {
	Matches []string `json:"matches"`
}

// RosterFromModel converts a list of match IDs
func RosterFromModel(ids []model.MatchID) Roster {
	matches := make([]string, len(ids))
	for i, id := range ids {
		matches[i] = string(id)
	}
	return Roster{Matches: matches}
}

// ValidateResponse is the result of a dry-run move
type ValidateResponse struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// WordScore is the value of a word in the lexicon
type WordScore struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}
