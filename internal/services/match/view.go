package match

import (
	"time"

	"github.com/mcoot/wordduel/internal/model"
)

// Scores are a pair of totals from one player's point of view
type Scores struct {
	Mine   int
	Theirs int
}

// View is a match as seen by one of its players
type View struct {
	ID             model.MatchID
	State          model.MatchState
	Board          *model.Board
	Hand           model.Hand
	Opponent       model.PlayerID
	OpponentPassed bool
	MyTurn         bool
	Ended          bool
	BagCount       int
	Scores         Scores
	LastUpdate     time.Time
}

func newView(m *model.Match, idx model.PlayerIndex, totals [2]int) *View {
	me := m.Player(idx)
	them := m.Player(idx.Opponent())
	return &View{
		ID:             m.ID,
		State:          m.State(),
		Board:          m.Board.Clone(),
		Hand:           me.Hand.Clone(),
		Opponent:       them.ID,
		OpponentPassed: them.Passed,
		MyTurn:         !m.Ended && m.CurrentTurn == idx,
		Ended:          m.Ended,
		BagCount:       m.Bag.Len(),
		Scores:         scoresFor(totals, idx),
		LastUpdate:     m.LastUpdate,
	}
}

func scoresFor(totals [2]int, idx model.PlayerIndex) Scores {
	return Scores{Mine: totals[idx], Theirs: totals[idx.Opponent()]}
}
