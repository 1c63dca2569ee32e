package match

import (
	"time"

	"github.com/mcoot/wordduel/internal/model"
)

// boardResolver produces the board a legal move leads to
type boardResolver interface {
	ResultingBoard(board *model.Board, player model.PlayerIndex, move model.Move) (*model.Board, error)
}

// checkTurn rejects any action on an ended match or out of turn
func checkTurn(m *model.Match, idx model.PlayerIndex) error {
	if m.Ended {
		return model.ErrMatchEnded
	}
	if m.CurrentTurn != idx {
		return model.ErrNotPlayerTurn
	}
	return nil
}

// checkHand matches every placement to a distinct hand tile that can be
// played as the chosen letter, and returns the hand indices used
func checkHand(hand model.Hand, move model.Move) (map[int]bool, error) {
	used := make(map[int]bool, len(move))
	for _, p := range move {
		tile, ok := hand.Tile(p.HandIndex)
		if !ok || used[p.HandIndex] {
			return nil, model.ErrPieceNotInHand
		}
		if !tile.Matches(p.Letter) {
			return nil, model.ErrLetterMismatch
		}
		used[p.HandIndex] = true
	}
	return used, nil
}

// applyPlay commits a move for the player at idx. Nothing is changed unless
// every check passes.
func applyPlay(m *model.Match, idx model.PlayerIndex, move model.Move, resolver boardResolver, now time.Time) error {
	if err := checkTurn(m, idx); err != nil {
		return err
	}

	mover := m.Player(idx)
	used, err := checkHand(mover.Hand, move)
	if err != nil {
		return err
	}

	next, err := resolver.ResultingBoard(m.Board, idx, move)
	if err != nil {
		return err
	}

	hand := mover.Hand.Without(used)
	hand = append(hand, m.Bag.DrawAtMost(len(move))...)
	mover.Hand = hand.Sorted()
	m.Board = next

	// A play breaks the opponent's pass chain
	m.Player(idx.Opponent()).Passed = false
	m.CurrentTurn = idx.Opponent()
	m.LastUpdate = now
	return nil
}

// applyPass records a pass for the player at idx, ending the match if the
// opponent had already passed. The turn flips either way.
func applyPass(m *model.Match, idx model.PlayerIndex, now time.Time) error {
	if err := checkTurn(m, idx); err != nil {
		return err
	}

	m.Player(idx).Passed = true
	if m.Player(idx.Opponent()).Passed {
		m.Ended = true
	}
	m.CurrentTurn = idx.Opponent()
	m.LastUpdate = now
	return nil
}

// applyAcknowledge marks the end as seen by the player at idx
func applyAcknowledge(m *model.Match, idx model.PlayerIndex) error {
	if !m.Ended {
		return model.ErrMatchNotEnded
	}
	m.Player(idx).AcknowledgedEnded = true
	return nil
}
