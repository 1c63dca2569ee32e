// Package storagetest holds the behaviour every storage backend must share.
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordduel/internal/model"
	"github.com/mcoot/wordduel/internal/storage"
)

// Suite runs the common storage contract. Backends embed it and set Storage
// in their own SetupTest.
type Suite struct {
	suite.Suite
	Storage storage.Storage
	Ctx     context.Context
}

// SampleMatch builds a small mid-game match with a blank in a hand and
// pieces from both players on the board
func SampleMatch(id model.MatchID, p0, p1 model.PlayerID) *model.Match {
	board := model.NewBoard(model.BoardSize)
	board.Cells[7][7] = &model.Piece{Owner: 0, Letter: 'C'}
	board.Cells[7][8] = &model.Piece{Owner: 0, Letter: 'A'}
	board.Cells[8][8] = &model.Piece{Owner: 1, Letter: 'T'}

	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Match{
		ID:    id,
		Board: board,
		Bag:   &model.Bag{Tiles: []model.Tile{model.LetterTile('E'), model.BlankTile()}},
		Players: [2]model.PlayerState{
			{ID: p0, Hand: model.Hand{model.BlankTile(), model.LetterTile('Q')}, Passed: true},
			{ID: p1, Hand: model.Hand{model.LetterTile('Z')}, AcknowledgedEnded: false},
		},
		CurrentTurn: 1,
		CreatedAt:   created,
		LastUpdate:  created.Add(time.Minute),
	}
}

// Match tests

func (s *Suite) TestSaveAndGetMatchRoundTrips() {
	match := SampleMatch("match-1", "alice", "bob")

	s.Require().NoError(s.Storage.SaveMatch(s.Ctx, match))

	retrieved, err := s.Storage.GetMatch(s.Ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(match.ID, retrieved.ID)
	s.Equal(match.CurrentTurn, retrieved.CurrentTurn)
	s.Equal(match.Ended, retrieved.Ended)
	s.Equal(match.Players, retrieved.Players)
	s.Equal(match.Bag.Tiles, retrieved.Bag.Tiles)
	s.Equal(match.Board.Cells, retrieved.Board.Cells)
	s.True(match.LastUpdate.Equal(retrieved.LastUpdate))
	s.Equal(match.TileCount(), retrieved.TileCount())
}

func (s *Suite) TestGetMatchNotFound() {
	_, err := s.Storage.GetMatch(s.Ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *Suite) TestSaveMatchOverwrites() {
	match := SampleMatch("match-1", "alice", "bob")
	s.Require().NoError(s.Storage.SaveMatch(s.Ctx, match))

	match.Ended = true
	match.CurrentTurn = 0
	s.Require().NoError(s.Storage.SaveMatch(s.Ctx, match))

	retrieved, err := s.Storage.GetMatch(s.Ctx, "match-1")
	s.Require().NoError(err)
	s.True(retrieved.Ended)
	s.Equal(model.PlayerIndex(0), retrieved.CurrentTurn)
}

func (s *Suite) TestRetrievedMatchIsDetached() {
	match := SampleMatch("match-1", "alice", "bob")
	s.Require().NoError(s.Storage.SaveMatch(s.Ctx, match))

	retrieved, err := s.Storage.GetMatch(s.Ctx, "match-1")
	s.Require().NoError(err)
	retrieved.Players[0].Passed = false
	retrieved.Board.Cells[0][0] = &model.Piece{Owner: 1, Letter: 'X'}

	again, err := s.Storage.GetMatch(s.Ctx, "match-1")
	s.Require().NoError(err)
	s.True(again.Players[0].Passed)
	s.False(again.Board.IsOccupied(model.Position{X: 0, Y: 0}))
}

func (s *Suite) TestDeleteMatch() {
	s.Require().NoError(s.Storage.SaveMatch(s.Ctx, SampleMatch("match-1", "alice", "bob")))

	s.Require().NoError(s.Storage.DeleteMatch(s.Ctx, "match-1"))

	_, err := s.Storage.GetMatch(s.Ctx, "match-1")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

// Roster tests

func (s *Suite) TestRosterAddAndRemove() {
	s.Require().NoError(s.Storage.AddToRoster(s.Ctx, "alice", "match-2"))
	s.Require().NoError(s.Storage.AddToRoster(s.Ctx, "alice", "match-1"))
	s.Require().NoError(s.Storage.AddToRoster(s.Ctx, "alice", "match-1"))
	s.Require().NoError(s.Storage.AddToRoster(s.Ctx, "bob", "match-1"))

	roster, err := s.Storage.GetRoster(s.Ctx, "alice")
	s.Require().NoError(err)
	s.Equal([]model.MatchID{"match-1", "match-2"}, roster)

	s.Require().NoError(s.Storage.RemoveFromRoster(s.Ctx, "alice", "match-1"))

	roster, err = s.Storage.GetRoster(s.Ctx, "alice")
	s.Require().NoError(err)
	s.Equal([]model.MatchID{"match-2"}, roster)

	roster, err = s.Storage.GetRoster(s.Ctx, "bob")
	s.Require().NoError(err)
	s.Equal([]model.MatchID{"match-1"}, roster)
}

func (s *Suite) TestEmptyRoster() {
	roster, err := s.Storage.GetRoster(s.Ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(roster)
}

// Lexicon tests

func (s *Suite) TestLexiconNotStored() {
	_, err := s.Storage.GetLexiconWords(s.Ctx)
	s.ErrorIs(err, model.ErrLexiconNotStored)
}

func (s *Suite) TestSaveAndGetLexiconWords() {
	s.Require().NoError(s.Storage.SaveLexiconWords(s.Ctx, []string{"CAT", "DOG"}))

	words, err := s.Storage.GetLexiconWords(s.Ctx)
	s.Require().NoError(err)
	s.ElementsMatch([]string{"CAT", "DOG"}, words)
}

func (s *Suite) TestSaveLexiconWordsReplaces() {
	s.Require().NoError(s.Storage.SaveLexiconWords(s.Ctx, []string{"CAT", "DOG"}))
	s.Require().NoError(s.Storage.SaveLexiconWords(s.Ctx, []string{"EMU"}))

	words, err := s.Storage.GetLexiconWords(s.Ctx)
	s.Require().NoError(err)
	s.Equal([]string{"EMU"}, words)
}
