package factory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/wordduel/internal/model"
	sqlitestorage "github.com/mcoot/wordduel/internal/storage/sqlite"
)

const (
	alice model.PlayerID = "alice"
	bob   model.PlayerID = "bob"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.app.LoadTestLexicon()
}

func place(handIndex int, letter model.Letter, x, y int) model.Placement {
	return model.Placement{HandIndex: handIndex, Letter: letter, Position: model.Position{X: x, Y: y}}
}

// Test: Complete match from creation to both players acknowledging the end
func (s *IntegrationSuite) TestCompleteMatchFlow() {
	// Step 1: Create the match
	m, notifications, err := s.app.MatchController.CreateMatch(s.ctx, alice, bob)
	s.Require().NoError(err)
	s.Len(notifications, 2)
	id := m.ID

	// Step 2: Alice has no playable word and passes
	_, _, err = s.app.MatchController.Pass(s.ctx, id, alice)
	s.Require().NoError(err)

	// Step 3: Bob plays TUT across the middle of the board
	tut := model.Move{place(0, 'T', 7, 7), place(2, 'U', 8, 7), place(1, 'T', 9, 7)}
	s.Require().NoError(s.app.MatchController.Validate(s.ctx, id, bob, tut))
	m, notifications, err = s.app.MatchController.Play(s.ctx, id, bob, tut)
	s.Require().NoError(err)
	s.Len(notifications, 4)
	s.False(m.Players[0].Passed, "a play resets the opponent's pass")
	s.Equal(model.TotalTiles, m.TileCount())

	view, err := s.app.MatchController.View(s.ctx, id, bob)
	s.Require().NoError(err)
	s.Equal("TTTUUUV", handString(view.Hand))
	s.Equal(3, view.Scores.Mine)
	s.Equal(0, view.Scores.Theirs)
	s.False(view.MyTurn)

	// Step 4: Both pass in a row and the match ends
	_, _, err = s.app.MatchController.Pass(s.ctx, id, alice)
	s.Require().NoError(err)
	m, _, err = s.app.MatchController.Pass(s.ctx, id, bob)
	s.Require().NoError(err)
	s.Equal(model.MatchStateEnded, m.State())

	_, _, err = s.app.MatchController.Pass(s.ctx, id, alice)
	s.ErrorIs(err, model.ErrMatchEnded)

	scores, err := s.app.MatchController.Scores(s.ctx, id, alice)
	s.Require().NoError(err)
	s.Equal(0, scores.Mine)
	s.Equal(3, scores.Theirs)

	// Step 5: Both acknowledge and the match is gone
	_, err = s.app.MatchController.Acknowledge(s.ctx, id, alice)
	s.Require().NoError(err)

	ongoing, err := s.app.MatchController.ListOngoing(s.ctx, alice)
	s.Require().NoError(err)
	s.Empty(ongoing)
	ongoing, err = s.app.MatchController.ListOngoing(s.ctx, bob)
	s.Require().NoError(err)
	s.Equal([]model.MatchID{id}, ongoing)

	_, err = s.app.MatchController.Acknowledge(s.ctx, id, bob)
	s.Require().NoError(err)

	_, err = s.app.MatchController.GetMatch(s.ctx, id)
	s.ErrorIs(err, model.ErrMatchNotFound)
}

// Test: A cross word formed by a later play must be a word too
func (s *IntegrationSuite) TestCrossWordRejected() {
	m, _, err := s.app.MatchController.CreateMatch(s.ctx, bob, alice)
	s.Require().NoError(err)

	// Bob holds VWWXYYZ and opens with a lone V
	_, _, err = s.app.MatchController.Play(s.ctx, m.ID, bob, model.Move{place(0, 'V', 7, 7)})
	s.Require().NoError(err)

	// Alice (TTUUUUV) extends V downward with T: VT is not a word
	_, _, err = s.app.MatchController.Play(s.ctx, m.ID, alice, model.Move{place(0, 'T', 7, 8)})
	s.ErrorIs(err, model.ErrInvalidWord)
	s.EqualError(err, "VT is not a valid word")

	// The rejected move leaves the match untouched
	stored, err := s.app.Storage.GetMatch(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal(1, stored.Board.PieceCount())
	s.Equal(model.PlayerIndex(1), stored.CurrentTurn)
}

// Test: Timestamps follow the injected clock
func (s *IntegrationSuite) TestLastUpdateFollowsClock() {
	m, _, err := s.app.MatchController.CreateMatch(s.ctx, alice, bob)
	s.Require().NoError(err)
	created := m.LastUpdate

	s.app.MockClock.Advance(5 * time.Minute)
	m, _, err = s.app.MatchController.Pass(s.ctx, m.ID, alice)
	s.Require().NoError(err)

	s.Equal(created.Add(5*time.Minute), m.LastUpdate)
}

func handString(h model.Hand) string {
	var out string
	for _, t := range h {
		out += t.String()
	}
	return out
}

func TestNewWithSQLiteStorage(t *testing.T) {
	ctx := context.Background()
	app, err := New(ctx, Config{
		StorageType:  StorageTypeSQLite,
		SQLiteConfig: &sqlitestorage.Config{Path: filepath.Join(t.TempDir(), "wordduel.db")},
	})
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Close()) }()

	m, _, err := app.MatchController.CreateMatch(ctx, alice, bob)
	require.NoError(t, err)

	got, err := app.MatchController.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, m.ID, got.ID)
	require.Equal(t, model.TotalTiles, got.TileCount())
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	_, err := New(context.Background(), Config{StorageType: "postgres"})
	require.Error(t, err)

	_, err = New(context.Background(), Config{StorageType: StorageTypeRedis})
	require.Error(t, err)

	_, err = New(context.Background(), Config{StorageType: StorageTypeSQLite})
	require.Error(t, err)
}

func TestNewLoadsLexiconFile(t *testing.T) {
	ctx := context.Background()
	app, err := New(ctx, Config{LexiconPath: filepath.Join(t.TempDir(), "missing.txt")})
	require.NoError(t, err)
	defer func() { require.NoError(t, app.Close()) }()

	require.True(t, app.Lexicon.IsLoaded())
	require.Zero(t, app.Lexicon.WordCount())
}
