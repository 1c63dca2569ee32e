package match

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/wordduel/internal/dependencies/clock"
	"github.com/mcoot/wordduel/internal/dependencies/random"
	"github.com/mcoot/wordduel/internal/model"
	"github.com/mcoot/wordduel/internal/services/rules"
	"github.com/mcoot/wordduel/internal/services/scoring"
	"github.com/mcoot/wordduel/internal/storage"
)

// Controller runs the turn state machine for every match. Mutations of one
// match are serialized; different matches proceed independently.
type Controller struct {
	storage   storage.Storage
	validator *rules.Validator
	scoring   *scoring.Service
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger

	locks *matchLocks
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	validator *rules.Validator,
	scoring *scoring.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   storage,
		validator: validator,
		scoring:   scoring,
		clock:     clock,
		random:    random,
		logger:    logger,
		locks:     newMatchLocks(),
	}
}

// CreateMatch starts a match between two already-paired players. The
// challenger takes seat 0 and moves first.
func (c *Controller) CreateMatch(ctx context.Context, challenger, opponent model.PlayerID) (*model.Match, []model.Notification, error) {
	if challenger == "" || opponent == "" {
		return nil, nil, model.ErrMissingPlayerID
	}
	if challenger == opponent {
		return nil, nil, model.ErrSelfMatch
	}

	now := c.clock.Now()
	bag := model.NewBag(c.random)

	match := &model.Match{
		ID:    model.MatchID(uuid.NewString()),
		Board: model.NewBoard(model.BoardSize),
		Bag:   bag,
		Players: [2]model.PlayerState{
			{ID: challenger},
			{ID: opponent},
		},
		CurrentTurn: 0,
		CreatedAt:   now,
		LastUpdate:  now,
	}
	for i := range match.Players {
		match.Players[i].Hand = model.Hand(bag.DrawAtMost(model.HandSize)).Sorted()
	}

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		c.logStorageError("failed to save match", match.ID, err)
		return nil, nil, err
	}
	for i, p := range match.Players {
		if err := c.storage.AddToRoster(ctx, p.ID, match.ID); err != nil {
			c.logStorageError("failed to update roster", match.ID, err)
			c.discardMatch(ctx, match, i)
			return nil, nil, err
		}
	}

	c.logger.Info("match created",
		slog.String("match_id", string(match.ID)),
		slog.String("challenger", string(challenger)),
		slog.String("opponent", string(opponent)),
	)

	return match, model.RosterNotifications(match), nil
}

// GetMatch retrieves a match by ID
func (c *Controller) GetMatch(ctx context.Context, matchID model.MatchID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, matchID)
}

// View returns the match as seen by the given player
func (c *Controller) View(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*View, error) {
	match, idx, err := c.load(ctx, matchID, playerID)
	if err != nil {
		return nil, err
	}
	return newView(match, idx, c.scoring.Scores(match.Board)), nil
}

// Scores returns (mine, theirs) for the given player
func (c *Controller) Scores(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (Scores, error) {
	match, idx, err := c.load(ctx, matchID, playerID)
	if err != nil {
		return Scores{}, err
	}
	return scoresFor(c.scoring.Scores(match.Board), idx), nil
}

// Validate checks a move against the player's hand and the current board
// without changing anything. Turn order is not checked, so players can try
// moves while waiting.
func (c *Controller) Validate(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, move model.Move) error {
	match, idx, err := c.load(ctx, matchID, playerID)
	if err != nil {
		return err
	}
	if _, err := checkHand(match.Player(idx).Hand, move); err != nil {
		return err
	}
	return c.validator.Validate(match.Board, idx, move)
}

// Play applies a move for the given player and returns the updated match
func (c *Controller) Play(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, move model.Move) (*model.Match, []model.Notification, error) {
	unlock := c.locks.lock(matchID)
	defer unlock()

	match, idx, err := c.load(ctx, matchID, playerID)
	if err != nil {
		return nil, nil, err
	}

	if err := applyPlay(match, idx, move, c.validator, c.clock.Now()); err != nil {
		c.logRejection("play rejected", matchID, playerID, err)
		return nil, nil, err
	}

	if err := c.save(ctx, match); err != nil {
		return nil, nil, err
	}

	c.logger.Debug("move played",
		slog.String("match_id", string(matchID)),
		slog.String("player_id", string(playerID)),
		slog.Int("tiles", len(move)),
	)

	return match, model.MatchNotifications(match), nil
}

// Pass gives up the player's turn. Two passes in a row end the match.
func (c *Controller) Pass(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, []model.Notification, error) {
	unlock := c.locks.lock(matchID)
	defer unlock()

	match, idx, err := c.load(ctx, matchID, playerID)
	if err != nil {
		return nil, nil, err
	}

	if err := applyPass(match, idx, c.clock.Now()); err != nil {
		c.logRejection("pass rejected", matchID, playerID, err)
		return nil, nil, err
	}

	if err := c.save(ctx, match); err != nil {
		return nil, nil, err
	}

	if match.Ended {
		scores := c.scoring.Scores(match.Board)
		c.logger.Info("match ended",
			slog.String("match_id", string(matchID)),
			slog.Int("score_0", scores[0]),
			slog.Int("score_1", scores[1]),
		)
	}

	return match, model.MatchNotifications(match), nil
}

// Acknowledge records that the player has seen the end of the match. Once
// both players have, the match is removed from both rosters and deleted.
func (c *Controller) Acknowledge(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) ([]model.Notification, error) {
	unlock := c.locks.lock(matchID)
	defer unlock()

	match, idx, err := c.load(ctx, matchID, playerID)
	if err != nil {
		return nil, err
	}

	if err := applyAcknowledge(match, idx); err != nil {
		return nil, err
	}

	if !match.BothAcknowledged() {
		if err := c.save(ctx, match); err != nil {
			return nil, err
		}
		return model.RosterNotifications(match), nil
	}

	for _, p := range match.Players {
		if err := c.storage.RemoveFromRoster(ctx, p.ID, matchID); err != nil {
			c.logStorageError("failed to update roster", matchID, err)
			return nil, err
		}
	}
	if err := c.storage.DeleteMatch(ctx, matchID); err != nil {
		c.logStorageError("failed to delete match", matchID, err)
		return nil, err
	}

	c.logger.Info("match closed", slog.String("match_id", string(matchID)))

	return model.RosterNotifications(match), nil
}

// ListOngoing returns the IDs of the player's matches that they have not
// acknowledged yet. Roster entries whose match has expired are dropped.
func (c *Controller) ListOngoing(ctx context.Context, playerID model.PlayerID) ([]model.MatchID, error) {
	ids, err := c.storage.GetRoster(ctx, playerID)
	if err != nil {
		return nil, err
	}

	ongoing := make([]model.MatchID, 0, len(ids))
	for _, id := range ids {
		match, err := c.storage.GetMatch(ctx, id)
		if errors.Is(err, model.ErrMatchNotFound) {
			_ = c.storage.RemoveFromRoster(ctx, playerID, id)
			continue
		}
		if err != nil {
			return nil, err
		}
		idx, ok := match.PlayerIndex(playerID)
		if !ok || match.Player(idx).AcknowledgedEnded {
			continue
		}
		ongoing = append(ongoing, id)
	}
	return ongoing, nil
}

// load fetches a match and the seat of the given player in it
func (c *Controller) load(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, model.PlayerIndex, error) {
	if playerID == "" {
		return nil, 0, model.ErrMissingPlayerID
	}
	match, err := c.storage.GetMatch(ctx, matchID)
	if err != nil {
		return nil, 0, err
	}
	idx, ok := match.PlayerIndex(playerID)
	if !ok {
		return nil, 0, model.ErrNotInMatch
	}
	return match, idx, nil
}

func (c *Controller) save(ctx context.Context, match *model.Match) error {
	if err := c.storage.SaveMatch(ctx, match); err != nil {
		c.logStorageError("failed to save match", match.ID, err)
		return err
	}
	return nil
}

// discardMatch removes a match whose creation failed part way, along with
// the first added roster entries
func (c *Controller) discardMatch(ctx context.Context, match *model.Match, added int) {
	for _, p := range match.Players[:added] {
		if err := c.storage.RemoveFromRoster(ctx, p.ID, match.ID); err != nil {
			c.logStorageError("failed to roll back roster", match.ID, err)
		}
	}
	if err := c.storage.DeleteMatch(ctx, match.ID); err != nil {
		c.logStorageError("failed to roll back match", match.ID, err)
	}
}

func (c *Controller) logStorageError(msg string, matchID model.MatchID, err error) {
	c.logger.Error(msg,
		slog.String("match_id", string(matchID)),
		slog.String("error", err.Error()),
	)
}

func (c *Controller) logRejection(msg string, matchID model.MatchID, playerID model.PlayerID, err error) {
	c.logger.Debug(msg,
		slog.String("match_id", string(matchID)),
		slog.String("player_id", string(playerID)),
		slog.String("reason", err.Error()),
	)
}

// Interface check
type ControllerInterface interface {
	CreateMatch(ctx context.Context, challenger, opponent model.PlayerID) (*model.Match, []model.Notification, error)
	GetMatch(ctx context.Context, matchID model.MatchID) (*model.Match, error)
	View(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*View, error)
	Scores(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (Scores, error)
	Validate(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, move model.Move) error
	Play(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, move model.Move) (*model.Match, []model.Notification, error)
	Pass(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, []model.Notification, error)
	Acknowledge(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) ([]model.Notification, error)
	ListOngoing(ctx context.Context, playerID model.PlayerID) ([]model.MatchID, error)
}

var _ ControllerInterface = (*Controller)(nil)
