package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordduel/internal/api/middleware"
	"github.com/mcoot/wordduel/internal/api/request"
	"github.com/mcoot/wordduel/internal/api/response"
	"github.com/mcoot/wordduel/internal/model"
	"github.com/mcoot/wordduel/internal/services/match"
)

// Notifier delivers refresh notifications to connected players
type Notifier interface {
	Notify(notifications []model.Notification)
}

// MatchHandler handles match-related endpoints
type MatchHandler struct {
	controller *match.Controller
	notifier   Notifier
}

// NewMatchHandler creates a new match handler. notifier may be nil.
func NewMatchHandler(controller *match.Controller, notifier Notifier) *MatchHandler {
	return &MatchHandler{
		controller: controller,
		notifier:   notifier,
	}
}

func (h *MatchHandler) notify(notifications []model.Notification) {
	if h.notifier != nil {
		h.notifier.Notify(notifications)
	}
}

// writeView responds with the match as seen by the caller
func (h *MatchHandler) writeView(ctx context.Context, w http.ResponseWriter, status int, matchID model.MatchID, playerID model.PlayerID) {
	view, err := h.controller.View(ctx, matchID, playerID)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, status, response.MatchViewFromModel(view))
}

// Create handles POST /api/v1/matches
func (h *MatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	playerID := middleware.MustGetPlayerID(r.Context())

	var req request.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Opponent == "" {
		WriteError(w, NewInvalidRequestError("opponent is required"))
		return
	}

	m, notifications, err := h.controller.CreateMatch(r.Context(), playerID, model.PlayerID(req.Opponent))
	if err != nil {
		WriteError(w, err)
		return
	}
	h.notify(notifications)

	h.writeView(r.Context(), w, http.StatusCreated, m.ID, playerID)
}

// List handles GET /api/v1/matches
func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	playerID := middleware.MustGetPlayerID(r.Context())

	ids, err := h.controller.ListOngoing(r.Context(), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RosterFromModel(ids))
}

// Get handles GET /api/v1/matches/{id}
func (h *MatchHandler) Get(w http.ResponseWriter, r *http.Request) {
	playerID := middleware.MustGetPlayerID(r.Context())
	h.writeView(r.Context(), w, http.StatusOK, matchID(r), playerID)
}

// Scores handles GET /api/v1/matches/{id}/scores
func (h *MatchHandler) Scores(w http.ResponseWriter, r *http.Request) {
	playerID := middleware.MustGetPlayerID(r.Context())

	scores, err := h.controller.Scores(r.Context(), matchID(r), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoresFromModel(scores))
}

// Validate handles POST /api/v1/matches/{id}/validate.
// A rejected move is a successful response with valid set to false.
func (h *MatchHandler) Validate(w http.ResponseWriter, r *http.Request) {
	playerID := middleware.MustGetPlayerID(r.Context())

	move, ok := decodeMove(w, r)
	if !ok {
		return
	}

	err := h.controller.Validate(r.Context(), matchID(r), playerID, move)
	switch {
	case err == nil:
		response.JSON(w, http.StatusOK, response.ValidateResponse{Valid: true})
	case model.IsRejection(err) && !isAccessError(err):
		response.JSON(w, http.StatusOK, response.ValidateResponse{Valid: false, Reason: err.Error()})
	default:
		WriteError(w, err)
	}
}

// Play handles POST /api/v1/matches/{id}/play
func (h *MatchHandler) Play(w http.ResponseWriter, r *http.Request) {
	playerID := middleware.MustGetPlayerID(r.Context())

	move, ok := decodeMove(w, r)
	if !ok {
		return
	}

	m, notifications, err := h.controller.Play(r.Context(), matchID(r), playerID, move)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.notify(notifications)

	h.writeView(r.Context(), w, http.StatusOK, m.ID, playerID)
}

// Pass handles POST /api/v1/matches/{id}/pass
func (h *MatchHandler) Pass(w http.ResponseWriter, r *http.Request) {
	playerID := middleware.MustGetPlayerID(r.Context())

	m, notifications, err := h.controller.Pass(r.Context(), matchID(r), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.notify(notifications)

	h.writeView(r.Context(), w, http.StatusOK, m.ID, playerID)
}

// Acknowledge handles POST /api/v1/matches/{id}/acknowledge
func (h *MatchHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	playerID := middleware.MustGetPlayerID(r.Context())

	notifications, err := h.controller.Acknowledge(r.Context(), matchID(r), playerID)
	if err != nil {
		WriteError(w, err)
		return
	}
	h.notify(notifications)

	response.NoContent(w)
}

func matchID(r *http.Request) model.MatchID {
	return model.MatchID(mux.Vars(r)["id"])
}

func decodeMove(w http.ResponseWriter, r *http.Request) (model.Move, bool) {
	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return nil, false
	}
	move, err := req.ToMove()
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return nil, false
	}
	return move, true
}

// isAccessError reports rejections about who is asking rather than the move
func isAccessError(err error) bool {
	return errors.Is(err, model.ErrNotInMatch) || errors.Is(err, model.ErrMissingPlayerID)
}
