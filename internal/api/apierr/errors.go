package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/wordduel/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeInvalidMove     = "INVALID_MOVE"
	CodeInvalidWord     = "INVALID_WORD"
	CodeCellOccupied    = "CELL_OCCUPIED"
	CodePieceNotInHand  = "PIECE_NOT_IN_HAND"
	CodeLetterMismatch  = "LETTER_MISMATCH"
	CodeNotYourTurn     = "NOT_YOUR_TURN"
	CodeGameFinished    = "GAME_FINISHED"
	CodeGameNotFinished = "GAME_NOT_FINISHED"
	CodeNotInMatch      = "NOT_IN_MATCH"
	CodeSelfMatch       = "SELF_MATCH"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeMatchNotFound   = "MATCH_NOT_FOUND"
	CodeWordNotFound    = "WORD_NOT_FOUND"
	CodeInternalError   = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// Status returns the HTTP status WriteError would use for err
func Status(err error) int {
	return toHTTPError(err).status
}

// toHTTPError converts an error to an httpError. Rejections keep their
// own message since it is meant for the player.
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	rejection := func(status int, code string) *httpError {
		return &httpError{status, APIError{code, err.Error()}}
	}

	switch {
	case errors.Is(err, model.ErrMatchNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeMatchNotFound, "That game doesn't exist"}}
	case errors.Is(err, model.ErrMissingPlayerID):
		return rejection(http.StatusUnauthorized, CodeUnauthorized)
	case errors.Is(err, model.ErrNotInMatch):
		return rejection(http.StatusForbidden, CodeNotInMatch)
	case errors.Is(err, model.ErrNotPlayerTurn):
		return rejection(http.StatusConflict, CodeNotYourTurn)
	case errors.Is(err, model.ErrMatchEnded):
		return rejection(http.StatusConflict, CodeGameFinished)
	case errors.Is(err, model.ErrMatchNotEnded):
		return rejection(http.StatusConflict, CodeGameNotFinished)
	case errors.Is(err, model.ErrSelfMatch):
		return rejection(http.StatusBadRequest, CodeSelfMatch)
	case errors.Is(err, model.ErrPieceNotInHand):
		return rejection(http.StatusBadRequest, CodePieceNotInHand)
	case errors.Is(err, model.ErrLetterMismatch):
		return rejection(http.StatusBadRequest, CodeLetterMismatch)
	case errors.Is(err, model.ErrInvalidWord):
		return rejection(http.StatusUnprocessableEntity, CodeInvalidWord)
	case errors.Is(err, model.ErrCellOccupied):
		return rejection(http.StatusUnprocessableEntity, CodeCellOccupied)
	case model.IsRejection(err):
		return rejection(http.StatusUnprocessableEntity, CodeInvalidMove)

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "A player identity is required"}}
}

// NewWordNotFoundError reports a word that is not in the lexicon
func NewWordNotFoundError(word string) error {
	return &httpError{http.StatusNotFound, APIError{CodeWordNotFound, word + " is not a word"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
