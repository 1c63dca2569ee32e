package handler

import (
	"net/http"

	"github.com/mcoot/wordduel/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest  = apierr.CodeInvalidRequest
	CodeInvalidMove     = apierr.CodeInvalidMove
	CodeInvalidWord     = apierr.CodeInvalidWord
	CodeCellOccupied    = apierr.CodeCellOccupied
	CodePieceNotInHand  = apierr.CodePieceNotInHand
	CodeLetterMismatch  = apierr.CodeLetterMismatch
	CodeNotYourTurn     = apierr.CodeNotYourTurn
	CodeGameFinished    = apierr.CodeGameFinished
	CodeGameNotFinished = apierr.CodeGameNotFinished
	CodeNotInMatch      = apierr.CodeNotInMatch
	CodeSelfMatch       = apierr.CodeSelfMatch
	CodeUnauthorized    = apierr.CodeUnauthorized
	CodeMatchNotFound   = apierr.CodeMatchNotFound
	CodeWordNotFound    = apierr.CodeWordNotFound
	CodeInternalError   = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewWordNotFoundError creates a word not found error
func NewWordNotFoundError(word string) error {
	return apierr.NewWordNotFoundError(word)
}
