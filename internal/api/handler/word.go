package handler

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordduel/internal/api/response"
	"github.com/mcoot/wordduel/internal/services/scoring"
)

// WordHandler handles lexicon lookups
type WordHandler struct {
	scoring *scoring.Service
}

// NewWordHandler creates a new word handler
func NewWordHandler(scoring *scoring.Service) *WordHandler {
	return &WordHandler{scoring: scoring}
}

// Score handles GET /api/v1/words/{word}/score
func (h *WordHandler) Score(w http.ResponseWriter, r *http.Request) {
	word := strings.ToUpper(mux.Vars(r)["word"])

	score, ok := h.scoring.ScoreWord(word)
	if !ok {
		WriteError(w, NewWordNotFoundError(word))
		return
	}

	response.JSON(w, http.StatusOK, response.WordScore{Word: word, Score: score})
}
