package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/wordduel/internal/api/handler"
	"github.com/mcoot/wordduel/internal/api/middleware"
	"github.com/mcoot/wordduel/internal/services/match"
	"github.com/mcoot/wordduel/internal/services/scoring"
	"github.com/mcoot/wordduel/internal/sse"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	MatchController *match.Controller
	ScoringService  *scoring.Service
	HubManager      *sse.HubManager  // Optional; /events is not served without it
	Broadcaster     *sse.Broadcaster // Optional; built from HubManager if nil
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	var notifier handler.Notifier
	switch {
	case cfg.Broadcaster != nil:
		notifier = cfg.Broadcaster
	case cfg.HubManager != nil:
		notifier = sse.NewBroadcaster(cfg.HubManager, cfg.Logger)
	}

	// Create handlers
	matchHandler := handler.NewMatchHandler(cfg.MatchController, notifier)
	wordHandler := handler.NewWordHandler(cfg.ScoringService)

	// Create middleware
	identityMiddleware := middleware.Identity()
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Health check and word lookups need no identity
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/words/{word}/score", wordHandler.Score).Methods(http.MethodGet)

	// Match routes
	matches := api.PathPrefix("/matches").Subrouter()
	matches.Use(identityMiddleware)
	matches.HandleFunc("", matchHandler.Create).Methods(http.MethodPost)
	matches.HandleFunc("", matchHandler.List).Methods(http.MethodGet)
	matches.HandleFunc("/{id}", matchHandler.Get).Methods(http.MethodGet)
	matches.HandleFunc("/{id}/scores", matchHandler.Scores).Methods(http.MethodGet)
	matches.HandleFunc("/{id}/validate", matchHandler.Validate).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/play", matchHandler.Play).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/pass", matchHandler.Pass).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/acknowledge", matchHandler.Acknowledge).Methods(http.MethodPost)

	// Event stream
	if cfg.HubManager != nil {
		eventsHandler := handler.NewEventsHandler(cfg.HubManager)
		events := api.PathPrefix("/events").Subrouter()
		events.Use(identityMiddleware)
		events.HandleFunc("", eventsHandler.Stream).Methods(http.MethodGet)
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
