package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mcoot/wordduel/internal/api/apierr"
	"github.com/mcoot/wordduel/internal/model"
)

// PlayerIDHeader carries the identity established by the upstream auth layer
const PlayerIDHeader = "X-Player-ID"

type contextKey string

const playerContextKey contextKey = "player"

// Identity creates middleware that requires a player identity on every request
func Identity() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			playerID := strings.TrimSpace(r.Header.Get(PlayerIDHeader))
			if playerID == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ctx := WithPlayerID(r.Context(), model.PlayerID(playerID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithPlayerID returns a copy of ctx carrying the player identity
func WithPlayerID(ctx context.Context, playerID model.PlayerID) context.Context {
	return context.WithValue(ctx, playerContextKey, playerID)
}

// GetPlayerID returns the player identity from the request context
func GetPlayerID(ctx context.Context) (model.PlayerID, bool) {
	playerID, ok := ctx.Value(playerContextKey).(model.PlayerID)
	return playerID, ok && playerID != ""
}

// MustGetPlayerID returns the player identity or panics
func MustGetPlayerID(ctx context.Context) model.PlayerID {
	playerID, ok := GetPlayerID(ctx)
	if !ok {
		panic("no player in context - identity middleware not applied?")
	}
	return playerID
}
