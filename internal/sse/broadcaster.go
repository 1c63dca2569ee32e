package sse

import (
	"encoding/json"
	"log/slog"

	"github.com/mcoot/wordduel/internal/model"
)

// Broadcaster delivers refresh notifications to connected players
type Broadcaster struct {
	hubManager *HubManager
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

type notificationPayload struct {
	MatchID model.MatchID `json:"match_id"`
}

// Notify sends each notification as an event named after its kind to the
// player it is addressed to. Players without an open stream are skipped.
func (b *Broadcaster) Notify(notifications []model.Notification) {
	for _, n := range notifications {
		hub := b.hubManager.GetHub(n.PlayerID)
		if hub == nil {
			continue
		}

		data, err := json.Marshal(notificationPayload{MatchID: n.MatchID})
		if err != nil {
			b.logger.Error("sse failed to encode notification",
				slog.String("player_id", string(n.PlayerID)),
				slog.Any("error", err))
			continue
		}
		hub.BroadcastEvent(string(n.Kind), string(data))
	}
}
