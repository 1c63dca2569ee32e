package model

// NotificationKind names which view of a player has gone stale
type NotificationKind string

const (
	NotifyMatch  NotificationKind = "match"  // Board, hand or turn changed
	NotifyRoster NotificationKind = "roster" // List of ongoing matches changed
)

// Notification tells the caller that a player's view needs refreshing
type Notification struct {
	PlayerID PlayerID
	MatchID  MatchID
	Kind     NotificationKind
}

// notifyBoth builds one notification per player of the match for each kind
func notifyBoth(m *Match, kinds ...NotificationKind) []Notification {
	result := make([]Notification, 0, len(kinds)*len(m.Players))
	for _, kind := range kinds {
		for _, p := range m.Players {
			result = append(result, Notification{PlayerID: p.ID, MatchID: m.ID, Kind: kind})
		}
	}
	return result
}

// MatchNotifications returns the notifications due after a play or pass
func MatchNotifications(m *Match) []Notification {
	return notifyBoth(m, NotifyMatch, NotifyRoster)
}

// RosterNotifications returns the notifications due after a match is
// created or acknowledged
func RosterNotifications(m *Match) []Notification {
	return notifyBoth(m, NotifyRoster)
}
