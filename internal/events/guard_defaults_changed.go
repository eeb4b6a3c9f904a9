package events

import "time"

// GuardDefaultsChangedTopic carries core API notifications about defaults
// recorded, edited or deleted for a guard.
const GuardDefaultsChangedTopic = "guard.defaults.changed.v1"

type GuardDefaultsChangedEvent struct {
	EventType  string    `json:"event_type"`
	GuardID    string    `json:"guard_id"`
	ClientID   string    `json:"client_id"`
	Date       string    `json:"date"`
	OccurredAt time.Time `json:"occurred_at"`
}
