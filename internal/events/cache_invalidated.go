package events

import "time"

// CacheInvalidatedTopic fans a manual invalidation out to every console
// instance, so in-process caches drop the same keys.
const CacheInvalidatedTopic = "console.cache.invalidated.v1"

const CacheInvalidatedEventType = "cache_invalidated"

type CacheInvalidatedEvent struct {
	EventType   string    `json:"event_type"`
	Prefix      string    `json:"prefix"`
	RequestedBy string    `json:"requested_by,omitempty"`
	Origin      string    `json:"origin"`
	OccurredAt  time.Time `json:"occurred_at"`
}
