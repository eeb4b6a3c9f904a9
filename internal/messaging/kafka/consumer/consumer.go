package consumer

import (
	"context"
	"encoding/json"

	"go-guardconsole/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// Invalidator drops cached query results. cacheadmin.Service satisfies it.
type Invalidator interface {
	InvalidateGuardDefaults(ctx context.Context, guardID, clientID string) (int, error)
	InvalidateLocal(ctx context.Context, prefix string) (int, error)
}

func ConsumeGuardDefaultsChanged(
	ctx context.Context,
	reader MessageReader,
	invalidator Invalidator,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.guard_defaults")
	log.Info("guard defaults consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("guard defaults consumer stopped")
				return
			}
			log.Error("fetch guard defaults message failed", zap.Error(err))
			continue
		}

		var event events.GuardDefaultsChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil || event.GuardID == "" {
			log.Error("decode guard defaults event failed", zap.Error(err), zap.Int64("offset", msg.Offset))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		removed, err := invalidator.InvalidateGuardDefaults(ctx, event.GuardID, event.ClientID)
		if err != nil {
			log.Error("invalidate guard defaults failed",
				zap.String("guard_id", event.GuardID),
				zap.String("client_id", event.ClientID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit guard defaults message failed", zap.Error(err))
			continue
		}

		log.Info("guard defaults cache invalidated",
			zap.String("guard_id", event.GuardID),
			zap.String("client_id", event.ClientID),
			zap.String("date", event.Date),
			zap.Int("keys", removed),
		)
	}
}

// ConsumeCacheInvalidated replays manual invalidations issued on other
// instances. Events this instance published itself are skipped.
func ConsumeCacheInvalidated(
	ctx context.Context,
	reader MessageReader,
	invalidator Invalidator,
	origin string,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.cache_invalidated")
	log.Info("cache invalidation consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("cache invalidation consumer stopped")
				return
			}
			log.Error("fetch cache invalidation message failed", zap.Error(err))
			continue
		}

		var event events.CacheInvalidatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil || event.Prefix == "" {
			log.Error("decode cache invalidation event failed", zap.Error(err), zap.Int64("offset", msg.Offset))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.Origin != origin {
			removed, err := invalidator.InvalidateLocal(ctx, event.Prefix)
			if err != nil {
				log.Error("replay cache invalidation failed", zap.String("prefix", event.Prefix), zap.Error(err))
				continue
			}
			log.Info("cache invalidation replayed",
				zap.String("prefix", event.Prefix),
				zap.String("origin", event.Origin),
				zap.Int("keys", removed),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit cache invalidation message failed", zap.Error(err))
		}
	}
}
