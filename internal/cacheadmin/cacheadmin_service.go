package cacheadmin

import (
	"context"
	"strings"
	"time"

	cacheadminerrors "go-guardconsole/internal/cacheadmin/errors"
	"go-guardconsole/internal/defaults"
	"go-guardconsole/internal/events"
	"go-guardconsole/internal/metrics"
	"go-guardconsole/internal/query"
	"go-guardconsole/internal/shared/contextutil"

	"go.uber.org/zap"
)

// roots are the key families an operator may drop by hand.
var roots = []string{"defaults:", "metrics:", "tasks:", "incidents:"}

// Publisher broadcasts an invalidation to the other console instances.
type Publisher interface {
	PublishCacheInvalidated(ctx context.Context, event events.CacheInvalidatedEvent) error
}

//go:generate mockgen -source=cacheadmin_service.go -destination=mock/cacheadmin_service_mock.go -package=mock
type Service interface {
	Invalidate(ctx context.Context, prefix string) (InvalidateResponse, error)
	InvalidateLocal(ctx context.Context, prefix string) (int, error)
	InvalidateGuardDefaults(ctx context.Context, guardID, clientID string) (int, error)
}

type service struct {
	cache     query.Cache
	publisher Publisher
	origin    string
	now       func() time.Time
	logger    *zap.Logger
}

// NewService builds the cache admin service. publisher may be nil when no
// broker is configured; invalidations then stay local.
func NewService(cache query.Cache, publisher Publisher, origin string, logger ...*zap.Logger) Service {
	l := zap.L().Named("cacheadmin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cacheadmin.service")
	}
	return &service{
		cache:     cache,
		publisher: publisher,
		origin:    origin,
		now:       time.Now,
		logger:    l,
	}
}

func validPrefix(prefix string) bool {
	for _, root := range roots {
		if strings.HasPrefix(prefix, root) {
			return true
		}
	}
	return false
}

func (s *service) Invalidate(ctx context.Context, prefix string) (InvalidateResponse, error) {
	prefix = strings.TrimSpace(prefix)
	if !validPrefix(prefix) {
		return InvalidateResponse{}, cacheadminerrors.ErrInvalidPrefix
	}

	removed, err := s.InvalidateLocal(ctx, prefix)
	if err != nil {
		return InvalidateResponse{}, err
	}

	resp := InvalidateResponse{Prefix: prefix, Removed: removed}
	if s.publisher == nil {
		return resp, nil
	}

	log := contextutil.GetLogger(ctx, s.logger)
	event := events.CacheInvalidatedEvent{
		EventType:   events.CacheInvalidatedEventType,
		Prefix:      prefix,
		RequestedBy: contextutil.GetUserID(ctx),
		Origin:      s.origin,
		OccurredAt:  s.now().UTC(),
	}
	// The local drop already happened; a broker outage only delays the others.
	if err := s.publisher.PublishCacheInvalidated(ctx, event); err != nil {
		log.Warn("broadcast cache invalidation failed", zap.String("prefix", prefix), zap.Error(err))
		return resp, nil
	}
	resp.Broadcast = true
	return resp, nil
}

func (s *service) InvalidateLocal(ctx context.Context, prefix string) (int, error) {
	removed, err := s.cache.InvalidatePrefix(ctx, prefix)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("invalidate cache prefix failed",
			zap.String("prefix", prefix),
			zap.Error(err),
		)
		return 0, err
	}
	return removed, nil
}

// InvalidateGuardDefaults drops the guard's defaults and metrics, plus the
// metrics of the client the guard is posted to.
func (s *service) InvalidateGuardDefaults(ctx context.Context, guardID, clientID string) (int, error) {
	prefixes := []string{
		defaults.GuardKeyPrefix(guardID),
		metrics.KeyPrefix(metrics.SubjectGuard, guardID),
	}
	if clientID != "" {
		prefixes = append(prefixes, metrics.KeyPrefix(metrics.SubjectClient, clientID))
	}

	total := 0
	for _, p := range prefixes {
		n, err := s.InvalidateLocal(ctx, p)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
