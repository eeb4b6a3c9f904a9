// Package query is the calling layer between console services and the
// upstream clients: cached reads with stale/gc times, de-duplication of
// identical in-flight fetches, and the retry policy.
package query

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go-guardconsole/internal/httpclient"
	"go-guardconsole/internal/shared/contextutil"

	"github.com/cenkalti/backoff/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type Options struct {
	// StaleTime is how long a cached result is served without refetching.
	StaleTime time.Duration
	// GCTime is how long a result is kept in the cache at all.
	GCTime time.Duration
	// MaxRetries counts retries after the first attempt.
	MaxRetries int
	// RetryDelay is the first backoff interval; it doubles per retry.
	RetryDelay    time.Duration
	MaxRetryDelay time.Duration
	// FetchTimeout bounds one shared fetch, retries included. The fetch is
	// detached from its callers so one leaving does not fail the others.
	FetchTimeout time.Duration
}

func DefaultOptions() Options {
	return Options{
		StaleTime:     5 * time.Minute,
		GCTime:        10 * time.Minute,
		MaxRetries:    2,
		RetryDelay:    time.Second,
		MaxRetryDelay: 30 * time.Second,
		FetchTimeout:  time.Minute,
	}
}

type Client struct {
	cache  Cache
	opts   Options
	sf     singleflight.Group
	now    func() time.Time
	logger *zap.Logger
}

func NewClient(cache Cache, opts Options, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.L()
	}
	if opts.MaxRetryDelay <= 0 {
		opts.MaxRetryDelay = 30 * time.Second
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = time.Minute
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Second
	}
	return &Client{
		cache:  cache,
		opts:   opts,
		now:    time.Now,
		logger: logger.Named("query.client"),
	}
}

func (c *Client) Cache() Cache {
	return c.cache
}

// Key joins query key parts the way every cache key in the console is built.
func Key(parts ...string) string {
	return strings.Join(parts, ":")
}

// ScopedKey binds key to the caller's session. A result fetched with one
// session's bearer token is never served to another session. The scope is
// the last segment, so prefix invalidation still reaches every session.
func ScopedKey(ctx context.Context, key string) string {
	sid := contextutil.GetSessionID(ctx)
	if sid == "" {
		sid = "anonymous"
	}
	return Key(key, "session", sid)
}

// detach keeps the values of ctx (session, logger, redirect hook) but not its
// cancellation. The redirect hook only fires while the originating request
// is still waiting.
func detach(ctx context.Context) context.Context {
	detached := context.WithoutCancel(ctx)
	return contextutil.WithRedirect(detached, func(location string) {
		if ctx.Err() == nil {
			contextutil.Redirect(ctx, location)
		}
	})
}

// IsRetryable reports whether a failed fetch may be retried. Auth failures and
// missing resources are not fixed by asking again.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if status, ok := httpclient.StatusCode(err); ok {
		switch status {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
			return false
		}
	}
	return true
}

// Fetch returns the value stored under the session-scoped key when it is
// younger than the stale time, otherwise runs fn with retries and caches its
// result. force skips the cache read but still refreshes the cache. Callers
// asking for the same key share one fetch; each caller stops waiting when
// its own ctx ends.
func Fetch[T any](ctx context.Context, c *Client, key string, force bool, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	key = ScopedKey(ctx, key)
	log := c.logger.With(zap.String("key", key))

	if !force {
		entry, ok, err := c.cache.Get(ctx, key)
		switch {
		case err != nil:
			log.Warn("query cache read failed", zap.Error(err))
		case ok && c.now().Sub(entry.FetchedAt) < c.opts.StaleTime:
			var v T
			if err := json.Unmarshal(entry.Data, &v); err == nil {
				log.Debug("query cache hit")
				return v, nil
			}
		}
	}

	ch := c.sf.DoChan(key, func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(detach(ctx), c.opts.FetchTimeout)
		defer cancel()

		result, err := retry(fetchCtx, c, key, fn)
		if err != nil {
			return nil, err
		}

		if data, err := json.Marshal(result); err == nil {
			entry := Entry{Data: data, FetchedAt: c.now().UTC()}
			if err := c.cache.Set(fetchCtx, key, entry, c.opts.GCTime); err != nil {
				log.Warn("query cache write failed", zap.Error(err))
			}
		}
		return result, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		if res.Shared {
			log.Debug("query fetch shared with in-flight request")
		}
		return res.Val.(T), nil
	}
}

// retry runs fn up to 1+MaxRetries times with exponential backoff, stopping
// early on errors IsRetryable rejects.
func retry[T any](ctx context.Context, c *Client, key string, fn func(context.Context) (T, error)) (T, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.opts.RetryDelay
	b.MaxInterval = c.opts.MaxRetryDelay
	b.Multiplier = 2

	attempt := 0
	operation := func() (T, error) {
		attempt++
		v, err := fn(ctx)
		if err != nil && !IsRetryable(err) {
			return v, backoff.Permanent(err)
		}
		return v, err
	}

	v, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(c.opts.MaxRetries+1)),
		backoff.WithNotify(func(err error, next time.Duration) {
			c.logger.Warn("query fetch failed, retrying",
				zap.String("key", key),
				zap.Int("attempt", attempt),
				zap.Duration("next", next),
				zap.Error(err),
			)
		}),
	)

	// The final attempt may still carry the permanent marker.
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		err = permanent.Err
	}
	return v, err
}
