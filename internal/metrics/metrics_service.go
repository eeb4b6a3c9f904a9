package metrics

import (
	"context"
	"encoding/json"
	"strings"

	"go-guardconsole/internal/daterange"
	metricserrors "go-guardconsole/internal/metrics/errors"
	"go-guardconsole/internal/query"
	"go-guardconsole/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// KeyPrefix is the cache prefix of every metrics query of a subject.
func KeyPrefix(subject Subject, id string) string {
	return query.Key("metrics", string(subject), id) + ":"
}

func cacheKey(subject Subject, id string, c Category, w daterange.Window) string {
	return query.Key("metrics", string(subject), id, string(c), w.CacheKey())
}

//go:generate mockgen -source=metrics_service.go -destination=mock/metrics_service_mock.go -package=mock
type Service interface {
	GetSummary(ctx context.Context, subject Subject, id string, view daterange.ViewKind, date string, force bool) (SummaryResponse, error)
}

type service struct {
	repo    Repository
	queries *query.Client
	logger  *zap.Logger
}

func NewService(repo Repository, queries *query.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("metrics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("metrics.service")
	}
	return &service{repo: repo, queries: queries, logger: l}
}

// GetSummary fetches the five categories concurrently. A failing category
// only zeroes its own count; the call fails only when every category did.
func (s *service) GetSummary(ctx context.Context, subject Subject, id string, view daterange.ViewKind, date string, force bool) (SummaryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if !subject.Valid() {
		return SummaryResponse{}, metricserrors.ErrInvalidSubject
	}
	if strings.TrimSpace(id) == "" {
		return SummaryResponse{}, metricserrors.ErrInvalidID
	}

	w, err := daterange.ResolveString(view, date)
	if err != nil {
		return SummaryResponse{}, err
	}

	tracker := NewTracker()
	var g errgroup.Group
	for _, c := range Categories {
		g.Go(func() error {
			raw, err := query.Fetch(ctx, s.queries, cacheKey(subject, id, c, w), force, func(ctx context.Context) (json.RawMessage, error) {
				return s.repo.FetchCategory(ctx, subject, id, c, w)
			})
			if err != nil {
				log.Warn("metrics category failed",
					zap.String("subject", string(subject)),
					zap.String("id", id),
					zap.String("category", string(c)),
					zap.Error(err),
				)
				tracker.Set(c, Failed(err))
				return nil
			}
			tracker.Set(c, Loaded(raw))
			return nil
		})
	}
	_ = g.Wait()

	results := tracker.Results()
	statuses := make(map[Category]CategoryStatus, len(results))
	var firstErr error
	failed := 0
	for _, c := range Categories {
		r := results[c]
		st := CategoryStatus{Status: r.Status}
		if r.Err != nil {
			st.Error = r.Err.Error()
			failed++
			if firstErr == nil {
				firstErr = r.Err
			}
		}
		statuses[c] = st
	}
	if failed == len(Categories) {
		return SummaryResponse{}, firstErr
	}

	return SummaryResponse{
		Subject:    string(subject),
		ID:         id,
		View:       string(view),
		StartDate:  w.StartDate(),
		EndDate:    w.EndDate(),
		Metrics:    tracker.Metrics(),
		Categories: statuses,
	}, nil
}
