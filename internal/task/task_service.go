package task

import (
	"context"

	"go-guardconsole/internal/daterange"
	"go-guardconsole/internal/query"
	"go-guardconsole/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, view daterange.ViewKind, date string, f Filter, force bool) (ListResponse, error)
}

type service struct {
	repo    Repository
	queries *query.Client
	logger  *zap.Logger
}

func NewService(repo Repository, queries *query.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{repo: repo, queries: queries, logger: l}
}

func (s *service) List(ctx context.Context, view daterange.ViewKind, date string, f Filter, force bool) (ListResponse, error) {
	w, err := daterange.ResolveString(view, date)
	if err != nil {
		return ListResponse{}, err
	}

	key := query.Key("tasks", f.GuardID, f.Status, w.CacheKey())
	tasks, err := query.Fetch(ctx, s.queries, key, force, func(ctx context.Context) ([]Task, error) {
		return s.repo.FindByWindow(ctx, w, f)
	})
	if err != nil {
		return ListResponse{}, err
	}

	return ListResponse{
		View:      string(view),
		StartDate: w.StartDate(),
		EndDate:   w.EndDate(),
		Tasks:     s.inWindow(ctx, tasks, w),
	}, nil
}

// inWindow drops tasks the backend returned outside the requested period.
func (s *service) inWindow(ctx context.Context, tasks []Task, w daterange.Window) []Task {
	log := contextutil.GetLogger(ctx, s.logger)
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		ok, err := w.ContainsDate(t.ScheduledAt)
		if err != nil {
			log.Warn("task with unreadable schedule skipped",
				zap.String("task_id", t.ID),
				zap.String("scheduled_at", t.ScheduledAt),
			)
			continue
		}
		if ok {
			out = append(out, t)
		}
	}
	return out
}
