package task

import (
	"context"

	"go-guardconsole/internal/daterange"
	"go-guardconsole/internal/httpclient"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	FindByWindow(ctx context.Context, w daterange.Window, f Filter) ([]Task, error)
}

type repository struct {
	core *httpclient.Client
}

func NewRepository(core *httpclient.Client) Repository {
	return &repository{core: core}
}

// FindByWindow lists tasks; the tasks endpoint takes startDate/endDate.
func (r *repository) FindByWindow(ctx context.Context, w daterange.Window, f Filter) ([]Task, error) {
	params := w.QueryParams(daterange.StyleStartEnd)
	if f.Status != "" {
		params.Set("status", f.Status)
	}
	if f.GuardID != "" {
		params.Set("guardId", f.GuardID)
	}

	var env httpclient.Envelope[[]Task]
	if err := r.core.Get(ctx, "/tasks", params, &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []Task{}, nil
	}
	return env.Data, nil
}
