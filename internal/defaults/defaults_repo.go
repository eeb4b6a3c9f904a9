package defaults

import (
	"context"
	"fmt"
	"net/url"

	"go-guardconsole/internal/daterange"
	"go-guardconsole/internal/httpclient"
)

// Repository reads guard defaults from the core API.
//
//go:generate mockgen -source=defaults_repo.go -destination=mock/defaults_repo_mock.go -package=mock
type Repository interface {
	FindByGuardAndWindow(ctx context.Context, guardID string, w daterange.Window) ([]Record, error)
}

type repository struct {
	core *httpclient.Client
}

func NewRepository(core *httpclient.Client) Repository {
	return &repository{core: core}
}

func (r *repository) FindByGuardAndWindow(ctx context.Context, guardID string, w daterange.Window) ([]Record, error) {
	var env httpclient.Envelope[[]Record]
	path := fmt.Sprintf("/guards/%s/defaults", url.PathEscape(guardID))
	if err := r.core.Get(ctx, path, w.QueryParams(daterange.StyleStartEnd), &env); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return []Record{}, nil
	}
	return env.Data, nil
}
