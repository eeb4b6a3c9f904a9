package metrics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"go-guardconsole/internal/daterange"
	"go-guardconsole/internal/httpclient"
)

// Subject is whose metrics are shown: a client site or a single guard.
type Subject string

const (
	SubjectClient Subject = "clients"
	SubjectGuard  Subject = "guards"
)

func (s Subject) Valid() bool {
	return s == SubjectClient || s == SubjectGuard
}

var categoryPaths = map[Category]string{
	CategoryAbsent:    "attendance/summary",
	CategoryLate:      "late-incidents",
	CategoryUniform:   "uniform-defaults",
	CategoryAlertness: "alertness-defaults",
	CategoryPatrol:    "patrol-sessions",
}

// Repository reads one category count envelope from the core API.
//
//go:generate mockgen -source=metrics_repo.go -destination=mock/metrics_repo_mock.go -package=mock
type Repository interface {
	FetchCategory(ctx context.Context, subject Subject, id string, c Category, w daterange.Window) (json.RawMessage, error)
}

type repository struct {
	core *httpclient.Client
}

func NewRepository(core *httpclient.Client) Repository {
	return &repository{core: core}
}

func (r *repository) FetchCategory(ctx context.Context, subject Subject, id string, c Category, w daterange.Window) (json.RawMessage, error) {
	p, ok := categoryPaths[c]
	if !ok {
		return nil, fmt.Errorf("metrics: unknown category %q", c)
	}

	var raw json.RawMessage
	path := fmt.Sprintf("/%s/%s/%s", subject, url.PathEscape(id), p)
	if err := r.core.Get(ctx, path, w.QueryParams(daterange.StyleFromTo), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
