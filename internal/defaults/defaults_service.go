package defaults

import (
	"context"
	"strings"

	"go-guardconsole/internal/daterange"
	defaultserrors "go-guardconsole/internal/defaults/errors"
	"go-guardconsole/internal/query"
	"go-guardconsole/internal/shared/contextutil"

	"go.uber.org/zap"
)

const cacheKeyPrefix = "defaults:guard:"

// MaxRangeDays caps custom ranges at roughly one quarter.
const MaxRangeDays = 93

// GuardKeyPrefix is the cache prefix of every defaults query of a guard.
func GuardKeyPrefix(guardID string) string {
	return cacheKeyPrefix + guardID + ":"
}

func cacheKey(guardID string, w daterange.Window) string {
	return query.Key("defaults", "guard", guardID, w.CacheKey())
}

//go:generate mockgen -source=defaults_service.go -destination=mock/defaults_service_mock.go -package=mock
type Service interface {
	GetCalendar(ctx context.Context, guardID string, view daterange.ViewKind, date string, force bool) (CalendarResponse, error)
	GetDay(ctx context.Context, guardID string, view daterange.ViewKind, date string, force bool) (DayResponse, error)
	GetRange(ctx context.Context, guardID, from, to string, force bool) (CalendarResponse, error)
}

type service struct {
	repo    Repository
	queries *query.Client
	logger  *zap.Logger
}

func NewService(repo Repository, queries *query.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("defaults.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("defaults.service")
	}
	return &service{repo: repo, queries: queries, logger: l}
}

func (s *service) GetCalendar(ctx context.Context, guardID string, view daterange.ViewKind, date string, force bool) (CalendarResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if strings.TrimSpace(guardID) == "" {
		return CalendarResponse{}, defaultserrors.ErrInvalidGuardID
	}

	w, err := daterange.ResolveString(view, date)
	if err != nil {
		return CalendarResponse{}, err
	}

	records, err := s.load(ctx, guardID, w, force)
	if err != nil {
		log.Error("load guard defaults failed",
			zap.String("guard_id", guardID),
			zap.String("window", w.CacheKey()),
			zap.Error(err),
		)
		return CalendarResponse{}, err
	}

	buckets, err := ForWindow(records, w)
	if err != nil {
		log.Error("guard defaults carry malformed dates",
			zap.String("guard_id", guardID),
			zap.Error(err),
		)
		return CalendarResponse{}, wrapMalformed(err)
	}

	return mapToCalendarResponse(guardID, string(view), w, buckets), nil
}

// GetRange is the calendar over an explicit [from, to] range picked in the
// console, bounded by MaxRangeDays.
func (s *service) GetRange(ctx context.Context, guardID, from, to string, force bool) (CalendarResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if strings.TrimSpace(guardID) == "" {
		return CalendarResponse{}, defaultserrors.ErrInvalidGuardID
	}

	start, err := daterange.ParseDate(from)
	if err != nil {
		return CalendarResponse{}, err
	}
	end, err := daterange.ParseDate(to)
	if err != nil {
		return CalendarResponse{}, err
	}
	w := daterange.Window{Start: start, End: end}
	if w.End.Before(w.Start) {
		return CalendarResponse{}, daterange.InvalidArgument("range end %s is before start %s", w.EndDate(), w.StartDate())
	}
	if w.Days() > MaxRangeDays {
		return CalendarResponse{}, daterange.InvalidArgument("range spans %d days, at most %d allowed", w.Days(), MaxRangeDays)
	}

	records, err := s.load(ctx, guardID, w, force)
	if err != nil {
		log.Error("load guard defaults failed",
			zap.String("guard_id", guardID),
			zap.String("window", w.CacheKey()),
			zap.Error(err),
		)
		return CalendarResponse{}, err
	}

	buckets, err := ForRange(records, start, end)
	if err != nil {
		return CalendarResponse{}, wrapMalformed(err)
	}
	return mapToCalendarResponse(guardID, ViewRange, w, buckets), nil
}

// GetDay returns the defaults of one day. The records are read through the
// window of view around date, so a calendar already on screen serves the day
// from cache. Days without defaults yield ErrNoDefaultsForDay.
func (s *service) GetDay(ctx context.Context, guardID string, view daterange.ViewKind, date string, force bool) (DayResponse, error) {
	if strings.TrimSpace(guardID) == "" {
		return DayResponse{}, defaultserrors.ErrInvalidGuardID
	}
	if view == "" {
		view = daterange.ViewDay
	}

	w, err := daterange.ResolveString(view, date)
	if err != nil {
		return DayResponse{}, err
	}

	records, err := s.load(ctx, guardID, w, force)
	if err != nil {
		return DayResponse{}, err
	}

	// date already parsed in ResolveString, so a failure here is a bad record.
	matched, err := ForDate(records, date)
	if err != nil {
		return DayResponse{}, wrapMalformed(err)
	}

	normalized, _ := daterange.NormalizeDate(date)
	day := DayBucket{Date: normalized, Defaults: matched}

	var selected DayResponse
	if !SelectDay(day, func(b DayBucket) { selected = mapToDayResponse(b) }) {
		return DayResponse{}, defaultserrors.ErrNoDefaultsForDay
	}
	return selected, nil
}

func (s *service) load(ctx context.Context, guardID string, w daterange.Window, force bool) ([]Record, error) {
	return query.Fetch(ctx, s.queries, cacheKey(guardID, w), force, func(ctx context.Context) ([]Record, error) {
		return s.repo.FindByGuardAndWindow(ctx, guardID, w)
	})
}

func wrapMalformed(err error) error {
	return &malformedError{err: err}
}

// malformedError reports a bad upstream record as ErrMalformedDefaults while
// keeping the cause for logs and errors.Is.
type malformedError struct {
	err error
}

func (e *malformedError) Error() string {
	return defaultserrors.ErrMalformedDefaults.Message + ": " + e.err.Error()
}

func (e *malformedError) Unwrap() []error {
	return []error{defaultserrors.ErrMalformedDefaults, e.err}
}

func mapToCalendarResponse(guardID, view string, w daterange.Window, buckets []DayBucket) CalendarResponse {
	days := make([]DayResponse, len(buckets))
	for i, b := range buckets {
		days[i] = mapToDayResponse(b)
	}
	return CalendarResponse{
		GuardID:   guardID,
		View:      view,
		StartDate: w.StartDate(),
		EndDate:   w.EndDate(),
		Days:      days,
		Counts:    CountByCategory(buckets),
	}
}

func mapToDayResponse(b DayBucket) DayResponse {
	return DayResponse{
		Date:       b.Date,
		HasDefault: HasAnyDefault(b),
		Defaults:   b.Defaults,
	}
}
