// Package daterange resolves the DAY/WEEK/MONTH/CUSTOM views of the console
// into closed calendar-day windows. Every screen that scopes a query or a
// calendar by period goes through Resolve so that week starts and month ends
// never drift between features.
package daterange

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-guardconsole/internal/shared/apperror"
)

// DateLayout is the ISO calendar date format exchanged with the backends.
const DateLayout = "2006-01-02"

// ErrInvalidArgument marks caller contract violations (unknown view,
// unparseable or zero reference date).
var ErrInvalidArgument = errors.New("invalid argument")

type ViewKind string

const (
	ViewDay    ViewKind = "DAY"
	ViewWeek   ViewKind = "WEEK"
	ViewMonth  ViewKind = "MONTH"
	ViewCustom ViewKind = "CUSTOM"
)

func (k ViewKind) Valid() bool {
	switch k {
	case ViewDay, ViewWeek, ViewMonth, ViewCustom:
		return true
	default:
		return false
	}
}

// ParseViewKind accepts any letter case and surrounding spaces.
func ParseViewKind(s string) (ViewKind, error) {
	k := ViewKind(strings.ToUpper(strings.TrimSpace(s)))
	if !k.Valid() {
		return "", InvalidArgument("unknown view %q", s)
	}
	return k, nil
}

// Window is a closed interval [Start, End] of calendar days. Both bounds sit
// at midnight in the location of the reference date.
type Window struct {
	Start time.Time
	End   time.Time
}

// Resolve maps a view and a reference date to its window.
//
// CUSTOM deliberately yields the same single-day window as DAY: the console's
// custom picker only ever selects one date.
func Resolve(kind ViewKind, ref time.Time) (Window, error) {
	if ref.IsZero() {
		return Window{}, InvalidArgument("reference date is required")
	}
	day := Midnight(ref)

	switch kind {
	case ViewDay, ViewCustom:
		return Window{Start: day, End: day}, nil
	case ViewWeek:
		start := StartOfWeek(day)
		return Window{Start: start, End: start.AddDate(0, 0, 6)}, nil
	case ViewMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return Window{Start: start, End: start.AddDate(0, 1, -1)}, nil
	default:
		return Window{}, InvalidArgument("unknown view %q", string(kind))
	}
}

// ResolveString parses an ISO reference date and resolves it.
func ResolveString(kind ViewKind, ref string) (Window, error) {
	day, err := ParseDate(ref)
	if err != nil {
		return Window{}, err
	}
	return Resolve(kind, day)
}

// Midnight drops the time of day, keeping the location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := Midnight(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// ParseDate parses a yyyy-MM-dd string as a local calendar date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, InvalidArgument("date is required")
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, InvalidArgument("date %q is not in yyyy-MM-dd format", s)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeDate reformats an ISO date so that string comparison is exact.
func NormalizeDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return FormatDate(t), nil
}

// Contains reports whether the calendar day of t lies inside the window.
// Time of day is ignored.
func (w Window) Contains(t time.Time) bool {
	day := FormatDate(t)
	return day >= FormatDate(w.Start) && day <= FormatDate(w.End)
}

// ParseDay reads an ISO date or the date part of an ISO timestamp. The
// time of day is dropped as written, without zone conversion, so a record
// lands on the day the backend stamped it with.
func ParseDay(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(DateLayout) && s[len(DateLayout)] == 'T' {
		s = s[:len(DateLayout)]
	}
	return ParseDate(s)
}

// ContainsDate is Contains for an ISO date or timestamp string.
func (w Window) ContainsDate(s string) (bool, error) {
	t, err := ParseDay(s)
	if err != nil {
		return false, err
	}
	return w.Contains(t), nil
}

// Days is the number of calendar days covered, both ends included.
func (w Window) Days() int {
	n := 0
	w.EachDay(func(time.Time) { n++ })
	return n
}

// EachDay calls fn for every day from Start to End in order. AddDate keeps
// the walk on midnight across DST changes.
func (w Window) EachDay(fn func(day time.Time)) {
	end := Midnight(w.End)
	for d := Midnight(w.Start); !d.After(end); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

func (w Window) StartDate() string { return FormatDate(w.Start) }
func (w Window) EndDate() string   { return FormatDate(w.End) }

// ParamStyle selects the query parameter names an endpoint expects.
type ParamStyle int

const (
	StyleFromTo ParamStyle = iota
	StyleStartEnd
)

// QueryParams renders the window as backend query parameters.
func (w Window) QueryParams(style ParamStyle) url.Values {
	q := url.Values{}
	switch style {
	case StyleStartEnd:
		q.Set("startDate", w.StartDate())
		q.Set("endDate", w.EndDate())
	default:
		q.Set("fromDate", w.StartDate())
		q.Set("toDate", w.EndDate())
	}
	return q
}

// CacheKey is the window's contribution to a query key.
func (w Window) CacheKey() string {
	return w.StartDate() + ":" + w.EndDate()
}

// InvalidArgument builds an ErrInvalidArgument error carrying a 400 AppError.
func InvalidArgument(format string, args ...any) error {
	return apperror.Wrap(
		fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...)),
		apperror.CodeInvalidInput,
		"The provided date range is invalid",
		http.StatusBadRequest,
	)
}
