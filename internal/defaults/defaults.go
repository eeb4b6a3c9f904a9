package defaults

import (
	"encoding/json"
	"fmt"
	"time"

	"go-guardconsole/internal/daterange"
)

type Category string

const (
	CategoryLate      Category = "LATE"
	CategoryUniform   Category = "UNIFORM"
	CategoryAlertness Category = "ALERTNESS"
	CategoryGeofence  Category = "GEOFENCE"
	CategoryPatrol    Category = "PATROL"
)

var Categories = []Category{
	CategoryLate,
	CategoryUniform,
	CategoryAlertness,
	CategoryGeofence,
	CategoryPatrol,
}

// Record is one default (violation) of a guard on a day, as produced by the
// core API. It is never mutated here, only filtered and bucketed.
type Record struct {
	GuardID  string          `json:"guardId"`
	Date     string          `json:"date"`
	Category Category        `json:"category"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// DayBucket holds the defaults of a single calendar day. An empty Defaults
// slice means the day was loaded and had no violation.
type DayBucket struct {
	Date     string   `json:"date"`
	Defaults []Record `json:"defaults"`
}

// HasAnyDefault drives calendar highlighting and whether a day is clickable.
func HasAnyDefault(b DayBucket) bool {
	return len(b.Defaults) > 0
}

// SelectDay calls onSelect only for days that have something to show.
// Selecting an empty day is ignored and reports false.
func SelectDay(b DayBucket, onSelect func(DayBucket)) bool {
	if !HasAnyDefault(b) {
		return false
	}
	if onSelect != nil {
		onSelect(b)
	}
	return true
}

// ForDate returns the records whose date is exactly date.
func ForDate(records []Record, date string) ([]Record, error) {
	target, err := daterange.NormalizeDate(date)
	if err != nil {
		return nil, err
	}

	out := make([]Record, 0)
	for i, r := range records {
		day, err := recordDay(r, i)
		if err != nil {
			return nil, err
		}
		if day == target {
			out = append(out, r)
		}
	}
	return out, nil
}

// ForRange buckets records per calendar day of [start, end]. Every day of the
// range gets a bucket, even with no records. Records outside the range are
// dropped; records sharing a day are all kept in input order.
func ForRange(records []Record, start, end time.Time) ([]DayBucket, error) {
	if start.IsZero() || end.IsZero() {
		return nil, daterange.InvalidArgument("range bounds are required")
	}
	window := daterange.Window{Start: daterange.Midnight(start), End: daterange.Midnight(end)}
	if window.End.Before(window.Start) {
		return nil, daterange.InvalidArgument("range end %s is before start %s",
			window.EndDate(), window.StartDate())
	}
	return ForWindow(records, window)
}

// ForWindow is ForRange over an already resolved window.
func ForWindow(records []Record, w daterange.Window) ([]DayBucket, error) {
	byDay := make(map[string][]Record)
	for i, r := range records {
		day, err := recordDay(r, i)
		if err != nil {
			return nil, err
		}
		byDay[day] = append(byDay[day], r)
	}

	buckets := make([]DayBucket, 0, w.Days())
	w.EachDay(func(d time.Time) {
		key := daterange.FormatDate(d)
		matched := byDay[key]
		if matched == nil {
			matched = []Record{}
		}
		buckets = append(buckets, DayBucket{Date: key, Defaults: matched})
	})
	return buckets, nil
}

// CountByCategory tallies defaults per category over a set of buckets.
func CountByCategory(buckets []DayBucket) map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, c := range Categories {
		counts[c] = 0
	}
	for _, b := range buckets {
		for _, r := range b.Defaults {
			counts[r.Category]++
		}
	}
	return counts
}

// recordDay normalizes a record date. Timestamps are cut to their date part;
// anything else that does not parse fails instead of landing in a wrong day.
func recordDay(r Record, idx int) (string, error) {
	day, err := daterange.ParseDay(r.Date)
	if err != nil {
		return "", fmt.Errorf("record %d (guard %s): %w", idx, r.GuardID, err)
	}
	return daterange.FormatDate(day), nil
}
