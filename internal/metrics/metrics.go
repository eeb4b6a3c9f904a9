// Package metrics combines the per-category counts shown on the metric
// selector buttons of the console.
package metrics

import (
	"encoding/json"
	"sync"

	"github.com/tidwall/gjson"
)

type Status string

const (
	StatusLoading Status = "loading"
	StatusLoaded  Status = "loaded"
	StatusError   Status = "error"
)

// Category names one of the five upstream count queries.
type Category string

const (
	CategoryAbsent    Category = "absent"
	CategoryLate      Category = "late"
	CategoryUniform   Category = "uniform"
	CategoryAlertness Category = "alertness"
	// CategoryPatrol answers both the geofence and the patrol counts.
	CategoryPatrol Category = "patrol"
)

var Categories = []Category{
	CategoryAbsent,
	CategoryLate,
	CategoryUniform,
	CategoryAlertness,
	CategoryPatrol,
}

// CategoryResult is the state of one category query. Data is the raw
// upstream envelope and is only read when Status is loaded.
type CategoryResult struct {
	Status Status
	Data   json.RawMessage
	Err    error
}

func Loading() CategoryResult {
	return CategoryResult{Status: StatusLoading}
}

func Loaded(data json.RawMessage) CategoryResult {
	return CategoryResult{Status: StatusLoaded, Data: data}
}

func Failed(err error) CategoryResult {
	return CategoryResult{Status: StatusError, Err: err}
}

type Metrics struct {
	Absent    int `json:"absent"`
	Late      int `json:"late"`
	Uniform   int `json:"uniform"`
	Alertness int `json:"alertness"`
	Geofence  int `json:"geofence"`
	Patrol    int `json:"patrol"`
	Total     int `json:"total"`
}

// Combine sums the counts of the loaded results. Anything not loaded
// counts 0. Total leaves geofence and patrol out; dashboards rely on it.
func Combine(absent, late, uniform, alertness, patrol CategoryResult) Metrics {
	m := Metrics{
		Absent:    count(absent, AbsentCount),
		Late:      count(late, LateCount),
		Uniform:   count(uniform, UniformCount),
		Alertness: count(alertness, AlertnessCount),
		Geofence:  count(patrol, GeofenceCount),
		Patrol:    count(patrol, PatrolCount),
	}
	m.Total = m.Absent + m.Late + m.Uniform + m.Alertness
	return m
}

func count(r CategoryResult, extract func(json.RawMessage) int) int {
	if r.Status != StatusLoaded {
		return 0
	}
	return extract(r.Data)
}

func AbsentCount(data json.RawMessage) int {
	return intAt(data, "data.summary.totalUniqueAbsentGuards")
}

func LateCount(data json.RawMessage) int {
	return intAt(data, "data.totalLateIncidents")
}

func UniformCount(data json.RawMessage) int {
	return intAt(data, "data.totalUniformDefaults")
}

func AlertnessCount(data json.RawMessage) int {
	return intAt(data, "data.totalAlertnessDefaults")
}

func GeofenceCount(data json.RawMessage) int {
	v := gjson.GetBytes(data, "data.guardsWithGeofenceActivity")
	if !v.IsArray() {
		return 0
	}
	return len(v.Array())
}

func PatrolCount(data json.RawMessage) int {
	return intAt(data, "data.totalSessions")
}

// intAt reads a numeric field; missing, null or non-numeric values are 0.
func intAt(data json.RawMessage, path string) int {
	if !gjson.ValidBytes(data) {
		return 0
	}
	v := gjson.GetBytes(data, path)
	if v.Type != gjson.Number {
		return 0
	}
	return int(v.Int())
}

// Tracker recombines metrics each time one category settles. Updates may
// arrive in any order and repeat; the snapshot only depends on the latest
// result per category.
type Tracker struct {
	mu      sync.Mutex
	results map[Category]CategoryResult
}

func NewTracker() *Tracker {
	t := &Tracker{results: make(map[Category]CategoryResult, len(Categories))}
	for _, c := range Categories {
		t.results[c] = Loading()
	}
	return t
}

// Set records the result of a category and returns the recombined metrics.
func (t *Tracker) Set(c Category, r CategoryResult) Metrics {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.results[c] = r
	return t.combineLocked()
}

func (t *Tracker) Metrics() Metrics {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.combineLocked()
}

// Results returns a copy of the per-category results.
func (t *Tracker) Results() map[Category]CategoryResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make(map[Category]CategoryResult, len(t.results))
	for k, v := range t.results {
		out[k] = v
	}
	return out
}

func (t *Tracker) combineLocked() Metrics {
	return Combine(
		t.results[CategoryAbsent],
		t.results[CategoryLate],
		t.results[CategoryUniform],
		t.results[CategoryAlertness],
		t.results[CategoryPatrol],
	)
}
