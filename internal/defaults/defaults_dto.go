package defaults

type CalendarQuery struct {
	View    string `form:"view" binding:"required"`
	Date    string `form:"date" binding:"required"`
	Refresh bool   `form:"refresh"`
}

// ViewRange labels calendars built from an explicit from/to range.
const ViewRange = "RANGE"

type RangeQuery struct {
	From    string `form:"from" binding:"required"`
	To      string `form:"to" binding:"required"`
	Refresh bool   `form:"refresh"`
}

type DayQuery struct {
	View    string `form:"view"`
	Refresh bool   `form:"refresh"`
}

type CalendarResponse struct {
	GuardID   string           `json:"guard_id"`
	View      string           `json:"view"`
	StartDate string           `json:"start_date"`
	EndDate   string           `json:"end_date"`
	Days      []DayResponse    `json:"days"`
	Counts    map[Category]int `json:"counts"`
}

type DayResponse struct {
	Date       string   `json:"date"`
	HasDefault bool     `json:"has_default"`
	Defaults   []Record `json:"defaults"`
}
