package metrics

type SummaryQuery struct {
	View    string `form:"view" binding:"required"`
	Date    string `form:"date" binding:"required"`
	Refresh bool   `form:"refresh"`
}

type CategoryStatus struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

type SummaryResponse struct {
	Subject    string                      `json:"subject"`
	ID         string                      `json:"id"`
	View       string                      `json:"view"`
	StartDate  string                      `json:"start_date"`
	EndDate    string                      `json:"end_date"`
	Metrics    Metrics                     `json:"metrics"`
	Categories map[Category]CategoryStatus `json:"categories"`
}
