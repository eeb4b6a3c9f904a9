package task

type Task struct {
	ID          string `json:"id"`
	GuardID     string `json:"guardId"`
	ClientID    string `json:"clientId,omitempty"`
	Title       string `json:"title"`
	Status      string `json:"status"`
	ScheduledAt string `json:"scheduledAt"`
}

type ListQuery struct {
	View    string `form:"view" binding:"required"`
	Date    string `form:"date" binding:"required"`
	Status  string `form:"status" binding:"omitempty,oneof=PENDING IN_PROGRESS DONE MISSED"`
	GuardID string `form:"guardId"`
	Refresh bool   `form:"refresh"`
}

type Filter struct {
	Status  string
	GuardID string
}

type ListResponse struct {
	View      string `json:"view"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Tasks     []Task `json:"tasks"`
}
