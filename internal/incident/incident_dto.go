package incident

type Incident struct {
	ID          string `json:"id"`
	GuardID     string `json:"guardId,omitempty"`
	ClientID    string `json:"clientId"`
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description,omitempty"`
	OccurredAt  string `json:"occurredAt"`
	Attachments int    `json:"attachmentCount,omitempty"`
}

type ListQuery struct {
	View     string `form:"view" binding:"required"`
	Date     string `form:"date" binding:"required"`
	Severity string `form:"severity" binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	ClientID string `form:"clientId"`
	Refresh  bool   `form:"refresh"`
}

type Filter struct {
	Severity string
	ClientID string
}

type ListResponse struct {
	View       string         `json:"view"`
	StartDate  string         `json:"start_date"`
	EndDate    string         `json:"end_date"`
	Incidents  []Incident     `json:"incidents"`
	BySeverity map[string]int `json:"by_severity"`
}

// Upload is one file attached to an incident report, usually a photo.
type Upload struct {
	Filename string
	Caption  string
	Content  []byte
}

type Attachment struct {
	ID         string `json:"id"`
	IncidentID string `json:"incidentId"`
	Filename   string `json:"filename"`
	Caption    string `json:"caption,omitempty"`
	URL        string `json:"url"`
}
