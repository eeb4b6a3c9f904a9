package credential

import "time"

// Credential is one stored key of a session in the postgres backend.
type Credential struct {
	SessionID string    `gorm:"column:session_id;type:varchar(64);primaryKey"`
	Key       string    `gorm:"column:key;type:varchar(32);primaryKey"`
	Value     string    `gorm:"column:value;type:text;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Credential) TableName() string {
	return "console_credentials"
}
