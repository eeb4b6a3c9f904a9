package credential

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

// AutoMigrate creates the credential table when it does not exist.
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(&Credential{})
}

func (s *GormStore) Get(ctx context.Context, key string) (string, bool, error) {
	sid := sessionFrom(ctx)
	if sid == "" {
		return "", false, nil
	}

	var row Credential
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sid).
		Where("key = ?", key).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return row.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, key, value string) error {
	sid := sessionFrom(ctx)
	if sid == "" {
		return ErrNoSession
	}

	row := Credential{SessionID: sid, Key: key, Value: value, UpdatedAt: s.now().UTC()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

func (s *GormStore) Delete(ctx context.Context, keys ...string) error {
	sid := sessionFrom(ctx)
	if sid == "" || len(keys) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).
		Where("session_id = ?", sid).
		Where("key IN ?", keys).
		Delete(&Credential{}).Error
}
