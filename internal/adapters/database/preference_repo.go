package database

import (
	"context"
	stderrors "errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// PreferenceModel represents one stored preference value
type PreferenceModel struct {
	Key       string `gorm:"primaryKey;size:191"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (PreferenceModel) TableName() string {
	return "preferences"
}

// PreferenceRepositoryAdapter implements the KeyValueStore port using GORM
type PreferenceRepositoryAdapter struct {
	db *gorm.DB
}

// NewPreferenceRepositoryAdapter creates a new preference repository adapter
func NewPreferenceRepositoryAdapter(db *gorm.DB) *PreferenceRepositoryAdapter {
	return &PreferenceRepositoryAdapter{db: db}
}

// Get retrieves the value stored under key
func (r *PreferenceRepositoryAdapter) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.NewValidationError("preference key cannot be empty")
	}

	var model PreferenceModel
	result := r.db.WithContext(ctx).Where("key = ?", key).Take(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, errors.NewStorageError("failed to read preference", result.Error)
	}

	return model.Value, true, nil
}

// Set inserts or replaces the value stored under key
func (r *PreferenceRepositoryAdapter) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.NewValidationError("preference key cannot be empty")
	}

	model := &PreferenceModel{Key: key, Value: value}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(model)
	if result.Error != nil {
		return errors.NewStorageError("failed to save preference", result.Error)
	}

	return nil
}

var _ ports.KeyValueStore = (*PreferenceRepositoryAdapter)(nil)
