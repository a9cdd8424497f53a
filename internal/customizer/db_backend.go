// SPDX-License-Identifier: MIT
package customizer

import (
	"context"
	"errors"
	"fmt"

	"github.com/thatcatcamp/sectioncss/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBBackend stores values in the settings table and keeps an audit row per
// change
type DBBackend struct {
	db *gorm.DB
}

// NewDBBackend wraps a migrated gorm connection
func NewDBBackend(db *gorm.DB) *DBBackend {
	return &DBBackend{db: db}
}

func (b *DBBackend) Load(ctx context.Context) (map[string]string, error) {
	var rows []models.Setting
	if err := b.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}

func (b *DBBackend) Put(ctx context.Context, key, value string) error {
	return b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old models.Setting
		err := tx.Where(&models.Setting{Key: key}).First(&old).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to read setting %s: %w", key, err)
		}
		if err == nil && old.Value == value {
			return nil
		}

		row := models.Setting{Key: key, Value: value}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to save setting %s: %w", key, err)
		}

		change := models.SettingChange{Key: key, OldValue: old.Value, NewValue: value, ChangedBy: ActorFrom(ctx)}
		if err := tx.Create(&change).Error; err != nil {
			return fmt.Errorf("failed to record change for %s: %w", key, err)
		}
		return nil
	})
}

func (b *DBBackend) Delete(ctx context.Context, key string) error {
	if err := b.db.WithContext(ctx).Where(&models.Setting{Key: key}).Delete(&models.Setting{}).Error; err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}

// History returns the most recent changes for a key, newest first
func (b *DBBackend) History(ctx context.Context, key string, limit int) ([]models.SettingChange, error) {
	var changes []models.SettingChange
	err := b.db.WithContext(ctx).
		Where(&models.SettingChange{Key: key}).
		Order("id desc").
		Limit(limit).
		Find(&changes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load history for %s: %w", key, err)
	}
	return changes, nil
}
