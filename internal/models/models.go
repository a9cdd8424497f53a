// SPDX-License-Identifier: MIT
package models

import (
	"time"

	"gorm.io/gorm"
)

// Setting is one persisted customizer value, keyed by the full settings key
// (section id + "_css_" + suffix)
type Setting struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"uniqueIndex;size:191;not null"`
	Value     string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SettingChange records a value written through the admin customizer
type SettingChange struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"index;size:191;not null"`
	OldValue  string `gorm:"type:text"`
	NewValue  string `gorm:"type:text"`
	ChangedBy string
	CreatedAt time.Time
}

// Admin is an account allowed to use the customizer
type Admin struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:191;not null"`
	PasswordHash string `gorm:"not null"`
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName overrides for consistent naming
func (Setting) TableName() string {
	return "settings"
}

func (SettingChange) TableName() string {
	return "setting_changes"
}

func (Admin) TableName() string {
	return "admins"
}

// All returns every model for AutoMigrate
func All() []interface{} {
	return []interface{}{&Setting{}, &SettingChange{}, &Admin{}}
}
