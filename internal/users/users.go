// SPDX-License-Identifier: MIT
package users

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thatcatcamp/sectioncss/internal/auth"
	"github.com/thatcatcamp/sectioncss/internal/models"
	"gorm.io/gorm"
)

// ErrInvalidCredentials covers both unknown users and wrong passwords
var ErrInvalidCredentials = errors.New("invalid username or password")

func normalize(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// CreateAdmin creates an admin account. A soft-deleted account with the same
// name is restored with the new password.
func CreateAdmin(db *gorm.DB, username, password string) (*models.Admin, error) {
	username = normalize(username)
	if username == "" {
		return nil, errors.New("username cannot be empty")
	}

	var existing models.Admin
	if err := db.Where(&models.Admin{Username: username}).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("admin %s already exists", username)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var deleted models.Admin
	err = db.Unscoped().Where(&models.Admin{Username: username}).Where("deleted_at IS NOT NULL").First(&deleted).Error
	if err == nil {
		if err := db.Unscoped().Model(&deleted).Updates(map[string]interface{}{
			"deleted_at":    nil,
			"password_hash": hash,
		}).Error; err != nil {
			return nil, fmt.Errorf("failed to restore admin: %w", err)
		}
		deleted.PasswordHash = hash
		deleted.DeletedAt = gorm.DeletedAt{}
		return &deleted, nil
	}

	admin := &models.Admin{Username: username, PasswordHash: hash}
	if err := db.Create(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}

// GetAdmin retrieves an admin by username
func GetAdmin(db *gorm.DB, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := db.Where(&models.Admin{Username: normalize(username)}).First(&admin).Error; err != nil {
		return nil, fmt.Errorf("admin not found: %w", err)
	}
	return &admin, nil
}

// GetAdminByID retrieves an admin by ID
func GetAdminByID(db *gorm.DB, id uint) (*models.Admin, error) {
	var admin models.Admin
	if err := db.First(&admin, id).Error; err != nil {
		return nil, fmt.Errorf("admin not found: %w", err)
	}
	return &admin, nil
}

// ListAdmins returns all admins ordered by username
func ListAdmins(db *gorm.DB) ([]models.Admin, error) {
	var admins []models.Admin
	if err := db.Order("username").Find(&admins).Error; err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

// SetPassword replaces an admin's password
func SetPassword(db *gorm.DB, username, password string) error {
	admin, err := GetAdmin(db, username)
	if err != nil {
		return err
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return db.Model(admin).Update("password_hash", hash).Error
}

// DeleteAdmin soft-deletes an admin
func DeleteAdmin(db *gorm.DB, username string) error {
	result := db.Where(&models.Admin{Username: normalize(username)}).Delete(&models.Admin{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("admin not found")
	}
	return nil
}

// Authenticate checks credentials and records the login time
func Authenticate(db *gorm.DB, username, password string) (*models.Admin, error) {
	admin, err := GetAdmin(db, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := db.Model(admin).Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}
	admin.LastLoginAt = &now
	return admin, nil
}
