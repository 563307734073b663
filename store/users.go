package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aidconnect/backend/models"
	"gorm.io/gorm"
)

// CreateUser inserts a new user record. The password must already be hashed.
func (s *Store) CreateUser(username, passwordHash string, role models.Role) (*models.User, error) {
	if username == "" || passwordHash == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrValidation)
	}

	user := models.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}

// UserByUsername fetches a user record by its unique username.
func (s *Store) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdatePassword replaces a user's password hash (out-of-band admin tool).
func (s *Store) UpdatePassword(username, passwordHash string) error {
	result := s.db.Model(&models.User{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// isUniqueViolation matches unique-constraint errors across the postgres and
// sqlite drivers, which surface them with different error types.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
