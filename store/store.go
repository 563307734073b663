// Package store wraps all database access behind a handle constructed once
// at startup and passed to every component that needs it.
package store

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrNotFound means the referenced row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation means required input was missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrUsernameTaken means the username is already registered.
	ErrUsernameTaken = errors.New("username already taken")
)

// Store is the single access point to the requests, donations and users
// tables.
type Store struct {
	db *gorm.DB
}

// New creates a store around an open database handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
