// Package auth verifies credentials and issues the signed session tokens
// consumed by the admin middleware.
package auth

import (
	"errors"
	"os"
	"time"

	"github.com/aidconnect/backend/models"
	"github.com/aidconnect/backend/store"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenExpiry = 24 * time.Hour

var (
	// ErrUserNotFound means no user matches the username.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword means the password does not match the stored hash.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrInvalidToken means the token failed signature or expiry checks.
	ErrInvalidToken = errors.New("invalid token")
)

// Claims carried inside a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID   uint        `json:"id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
}

// Service authenticates users against the store and signs session tokens.
type Service struct {
	store  *store.Store
	secret []byte
	expiry time.Duration
}

// New creates an auth service backed by the given store and signing secret.
func New(s *store.Store, secret []byte) *Service {
	return &Service{store: s, secret: secret, expiry: tokenExpiry}
}

// SecretFromEnv reads JWT_SECRET, falling back to a dev-only default.
func SecretFromEnv() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default-dev-secret-change-me"
	}
	return []byte(secret)
}

// Authenticate verifies a username/password pair and returns a signed token
// plus the matched user. It never mutates user state.
func (s *Service) Authenticate(username, password string) (string, *models.User, error) {
	user, err := s.store.UserByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", nil, ErrUserNotFound
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidPassword
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GenerateToken signs a session token carrying the user's identity and role.
func (s *Service) GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ParseToken verifies signature and expiry and returns the decoded claims.
func (s *Service) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
