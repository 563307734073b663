package auth

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/aidconnect/backend/database"
	"github.com/aidconnect/backend/models"
	"github.com/aidconnect/backend/store"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "auth.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	st := store.New(db)
	return New(st, []byte("test-secret")), st
}

func mustCreateUser(t *testing.T, st *store.Store, username, password string, role models.Role) *models.User {
	t.Helper()

	hashed, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	user, err := st.CreateUser(username, hashed, role)
	if err != nil {
		t.Fatalf("CreateUser error: %v", err)
	}
	return user
}

func TestAuthenticate_Success(t *testing.T) {
	svc, st := newTestService(t)
	mustCreateUser(t, st, "maria", "s3cret", models.RoleAdmin)

	token, user, err := svc.Authenticate("maria", "s3cret")
	if err != nil {
		t.Fatalf("Authenticate error: %v", err)
	}
	if token == "" {
		t.Fatal("expected a non-empty token")
	}
	if user.Username != "maria" || user.Role != models.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if claims.Role != models.RoleAdmin {
		t.Fatalf("decoded role mismatch: got %q want %q", claims.Role, models.RoleAdmin)
	}
	if claims.Username != "maria" || claims.UserID != user.ID {
		t.Fatalf("decoded identity mismatch: %+v", claims)
	}
}

func TestAuthenticate_DecodedRoleMatchesStored(t *testing.T) {
	svc, st := newTestService(t)
	for _, tc := range []struct {
		username string
		role     models.Role
	}{
		{"donor-user", models.RoleDonor},
		{"admin-user", models.RoleAdmin},
	} {
		mustCreateUser(t, st, tc.username, "pw-"+tc.username, tc.role)

		token, _, err := svc.Authenticate(tc.username, "pw-"+tc.username)
		if err != nil {
			t.Fatalf("Authenticate(%s) error: %v", tc.username, err)
		}
		claims, err := svc.ParseToken(token)
		if err != nil {
			t.Fatalf("ParseToken(%s) error: %v", tc.username, err)
		}
		if claims.Role != tc.role {
			t.Fatalf("role mismatch for %s: got %q want %q", tc.username, claims.Role, tc.role)
		}
	}
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Authenticate("nobody", "whatever")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc, st := newTestService(t)
	mustCreateUser(t, st, "maria", "s3cret", models.RoleDonor)

	_, _, err := svc.Authenticate("maria", "wrong")
	if !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	svc, st := newTestService(t)
	user := mustCreateUser(t, st, "maria", "s3cret", models.RoleAdmin)

	svc.expiry = -time.Second
	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := svc.ParseToken(token); err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	svc, st := newTestService(t)
	user := mustCreateUser(t, st, "maria", "s3cret", models.RoleAdmin)

	token, err := svc.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	other := New(store.New(nil), []byte("a-different-secret"))
	if _, err := other.ParseToken(token); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestParseToken_MalformedString(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.ParseToken("not.a.jwt"); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}
