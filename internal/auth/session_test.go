package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/mvp-tools/dashboard_backend/internal/models"
)

const testSecret = "unit-test-secret-key-with-32-chars"

func newTestService(t *testing.T, expiry time.Duration) SessionService {
	t.Helper()
	svc, err := NewSessionService(SessionConfig{
		SecretKey: testSecret,
		Expiry:    expiry,
	})
	if err != nil {
		t.Fatalf("NewSessionService() returned error: %v", err)
	}
	return svc
}

func demoUser() models.User {
	return models.User{
		ID:    "user-123",
		Name:  models.DemoUserName,
		Email: models.DemoUserEmail,
	}
}

func TestNewSessionService_MissingSecret(t *testing.T) {
	_, err := NewSessionService(SessionConfig{})
	if !errors.Is(err, ErrMissingSecret) {
		t.Errorf("NewSessionService() error = %v, want ErrMissingSecret", err)
	}
}

func TestSessionService_RoundTrip(t *testing.T) {
	svc := newTestService(t, time.Hour)
	user := demoUser()

	token, expiresAt, err := svc.IssueToken(user)
	if err != nil {
		t.Fatalf("IssueToken() returned error: %v", err)
	}
	if token == "" {
		t.Fatal("IssueToken() returned empty token")
	}
	if !expiresAt.After(time.Now()) {
		t.Error("expiresAt is not in the future")
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() returned error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Name != user.Name {
		t.Errorf("Name = %q, want %q", claims.Name, user.Name)
	}
	if claims.Email != user.Email {
		t.Errorf("Email = %q, want %q", claims.Email, user.Email)
	}
}

func TestSessionService_ExpiredToken(t *testing.T) {
	svc := newTestService(t, -time.Minute)

	token, _, err := svc.IssueToken(demoUser())
	if err != nil {
		t.Fatalf("IssueToken() returned error: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ValidateToken() error = %v, want ErrTokenExpired", err)
	}
}

func TestSessionService_TamperedToken(t *testing.T) {
	svc := newTestService(t, time.Hour)

	token, _, err := svc.IssueToken(demoUser())
	if err != nil {
		t.Fatalf("IssueToken() returned error: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := svc.ValidateToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken(tampered) error = %v, want ErrInvalidToken", err)
	}
}

func TestSessionService_WrongSecret(t *testing.T) {
	svc := newTestService(t, time.Hour)

	other, err := NewSessionService(SessionConfig{
		SecretKey: "a-completely-different-32-char-key",
	})
	if err != nil {
		t.Fatalf("NewSessionService() returned error: %v", err)
	}

	token, _, err := other.IssueToken(demoUser())
	if err != nil {
		t.Fatalf("IssueToken() returned error: %v", err)
	}

	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken(wrong secret) error = %v, want ErrInvalidToken", err)
	}
}

func TestSessionService_GarbageToken(t *testing.T) {
	svc := newTestService(t, time.Hour)

	if _, err := svc.ValidateToken("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("ValidateToken(garbage) error = %v, want ErrInvalidToken", err)
	}
}
