// Package auth provides signed session tokens for the dashboard.
// #IMPLEMENTATION_DECISION: HS256 with the application secret key - the
// backend is both issuer and verifier, so asymmetric keys buy nothing here.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mvp-tools/dashboard_backend/internal/models"
)

// Custom errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrTokenExpired  = errors.New("token has expired")
	ErrInvalidClaims = errors.New("invalid token claims")
	ErrMissingSecret = errors.New("session secret is required")
)

// DefaultSessionExpiry applies when SessionConfig leaves Expiry zero.
const DefaultSessionExpiry = 12 * time.Hour

// Claims represents the JWT claims carried by a session token.
// #INTEGRATION_POINT: Handlers read the user identity from these claims
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// SessionService issues and validates session tokens.
// #IMPLEMENTATION_DECISION: Service interface for testability
type SessionService interface {
	IssueToken(user models.User) (string, time.Time, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// sessionService implements SessionService
type sessionService struct {
	secret []byte
	expiry time.Duration
	issuer string
}

// SessionConfig holds session service configuration
type SessionConfig struct {
	SecretKey string
	Expiry    time.Duration
	Issuer    string
}

// NewSessionService creates a new session service instance.
// #LIBRARY_CHOICE: golang-jwt/jwt/v5 - well-maintained, supports HS256
func NewSessionService(cfg SessionConfig) (SessionService, error) {
	if cfg.SecretKey == "" {
		return nil, ErrMissingSecret
	}
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = DefaultSessionExpiry
	}
	issuer := cfg.Issuer
	if issuer == "" {
		issuer = "dashboard-backend"
	}
	return &sessionService{
		secret: []byte(cfg.SecretKey),
		expiry: expiry,
		issuer: issuer,
	}, nil
}

// IssueToken signs a session token for the given user.
func (s *sessionService) IssueToken(user models.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiry)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and verifies a session token.
func (s *sessionService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.Issuer != s.issuer {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}
