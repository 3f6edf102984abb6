package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mvp-tools/dashboard_backend/internal/auth"
	"github.com/mvp-tools/dashboard_backend/internal/models"
)

// Context keys for storing session data
// #INTEGRATION_POINT: Handlers extract the user with these keys
const (
	ContextKeyUser   = "user"
	ContextKeyClaims = "claims"
)

// Custom errors
var (
	ErrAuthHeaderMissing = errors.New("authorization header is required")
	ErrAuthHeaderFormat  = errors.New("authorization header format must be Bearer {token}")
	ErrInvalidToken      = errors.New("invalid or expired session token")
)

// bearerToken extracts the token from an Authorization header, if present.
func bearerToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", ErrAuthHeaderMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", ErrAuthHeaderFormat
	}
	return parts[1], nil
}

func setSession(c *gin.Context, claims *auth.Claims) {
	c.Set(ContextKeyClaims, claims)
	c.Set(ContextKeyUser, models.User{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
	})
}

// Session extracts the user identity if a valid session token is present
// but does not require one. Anonymous requests pass through untouched.
// #IMPLEMENTATION_DECISION: The dashboard is browsable without signing in
func Session(sessions auth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err == nil {
			if claims, verr := sessions.ValidateToken(token); verr == nil {
				setSession(c, claims)
			}
		}
		c.Next()
	}
}

// RequireSession rejects requests without a valid session token.
func RequireSession(sessions auth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": err.Error(),
			})
			c.Abort()
			return
		}

		claims, err := sessions.ValidateToken(token)
		if err != nil {
			message := ErrInvalidToken.Error()
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "session has expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "unauthorized",
				"message": message,
			})
			c.Abort()
			return
		}

		setSession(c, claims)
		c.Next()
	}
}

// GetUser returns the session user stored by Session or RequireSession.
func GetUser(c *gin.Context) (models.User, bool) {
	if val, exists := c.Get(ContextKeyUser); exists {
		if user, ok := val.(models.User); ok {
			return user, true
		}
	}
	return models.User{}, false
}
