package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mvp-tools/dashboard_backend/internal/auth"
	"github.com/mvp-tools/dashboard_backend/internal/middleware"
	"github.com/mvp-tools/dashboard_backend/internal/models"
)

// SessionHandler handles the demo sign-in flow.
// #CODE_ASSUMPTION: There is no credential check yet - login issues a
// token for a fixed demo identity, mirroring the placeholder sign-in.
type SessionHandler struct {
	sessions auth.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions auth.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	User        models.User `json:"user"`
	AccessToken string      `json:"access_token"`
	ExpiresAt   time.Time   `json:"expires_at"`
}

// Login handles POST /session/login
// @Summary Demo sign-in
// @Description Issues a session token for the demo user (no credentials required)
// @Tags Session
// @Produce json
// @Success 200 {object} LoginResponse
// @Failure 500 {object} map[string]string
// @Router /session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	user := models.User{
		ID:    uuid.New().String(),
		Name:  models.DemoUserName,
		Email: models.DemoUserEmail,
	}

	token, expiresAt, err := h.sessions.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal_server_error",
			"message": "failed to create session",
		})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		User:        user,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	})
}

// Current handles GET /session
// @Summary Current session
// @Description Returns the signed-in user, or a null user for anonymous requests
// @Tags Session
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /session [get]
func (h *SessionHandler) Current(c *gin.Context) {
	if user, ok := middleware.GetUser(c); ok {
		c.JSON(http.StatusOK, gin.H{"user": user})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": nil})
}

// Logout handles DELETE /session
// @Summary Sign out
// @Description Ends the session; the client discards its token
// @Tags Session
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /session [delete]
func (h *SessionHandler) Logout(c *gin.Context) {
	// Tokens are stateless; sign-out is complete once the client drops it.
	c.JSON(http.StatusOK, gin.H{
		"message": "signed out",
	})
}

// RegisterRoutes registers session routes on the API group.
func (h *SessionHandler) RegisterRoutes(api *gin.RouterGroup, requireSession gin.HandlerFunc) {
	api.POST("/session/login", h.Login)
	api.GET("/session", h.Current)
	api.DELETE("/session", requireSession, h.Logout)
}
