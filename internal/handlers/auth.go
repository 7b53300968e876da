package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/whyismeleige/rental-ads/internal/models"
	"github.com/whyismeleige/rental-ads/internal/services"
	"github.com/whyismeleige/rental-ads/pkg/apperr"
)

type AuthHandler struct {
	auth   *services.AuthService
	logger *zap.Logger
}

func NewAuthHandler(auth *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Register creates a new account and returns the user with a token.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, h.logger, apperr.Validation("invalid request body", nil))
		return
	}

	resp, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login authenticates a user and returns the user with a token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, h.logger, apperr.Validation("invalid request body", nil))
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout acknowledges a logout. Tokens are stateless, so there is
// nothing to invalidate server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Profile returns the account bound to the caller's token.
func (h *AuthHandler) Profile(c *gin.Context) {
	user, err := h.auth.Profile(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		fail(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}
