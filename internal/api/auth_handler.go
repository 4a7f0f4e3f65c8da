package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"peakform/internal/domain"
	"peakform/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type RequestLinkRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type VerifyRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

// UserResponse excludes the pending login token state.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type VerifyResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Handler Methods ---

// RequestLink issues a magic-link token for the email, creating the account
// on first use. The token travels out of band (the mail boundary); here it
// is only logged so a dev setup can complete the flow.
func (h *AuthHandler) RequestLink(c *gin.Context) {
	var req RequestLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, err := h.authService.RequestLoginLink(c.Request.Context(), req.Email)
	if err != nil {
		logrus.Errorf("request login link for %s: %v", req.Email, err)
		abortWithError(c, http.StatusInternalServerError, "Could not create login link")
		return
	}

	logrus.WithField("email", req.Email).Infof("magic-link token issued: %s", token)
	c.JSON(http.StatusOK, gin.H{"message": "Login link sent. Check your email."})
}

// Verify exchanges a magic-link token for a session JWT.
func (h *AuthHandler) Verify(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.VerifyLoginToken(c.Request.Context(), req.Email, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLoginTokenInvalid):
			abortWithError(c, http.StatusUnauthorized, err.Error())
		case errors.Is(err, service.ErrLoginTokenExpired):
			abortWithError(c, http.StatusUnauthorized, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, VerifyResponse{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:        user.ID.Hex(),
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
