// Package handlers contains HTTP request handlers for the weather service.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/raghhhava7/Devclimate-BE/internal/middleware"
	"github.com/raghhhava7/Devclimate-BE/internal/service"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary Register a new account
// @Description Create an account and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "username, email and password are required")
		return
	}

	response, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrWeakPassword), errors.Is(err, service.ErrDuplicateUser):
			RespondError(c, http.StatusBadRequest, err.Error())
		default:
			LogAndRespondError(c, http.StatusInternalServerError, err, "registration failed")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "user registered successfully",
		"token":   response.Token,
		"user":    response.User,
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			RespondError(c, http.StatusUnauthorized, err.Error())
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "login successful",
		"token":   response.Token,
		"user":    response.User,
	})
}

// Profile godoc
// @Summary Get own profile
// @Description Return the authenticated user's account, without the password hash
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string
// @Router /auth/profile [get]
func (h *AuthHandler) Profile(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		RespondError(c, http.StatusUnauthorized, "authorization required")
		return
	}

	user, err := h.authService.Profile(c.Request.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			RespondError(c, http.StatusNotFound, err.Error())
			return
		}
		LogAndRespondError(c, http.StatusInternalServerError, err, "failed to load profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
