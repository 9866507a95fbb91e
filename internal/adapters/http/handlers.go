package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cognitiveflux/core/internal/application/services"
	"github.com/cognitiveflux/core/internal/domain/entities"
	"github.com/cognitiveflux/core/internal/infrastructure/logger"
	"github.com/cognitiveflux/core/internal/ports"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	authService *services.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, appLogger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      appLogger,
	}
}

// Login handles user login
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Login(c.Request().Context(), req)
	if err != nil {
		h.logger.LogSecurityEvent("login_failed", "", c.RealIP(), map[string]interface{}{
			"username": req.Username,
		})
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	}

	return c.JSON(http.StatusOK, response)
}

// Signup handles account creation
func (h *AuthHandler) Signup(c echo.Context) error {
	var req ports.SignupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	response, err := h.authService.Signup(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, entities.ErrUsernameTaken) {
			return echo.NewHTTPError(http.StatusConflict, "Username already taken")
		}
		h.logger.Error("Signup failed", "error", err, "username", req.Username)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusCreated, response)
}

// Logout handles user logout
func (h *AuthHandler) Logout(c echo.Context) error {
	claims := getClaimsFromContext(c)
	if claims != nil {
		h.authService.Logout(c.Request().Context(), claims)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}

// Utility functions and helper types

func getClaimsFromContext(c echo.Context) *ports.Claims {
	claims, ok := c.Get("claims").(*ports.Claims)
	if !ok {
		return nil
	}
	return claims
}

// MessageResponse is a simple confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a user-facing failure message.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ListResponse wraps a projection of the article collection.
type ListResponse struct {
	Data  []*entities.Article `json:"data"`
	Total int                 `json:"total"`
}
