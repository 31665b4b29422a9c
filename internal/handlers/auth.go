// Package handlers contains HTTP request handlers for the auth service.
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Harshvardhan1407/user-auth-service/internal/metrics"
	"github.com/Harshvardhan1407/user-auth-service/internal/service"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	metrics     *metrics.Metrics
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		metrics:     m,
	}
}

// LoginRequest represents the OAuth2-style password form.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginToken godoc
// @Summary Issue access token
// @Description Verify username/password and return a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /login_token [post]
func (h *AuthHandler) LoginToken(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.metrics.LoginAttempts.WithLabelValues("failure").Inc()
			respondError(c, http.StatusUnauthorized, "invalid username or password")
			return
		}
		logAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	h.metrics.LoginAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, response)
}

// UserLogin godoc
// @Summary Current user profile
// @Description Validate the bearer token and return the user's profile with login count
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.ProfileResponse
// @Failure 401 {object} map[string]string
// @Router /user_login [post]
func (h *AuthHandler) UserLogin(c *gin.Context) {
	token := extractToken(c)
	if token == "" {
		respondError(c, http.StatusUnauthorized, "invalid authentication token")
		return
	}

	profile, err := h.authService.WhoAmI(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "invalid authentication token")
			return
		}
		logAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, profile)
}

func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(strings.Split(bearerToken, " ")) == 2 {
		return strings.Split(bearerToken, " ")[1]
	}
	return ""
}
