package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harshvardhan1407/user-auth-service/internal/service"
)

// UserHandler handles account management HTTP requests.
type UserHandler struct {
	authService service.AuthService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(authService service.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// CreateUserRequest represents the account creation payload.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdatePasswordRequest represents the password change payload.
type UpdatePasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// DeleteUserRequest represents the account deletion parameters.
type DeleteUserRequest struct {
	Username string `form:"username" binding:"required"`
}

// CreateUser godoc
// @Summary Create user account
// @Description Hash the password and persist a new account
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "New account credentials"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /create_user [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.CreateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			respondError(c, http.StatusConflict, "username already taken")
			return
		}
		logAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "User created successfully",
		"username": user.Username,
	})
}

// UpdatePassword godoc
// @Summary Update user password
// @Description Re-hash and persist a new password for an existing account
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body UpdatePasswordRequest true "Username and new password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /update_password [put]
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.UpdatePassword(c.Request.Context(), req.Username, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "user not found")
			return
		}
		logAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}

// DeleteUser godoc
// @Summary Delete user account
// @Description Remove the account row
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param username query string true "Username"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /delete_user [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authService.DeleteUser(c.Request.Context(), req.Username); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "user not found")
			return
		}
		logAndRespondError(c, http.StatusInternalServerError, err, "internal server error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
