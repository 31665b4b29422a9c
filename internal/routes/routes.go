// Package routes defines HTTP routes for the auth service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Harshvardhan1407/user-auth-service/internal/handlers"
	"github.com/Harshvardhan1407/user-auth-service/internal/middleware"
	"github.com/Harshvardhan1407/user-auth-service/internal/service"
)

// Setup configures all HTTP routes for the application. Password update and
// account deletion require a valid bearer token; account creation stays open
// as the registration path.
func Setup(router *gin.Engine, authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler, healthHandler *handlers.HealthHandler, authService service.AuthService) {
	router.GET("/", healthHandler.Root)
	router.POST("/", healthHandler.Root)
	router.GET("/health", healthHandler.Check)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.POST("/login_token", authHandler.LoginToken)
	router.POST("/user_login", authHandler.UserLogin)
	router.POST("/create_user", userHandler.CreateUser)

	protected := router.Group("/", middleware.RequireAuth(authService))
	{
		protected.PUT("/update_password", userHandler.UpdatePassword)
		protected.DELETE("/delete_user", userHandler.DeleteUser)
	}
}
