package route

import (
	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/controller"
	"github.com/movilstock/backoffice/pkg/auth"
)

// RegisterAuthRoutes registra las rutas de autenticación
func RegisterAuthRoutes(r *gin.RouterGroup, authController *controller.AuthController, jwtService *auth.JWTService) {
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/login", authController.Login)
		authRoutes.POST("/refresh", authController.RefreshToken)
		authRoutes.GET("/me", auth.Middleware(jwtService), authController.Me)
	}
}
