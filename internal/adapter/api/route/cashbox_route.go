package route

import (
	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/controller"
	"github.com/movilstock/backoffice/pkg/auth"
)

// RegisterCashBoxRoutes registra las rutas de cajas, solo para
// administradores
func RegisterCashBoxRoutes(r *gin.RouterGroup, cashBoxController *controller.CashBoxController, jwtService *auth.JWTService) {
	cashboxes := r.Group("/cashboxes")
	cashboxes.Use(auth.Middleware(jwtService), auth.RequireRole("admin"))
	{
		cashboxes.POST("", cashBoxController.Create)
		cashboxes.GET("", cashBoxController.List)
		cashboxes.GET("/:id", cashBoxController.Get)
		cashboxes.GET("/:id/balance", cashBoxController.Balance)
		cashboxes.POST("/:id/movements", cashBoxController.AddMovement)
		cashboxes.GET("/:id/movements", cashBoxController.Movements)
	}
}
