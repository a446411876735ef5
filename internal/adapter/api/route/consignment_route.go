package route

import (
	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/controller"
	"github.com/movilstock/backoffice/pkg/auth"
)

// RegisterConsignmentRoutes registra las rutas de consignaciones. La
// entrega es de administradores; la venta puede registrarla también el
// revendedor dueño de la consignación.
func RegisterConsignmentRoutes(r *gin.RouterGroup, consignmentController *controller.ConsignmentController, jwtService *auth.JWTService) {
	consignments := r.Group("/consignments")
	consignments.Use(auth.Middleware(jwtService))
	{
		consignments.POST("", auth.RequireRole("admin"), consignmentController.Assign)
		consignments.GET("", consignmentController.List)
		consignments.GET("/:id", consignmentController.Get)
		consignments.POST("/:id/sold", consignmentController.MarkSold)
	}
}
