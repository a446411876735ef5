package route

import (
	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/controller"
	"github.com/movilstock/backoffice/pkg/auth"
)

// RegisterPaymentRoutes registra las rutas de pagos. Informar es de
// cualquier usuario autenticado; confirmar y rechazar son de
// administradores.
func RegisterPaymentRoutes(r *gin.RouterGroup, paymentController *controller.PaymentController, jwtService *auth.JWTService) {
	payments := r.Group("/payments")
	payments.Use(auth.Middleware(jwtService))
	{
		payments.POST("", paymentController.Report)
		payments.GET("", paymentController.List)
		payments.GET("/:id", paymentController.Get)
		payments.POST("/:id/confirm", auth.RequireRole("admin"), paymentController.Confirm)
		payments.POST("/:id/reject", auth.RequireRole("admin"), paymentController.Reject)
	}
}
