package route

import (
	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/controller"
	"github.com/movilstock/backoffice/pkg/auth"
)

// RegisterDeviceRoutes registra las rutas de equipos y del catálogo de
// estados
func RegisterDeviceRoutes(r *gin.RouterGroup, deviceController *controller.DeviceController, jwtService *auth.JWTService) {
	devices := r.Group("/devices")
	devices.Use(auth.Middleware(jwtService))
	{
		devices.POST("", auth.RequireRole("admin"), deviceController.Create)
		devices.GET("", deviceController.List)
		devices.GET("/:id", deviceController.Get)
		devices.PUT("/:id/state", auth.RequireRole("admin"), deviceController.SetState)
	}

	statuses := r.Group("/device-statuses")
	statuses.Use(auth.Middleware(jwtService))
	{
		statuses.POST("", auth.RequireRole("admin"), deviceController.CreateStatus)
		statuses.GET("", deviceController.ListStatuses)
		statuses.PUT("/:key", auth.RequireRole("admin"), deviceController.UpdateStatus)
	}
}
