package route

import (
	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/controller"
	"github.com/movilstock/backoffice/pkg/auth"
)

// RegisterStockRequestRoutes registra las rutas de pedidos de stock
func RegisterStockRequestRoutes(r *gin.RouterGroup, stockRequestController *controller.StockRequestController, jwtService *auth.JWTService) {
	requests := r.Group("/stock-requests")
	requests.Use(auth.Middleware(jwtService))
	{
		requests.POST("", auth.RequireRole("reseller"), stockRequestController.Create)
		requests.GET("", stockRequestController.List)
		requests.PUT("/:id/status", auth.RequireRole("admin"), stockRequestController.UpdateStatus)
	}
}

// RegisterChatRoutes registra las rutas del chat directo
func RegisterChatRoutes(r *gin.RouterGroup, chatController *controller.ChatController, jwtService *auth.JWTService) {
	chatRoutes := r.Group("/chat")
	chatRoutes.Use(auth.Middleware(jwtService))
	{
		chatRoutes.POST("/messages", chatController.SendMessage)
		chatRoutes.GET("/messages", chatController.ListMessages)
	}
}

// RegisterNotificationRoutes registra las rutas de notificaciones
func RegisterNotificationRoutes(r *gin.RouterGroup, notificationController *controller.NotificationController, jwtService *auth.JWTService) {
	notifications := r.Group("/notifications")
	notifications.Use(auth.Middleware(jwtService))
	{
		notifications.GET("", notificationController.List)
		notifications.POST("/:id/read", notificationController.MarkRead)
	}
}

// RegisterDollarRateRoutes registra la ruta de cotización del dólar
func RegisterDollarRateRoutes(r *gin.RouterGroup, dollarRateController *controller.DollarRateController, jwtService *auth.JWTService) {
	r.GET("/dollar-rate", auth.Middleware(jwtService), dollarRateController.Get)
}
