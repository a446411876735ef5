package route

import (
	"github.com/gin-gonic/gin"
	"github.com/movilstock/backoffice/internal/adapter/api/controller"
	"github.com/movilstock/backoffice/pkg/auth"
)

// RegisterResellerRoutes registra las rutas de revendedores y su libro de
// deuda. Las escrituras son de administradores; un revendedor puede leer
// su propio perfil, saldo y movimientos.
func RegisterResellerRoutes(r *gin.RouterGroup, resellerController *controller.ResellerController, jwtService *auth.JWTService) {
	resellers := r.Group("/resellers")
	resellers.Use(auth.Middleware(jwtService))
	{
		resellers.POST("", auth.RequireRole("admin"), resellerController.Create)
		resellers.GET("", auth.RequireRole("admin"), resellerController.List)
		resellers.GET("/:id", resellerController.Get)
		resellers.PUT("/:id", auth.RequireRole("admin"), resellerController.Update)
		resellers.DELETE("/:id", auth.RequireRole("admin"), resellerController.Delete)
		resellers.GET("/:id/balance", resellerController.Balance)
		resellers.GET("/:id/ledger", resellerController.LedgerEntries)
		resellers.POST("/:id/ledger", auth.RequireRole("admin"), resellerController.AddLedgerEntry)
	}
}
