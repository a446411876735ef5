package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/movilstock/backoffice/docs"
	"github.com/movilstock/backoffice/internal/adapter/api/controller"
	"github.com/movilstock/backoffice/internal/adapter/api/route"
	"github.com/movilstock/backoffice/internal/adapter/repository"
	"github.com/movilstock/backoffice/internal/infrastructure/database"
	"github.com/movilstock/backoffice/internal/service"
	"github.com/movilstock/backoffice/pkg/auth"
	"github.com/movilstock/backoffice/pkg/dollarrate"
	"github.com/movilstock/backoffice/pkg/logger"
)

// App representa la aplicación y sus dependencias
type App struct {
	router *gin.Engine
	db     *pgxpool.Pool
	logger logger.Logger
}

// NewApp crea la aplicación: conexión a la base, repositorios, servicios,
// controladores y rutas
func NewApp() (*App, error) {
	appLogger := logger.NewLogger()

	// Base de datos
	dbConfig := database.NewPostgresConfigFromEnv()
	db, err := database.NewPostgresDB(dbConfig)
	if err != nil {
		return nil, err
	}

	// Autenticación
	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Repositorios
	userRepo := repository.NewUserRepository(db)
	resellerRepo := repository.NewResellerRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	deviceStatusRepo := repository.NewDeviceStatusRepository(db)
	consignmentRepo := repository.NewConsignmentRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	cashBoxRepo := repository.NewCashBoxRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	stockRequestRepo := repository.NewStockRequestRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Efectos secundarios post-commit
	chatAdminUserID := os.Getenv("CHAT_ADMIN_USER_ID")
	notifier := service.NewNotifier(auditRepo, chatRepo, notificationRepo, userRepo, chatAdminUserID, appLogger)

	// Servicios
	resellerService := service.NewResellerService(resellerRepo, userRepo, notifier, appLogger)
	ledgerService := service.NewLedgerService(ledgerRepo, resellerRepo, notifier, appLogger)
	deviceService := service.NewDeviceService(deviceRepo, deviceStatusRepo, notifier, appLogger)
	consignmentService := service.NewConsignmentService(consignmentRepo, deviceRepo, resellerRepo, notifier, appLogger)
	cashBoxService := service.NewCashBoxService(cashBoxRepo, notifier, appLogger)
	paymentService := service.NewPaymentService(paymentRepo, resellerRepo, cashBoxRepo, notifier, appLogger)

	// Cotización del dólar
	rateClient := dollarrate.NewClient(nil, os.Getenv("DOLLAR_RATE_URL"), time.Minute)

	// Controladores
	authController := controller.NewAuthController(userRepo, resellerRepo, jwtService, appLogger)
	resellerController := controller.NewResellerController(resellerService, ledgerService, appLogger)
	deviceController := controller.NewDeviceController(deviceService, appLogger)
	consignmentController := controller.NewConsignmentController(consignmentService, appLogger)
	paymentController := controller.NewPaymentController(paymentService, appLogger)
	cashBoxController := controller.NewCashBoxController(cashBoxService, appLogger)
	stockRequestController := controller.NewStockRequestController(stockRequestRepo, appLogger)
	chatController := controller.NewChatController(chatRepo, chatAdminUserID, appLogger)
	notificationController := controller.NewNotificationController(notificationRepo, appLogger)
	dollarRateController := controller.NewDollarRateController(rateClient, appLogger)

	// Router
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	route.RegisterAuthRoutes(api, authController, jwtService)
	route.RegisterResellerRoutes(api, resellerController, jwtService)
	route.RegisterDeviceRoutes(api, deviceController, jwtService)
	route.RegisterConsignmentRoutes(api, consignmentController, jwtService)
	route.RegisterPaymentRoutes(api, paymentController, jwtService)
	route.RegisterCashBoxRoutes(api, cashBoxController, jwtService)
	route.RegisterStockRequestRoutes(api, stockRequestController, jwtService)
	route.RegisterChatRoutes(api, chatController, jwtService)
	route.RegisterNotificationRoutes(api, notificationController, jwtService)
	route.RegisterDollarRateRoutes(api, dollarRateController, jwtService)

	return &App{
		router: router,
		db:     db,
		logger: appLogger,
	}, nil
}

// Start inicia el servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	a.logger.Info("iniciando servidor", "port", port)
	return a.router.Run(":" + port)
}

// Close libera los recursos de la aplicación
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
