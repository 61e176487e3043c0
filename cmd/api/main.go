package main

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"repairdesk/internal/domain/policy"
	"repairdesk/internal/domain/sqlite"
	"repairdesk/internal/domain/sqlite/repository"
	handler2 "repairdesk/internal/http/handler"
	authmw "repairdesk/internal/http/middleware"
	"repairdesk/internal/service"
	"repairdesk/internal/utils"
)

func main() {
	// Loads from .env outside production
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load(); err != nil {
			log.Warnf("no .env file loaded: %v", err)
		}
	}

	validate := validator.New()

	// Init SQLite
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "database.db"
	}
	db, err := sqlite.Init(dbPath)
	if err != nil {
		panic(err)
	}

	cipher, err := utils.NewFieldCipher(os.Getenv("CPT_SECRET"))
	if err != nil {
		panic(err)
	}

	rolePolicy := policy.NewRolePolicy()
	userRepo := repository.NewUserRepository(db)

	// Getting services
	authService := service.NewAuthService(db, validate)
	orderService := service.NewOrderService(db, validate, cipher)
	statusService := service.NewStatusService(db, validate)
	workflowService := service.NewWorkflowService(db, validate, cipher)

	// Getting handlers
	authRoutes := handler2.NewAuthDefault(authService)
	orderRoutes := handler2.NewOrderDefault(orderService)
	statusRoutes := handler2.NewStatusDefault(statusService)
	workflowRoutes := handler2.NewWorkflowDefault(workflowService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	requireAuth := authmw.NewAuthMiddleware(&authmw.AuthMiddlewareConfig{
		UserRepo:   userRepo,
		RolePolicy: rolePolicy,
	})

	// Authentication
	e.POST("/api/v1/auth/login", authRoutes.Login)

	// Service orders
	e.POST("/api/v1/orders", orderRoutes.CreateOrder, requireAuth)
	e.PUT("/api/v1/orders/:id", orderRoutes.UpdateOrder, requireAuth)
	e.PUT("/api/v1/orders/:id/state", orderRoutes.ToggleOrder, requireAuth)
	e.GET("/api/v1/orders/pending", orderRoutes.PendingOrders, requireAuth)

	// Status workflow
	e.POST("/api/v1/change", workflowRoutes.AdvanceOrder, requireAuth)
	e.PUT("/api/v1/change/finish/:serviceOrder", workflowRoutes.FinishOrder, requireAuth)
	e.GET("/api/v1/change/status", workflowRoutes.OrdersByStage, requireAuth)
	e.GET("/api/v1/change/history/:serviceOrder", workflowRoutes.OrderHistory, requireAuth)

	// Stage registry
	e.POST("/api/v1/status", statusRoutes.CreateStatus, requireAuth)
	e.GET("/api/v1/status", statusRoutes.ListStatuses, requireAuth)
	e.PUT("/api/v1/status/:id/state", statusRoutes.ToggleStatus, requireAuth)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	port := os.Getenv("PORT")
	if port == "" {
		port = "7070"
	}
	if err := e.Start(":" + port); err != nil {
		panic(err)
	}
}

func healthCheckRoute(c echo.Context) error {
	return c.String(200, "OK")
}
