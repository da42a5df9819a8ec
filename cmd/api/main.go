package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"maintdesk/internal/config"
	"maintdesk/internal/database"
	"maintdesk/internal/middleware"
	"maintdesk/internal/modules/auth"
	"maintdesk/internal/modules/maintenance"
	"maintdesk/internal/modules/notification"
	"maintdesk/internal/modules/settings"
	"maintdesk/internal/modules/user"
	"maintdesk/internal/modules/workorder"
	"maintdesk/internal/pkg/identity"
	jwtsvc "maintdesk/internal/pkg/jwt"
	"maintdesk/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	costRepo := repository.NewCostEntryRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)
	exchanger := identity.NewHTTPExchanger(cfg.IdentityExchangeURL, cfg.ExchangeTimeout)

	hub := notification.NewHub()
	defer hub.Close()
	notificationService := notification.NewService(notificationRepo, hub)
	notificationHandler := notification.NewHandler(notificationService)

	authService := auth.NewService(userRepo, sessionRepo, j, exchanger, cfg.SessionTTL)
	authHandler := auth.NewHandler(authService, cfg.SessionTTL)

	workOrderService := workorder.NewService(workOrderRepo, commentRepo, costRepo, userRepo, notificationService)
	workOrderHandler := workorder.NewHandler(workOrderService)

	maintenanceService := maintenance.NewService(maintenanceRepo, userRepo, notificationService)
	maintenanceHandler := maintenance.NewHandler(maintenanceService)

	settingsService := settings.NewService(settingsRepo)
	settingsHandler := settings.NewHandler(settingsService)

	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.ErrorLogger())

	api := r.Group("/api")
	{
		authHandler.RegisterPublicRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.Authenticate(authService))
		{
			authHandler.RegisterProtectedRoutes(protected)
			workOrderHandler.RegisterRoutes(protected)
			maintenanceHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			settingsHandler.RegisterRoutes(protected)
			userHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
