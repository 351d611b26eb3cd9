package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dialogs_backend/database"
	"dialogs_backend/internal/config"
	"dialogs_backend/internal/handlers"
	"dialogs_backend/internal/logger"
	"dialogs_backend/internal/middleware"
	"dialogs_backend/internal/repositories"
	repoChat "dialogs_backend/internal/repositories/chat"
	"dialogs_backend/internal/routes"
	"dialogs_backend/internal/services"
	svcChat "dialogs_backend/internal/services/chat"
	"dialogs_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает репозитории, сервисы и хендлеры в готовый gin.Engine.
// Вынесен отдельно, чтобы тесты могли поднять роутер поверх своей БД.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Репозитории
	userRepo := repositories.NewUserRepository(gormDB)
	uploadRepo := repositories.NewUploadRepository(gormDB)
	dialogRepo := repoChat.NewDialogRepository(gormDB)
	messageRepo := repoChat.NewMessageRepository(gormDB)

	// Сервисы
	userService := services.NewUserService(userRepo)
	authService := services.NewAuthService(userRepo)
	attachmentService := svcChat.NewAttachmentService(uploadRepo)
	dialogService := svcChat.NewDialogService(dialogRepo)
	messageService := svcChat.NewMessageService(messageRepo, dialogRepo, attachmentService)

	// Хендлеры
	baseHandler := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, authService),
		UserHandler: handlers.NewUserHandler(baseHandler, userService),
		ChatHandler: handlers.NewChatHandler(baseHandler, dialogService, messageService, userService),
	}

	ginRouter := gin.New()
	ginRouter.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		gin.Recovery(),
	)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}
