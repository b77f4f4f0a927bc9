package app

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"collabmate_backend/internal/auth"
	"collabmate_backend/internal/config"
	"collabmate_backend/internal/email"
	"collabmate_backend/internal/handlers"
	"collabmate_backend/internal/identity"
	"collabmate_backend/internal/logger"
	"collabmate_backend/internal/middleware"
	"collabmate_backend/internal/models"
	"collabmate_backend/internal/routes"
	"collabmate_backend/internal/services"
	"collabmate_backend/internal/storage"
	"collabmate_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	router := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	verifier, err := identity.NewGoogleVerifier(ctx, cfg.Google.ClientID)
	if err != nil {
		logger.Fatal("Failed to initialize Google token verifier", "error", err)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	mailer := buildMailer(cfg)
	customValidator := validator.New()

	serviceContainer := services.NewServiceContainer(services.Dependencies{
		Verifier:  verifier,
		Tokens:    tokens,
		Storage:   storageInstance,
		Mailer:    mailer,
		Validator: customValidator,
		Limits: services.UploadLimits{
			MaxSize:      cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
		},
	})
	appHandlers := handlers.NewAppHandlers(serviceContainer, customValidator)

	router := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(router, appHandlers, tokens)

	if cfg.Storage.Type == "local" {
		router.Static("/files", cfg.Storage.BasePath)
	}
	return router
}

func buildMailer(cfg *config.Config) email.Provider {
	if !cfg.Email.Enabled {
		logger.Info("Email notifications disabled")
		return email.NoopProvider{}
	}

	provider, err := email.NewSMTPProvider(&email.SMTPConfig{
		Host:     cfg.Email.SMTPHost,
		Port:     cfg.Email.SMTPPort,
		Username: cfg.Email.SMTPUsername,
		Password: cfg.Email.SMTPPassword,
		From:     cfg.Email.FromEmail,
		FromName: cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("Falling back to no-op email provider", "error", err)
		return email.NoopProvider{}
	}
	return provider
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}

func migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults on the models need the extension.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Project{},
		&models.CollaborationRequest{},
		&models.Swipe{},
		&models.Bookmark{},
	)
}
