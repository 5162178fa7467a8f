// @title           Car Market Moderation API
// @version         1.0.0
// @description     Moderation gateway for car price listings: intake from the Telegram bot, review, channel publishing and photo proxying.

// @host      localhost:3001
// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the API key.

package main

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "car-market-backend/docs"
	"car-market-backend/internal/auth"
	"car-market-backend/internal/config"
	"car-market-backend/internal/database"
	"car-market-backend/internal/handlers"
	"car-market-backend/internal/middleware"
	"car-market-backend/internal/store"
	"car-market-backend/internal/telegram"
)

func main() {
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Run migrations before taking traffic
	migrator, err := database.NewMigrator(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize migrator")
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		log.Fatal().Err(err).Msg("migration failed")
	}
	migrator.Close()

	submissionStore, err := store.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer submissionStore.Close()

	telegramClient := telegram.NewClient(cfg.TelegramAPIBaseURL, cfg.TelegramBotToken)
	publisher := telegram.NewPublisher(telegramClient, cfg.ChannelChatID)

	// The static shared key is the default; a JWT secret upgrades intake
	// auth without touching the handlers.
	var authenticator auth.Authenticator = auth.NewStaticToken(cfg.WebAPIKey)
	if cfg.IntakeJWTSecret != "" {
		authenticator = auth.NewJWT(cfg.IntakeJWTSecret)
	}

	submissionsHandler := handlers.NewSubmissionsHandler(submissionStore)
	moderationHandler := handlers.NewModerationHandler(submissionStore, publisher, log)
	photosHandler := handlers.NewPhotosHandler(telegramClient)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(log))
	router.Use(cors.Default())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")

	api.POST("/submissions", middleware.AuthMiddleware(authenticator), submissionsHandler.Create)
	api.GET("/submissions", submissionsHandler.List)
	api.POST("/submissions/:id/approve", moderationHandler.Approve)
	api.POST("/submissions/:id/reject", moderationHandler.Reject)
	api.GET("/photo/:file_id", photosHandler.Get)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
