// @title Career Compass API
// @version 1.0
// @description Career guidance for students: catalogs, stream quiz, guided exploration and sessions.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize admin listing endpoints.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "career-compass/cmd/api/docs"
	"career-compass/internal/adapter"
	"career-compass/internal/cache"
	"career-compass/internal/catalog"
	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/domain"
	"career-compass/internal/handler"
	"career-compass/internal/logger"
	"career-compass/internal/middleware"
	"career-compass/internal/repository"
	"career-compass/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Content catalog
	contentCatalog, err := catalog.Load(cfg.Catalog.Dir)
	if err != nil {
		appLogger.Fatal("Failed to load content catalog", zap.Error(err))
	}
	catalogRepository := repository.NewCatalogRepository(contentCatalog)

	// Connect to database
	db, err := database.NewSQLXDB(cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	defer db.Close()
	if err := database.RunMigrations(db.DB, cfg.DB.Driver); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	sessionRepository := repository.NewSessionFileRepository(cfg.Storage.SessionsDir)
	feedbackRepository := repository.NewFeedbackRepository(db)

	healthChecks := map[string]handler.Pinger{"database": db}

	// Redis is optional; without it sessions are read straight from disk.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		healthChecks["cache"] = handler.PingerFunc(cacheAdapter.Ping)
		appLogger.Info("Session cache enabled", zap.String("address", cfg.Redis.Address), zap.Duration("ttl", cfg.CacheTTL.Session))
	} else {
		appLogger.Info("Redis address not set, session cache disabled")
	}

	// Initialize services
	sessionService := service.NewSessionService(sessionRepository, service.NewSessionCacheService(cacheAdapter, cfg.CacheTTL.Session))
	contentService := service.NewContentService(catalogRepository)
	quizService := service.NewQuizService(catalogRepository)
	exploreService := service.NewExploreService(catalogRepository, sessionService)
	feedbackService := service.NewFeedbackService(feedbackRepository)
	narrationService := service.NewNarrationService()

	var authService service.AuthService
	if cfg.Auth.Enabled {
		authService, err = service.NewAuthService(cfg.Auth)
		if err != nil {
			appLogger.Fatal("Failed to create AuthService", zap.Error(err))
		}
		appLogger.Info("Admin authentication enabled")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestid.New(middleware.RequestIDConfig()))
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, handler.Handlers{
		Content:   handler.NewContentHandler(contentService),
		Quiz:      handler.NewQuizHandler(quizService),
		Session:   handler.NewSessionHandler(sessionService),
		Explore:   handler.NewExploreHandler(exploreService),
		Feedback:  handler.NewFeedbackHandler(feedbackService),
		Narration: handler.NewNarrationHandler(narrationService),
		Health:    handler.NewHealthHandler(healthChecks),
	}, authService)

	// Start server
	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Env),
			zap.String("sessions_dir", cfg.Storage.SessionsDir))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
