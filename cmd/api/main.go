package main

// @title Place Microservice API
// @version 1.0.0
// @description Сервис обмена геоточками. Аутентифицированные пользователи добавляют места с тегами и фотографиями, клиенты запрашивают места по идентификатору и ищут их по радиусу (haversine, километры).

// @contact.name API Support
// @contact.email support@place-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey api_key
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/place-microservice/docs/swagger"
	"github.com/place-microservice/internal/config"
	httpDelivery "github.com/place-microservice/internal/delivery/http"
	"github.com/place-microservice/internal/delivery/http/handler"
	"github.com/place-microservice/internal/domain/repository"
	"github.com/place-microservice/internal/infrastructure/users"
	"github.com/place-microservice/internal/pkg/logger"
	"github.com/place-microservice/internal/repository/cache"
	"github.com/place-microservice/internal/repository/sqlite"
	"github.com/place-microservice/internal/storage"
	"github.com/place-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Place Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("db_path", cfg.Database.Path),
	)

	// 3. Open SQLite (schema is created on first use)
	db, err := sqlite.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to open SQLite database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close SQLite database", zap.Error(err))
		}
	}()

	// 4. Photo storage root
	photoStore, err := storage.NewPhotoStore(cfg.Photos.Root, log)
	if err != nil {
		log.Fatal("Failed to initialize photo storage", zap.Error(err))
	}
	log.Info("Photo storage ready", zap.String("root", cfg.Photos.Root))

	// 5. Redis is optional: без него работаем просто без кеша профилей
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Redis.Host != "" {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		cacheRepo = cache.NewCacheRepository(redisClient)
	} else {
		log.Warn("Redis host not configured, profile cache disabled")
	}

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("SQLite health check failed", zap.Error(err))
	}
	if redisClient != nil {
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
	}

	log.Info("All connections healthy")

	// 7. Initialize Repositories
	placeRepo := sqlite.NewPlaceRepository(db)

	// Сервис пользователей внешний: без настроенного адреса ответы
	// отдаются без профиля автора
	var userRepo repository.UserRepository
	if cfg.Users.BaseURL != "" {
		userRepo = users.NewClient(&cfg.Users, log)
	} else {
		log.Warn("Users API not configured, author enrichment disabled")
	}

	log.Info("Repositories initialized")

	// 8. Initialize Use Cases
	placeUC := usecase.NewPlaceUseCase(
		placeRepo,
		userRepo,
		cacheRepo,
		photoStore,
		log,
		cfg.Cache.ProfileCacheTTL,
	)

	statsUC := usecase.NewStatsUseCase(placeRepo, log)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP Handlers
	placeHandler := handler.NewPlaceHandler(placeUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		placeHandler,
		statsHandler,
	)

	log.Info("HTTP server initialized")

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
