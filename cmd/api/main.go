package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/yourusername/trivia-bank/internal/config"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	"github.com/yourusername/trivia-bank/internal/handler"
	"github.com/yourusername/trivia-bank/internal/middleware"
	pgRepo "github.com/yourusername/trivia-bank/internal/repository/postgres"
	redisRepo "github.com/yourusername/trivia-bank/internal/repository/redis"
	"github.com/yourusername/trivia-bank/internal/service"
	"github.com/yourusername/trivia-bank/internal/service/quizmanager"
	"github.com/yourusername/trivia-bank/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	isProduction := gin.Mode() == gin.ReleaseMode

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString(), !isProduction)
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db, cfg.Database.MigrationsPath); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis необязателен: без него кеш категорий и rate limiting отключены
	var redisClient redis.UniversalClient
	var cacheRepo repository.CacheRepository
	var counter middleware.Counter
	if cfg.Redis.Enabled {
		redisClient, err = database.NewUniversalRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Printf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		log.Println("Successfully connected to Redis")

		repo, err := redisRepo.NewCacheRepo(redisClient, cfg.Cache.Prefix)
		if err != nil {
			log.Printf("Failed to initialize CacheRepo: %v", err)
			os.Exit(1)
		}
		cacheRepo = repo
		if cfg.RateLimit.Enabled {
			counter = middleware.NewRedisCounter(redisClient)
		}
	} else {
		log.Println("Redis отключен: кеш категорий и rate limiting неактивны")
	}

	// Инициализируем репозитории
	questionRepo := pgRepo.NewQuestionRepo(db)
	categoryRepo := pgRepo.NewCategoryRepo(db)

	quizConfig := &quizmanager.Config{
		CategoriesCacheTTL: cfg.Cache.CategoriesTTL,
		MinDifficulty:      cfg.Quiz.MinDifficulty,
	}

	// Инициализируем сервисы
	categoryService := service.NewCategoryService(categoryRepo, cacheRepo, quizConfig)
	questionService := service.NewQuestionService(questionRepo, categoryService, quizmanager.NewQuestionSelector(), quizConfig)

	// Инициализируем роутер Gin
	router := handler.NewRouter(handler.Handlers{
		Question:    handler.NewQuestionHandler(questionService),
		Category:    handler.NewCategoryHandler(categoryService, questionService),
		Quiz:        handler.NewQuizHandler(questionService),
		RateLimiter: middleware.NewRateLimiter(counter),
		RateLimit: middleware.RateLimitConfig{
			MaxRequests: cfg.RateLimit.MaxRequests,
			Window:      cfg.RateLimit.Window,
			KeyPrefix:   cfg.Cache.Prefix + "rl:questions",
		},
	})

	// Настройка доверенных прокси для корректной работы c.ClientIP()
	// В production без явного списка не доверяем прокси-заголовкам
	trustedProxies := cfg.Server.TrustedProxies
	if len(trustedProxies) == 0 && !isProduction {
		trustedProxies = []string{"127.0.0.1", "::1"}
	}
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		log.Printf("Warning: failed to set trusted proxies: %v", err)
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
			cancel()
		}
	}()

	// Ждем SIGINT/SIGTERM или падения сервера
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case <-ctx.Done():
	}
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server exited properly")
}
