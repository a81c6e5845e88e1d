package main

import (
	"log"

	"github.com/askboard/backend/internal/cache"
	"github.com/askboard/backend/internal/config"
	"github.com/askboard/backend/internal/database"
	"github.com/askboard/backend/internal/handler"
	"github.com/askboard/backend/internal/middleware"
	"github.com/askboard/backend/internal/repository"
	"github.com/askboard/backend/internal/service"
	"github.com/askboard/backend/pkg/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	log.Println("Config loaded successfully")

	isProduction := cfg.Environment == "production"
	if err := logger.Init(!isProduction); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	database.Connect(cfg)
	database.Migrate()

	// Question cache is optional; without Redis every listing reads the database
	var questionCache cache.QuestionCache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedisQuestionCache(cfg.RedisURL, cfg.QuestionCacheTTL)
		if err != nil {
			log.Fatalf("Failed to initialize Redis cache: %v", err)
		}
		defer redisCache.Close()
		questionCache = redisCache
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	sessionRepo := repository.NewSessionRepository(database.DB)
	questionRepo := repository.NewQuestionRepository(database.DB)
	answerRepo := repository.NewAnswerRepository(database.DB)

	// Initialize services
	authService := service.NewAuthService(database.DB, userRepo, sessionRepo, cfg.TokenSecret, cfg.SessionTTL)
	userService := service.NewUserService(userRepo, authService)
	questionService := service.NewQuestionService(database.DB, questionRepo, userRepo, authService, questionCache)
	answerService := service.NewAnswerService(database.DB, answerRepo, questionRepo, authService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	questionHandler := handler.NewQuestionHandler(questionService)
	answerHandler := handler.NewAnswerHandler(answerService)

	// Setup Gin router
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.HSTSMiddleware(isProduction))

	handler.RegisterRoutes(router, authHandler, userHandler, questionHandler, answerHandler)

	// Start server
	log.Printf("Server starting on %s", cfg.ServerPort)
	if err := router.Run(cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
