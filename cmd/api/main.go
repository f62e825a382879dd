// @title BezBot API
// @version 1.0
// @description Backend for the occupational safety training assistant.
// @host localhost:8021
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"bezbot/internal/adapter"
	"bezbot/internal/adapter/completion"
	"bezbot/internal/adapter/knowledge"
	"bezbot/internal/adapter/speech"
	"bezbot/internal/cache"
	"bezbot/internal/config"
	"bezbot/internal/database"
	"bezbot/internal/domain"
	"bezbot/internal/handler"
	"bezbot/internal/logger"
	"bezbot/internal/middleware"
	"bezbot/internal/repository"
	"bezbot/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Initialize completion backend
	var completionService domain.CompletionService
	switch cfg.LLM.Source {
	case "http":
		appLogger.Info("Initializing HTTP completion service",
			zap.String("base_url", cfg.LLM.HTTP.BaseURL), zap.String("model", cfg.LLM.HTTP.Model))
		httpClient := &http.Client{Timeout: cfg.LLM.Timeout}
		completionService, err = completion.NewHTTPCompletionService(cfg.LLM.HTTP.BaseURL, cfg.LLM.HTTP.Model, httpClient, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to create HTTP completion service", zap.Error(err))
		}
	case "ollama":
		appLogger.Info("Initializing Ollama completion service",
			zap.String("server_url", cfg.LLM.Ollama.ServerURL), zap.String("model", cfg.LLM.Ollama.Model))
		ollamaClient := &http.Client{Timeout: cfg.LLM.Timeout}
		completionService, err = completion.NewOllamaCompletionService(cfg.LLM.Ollama.ServerURL, cfg.LLM.Ollama.Model, ollamaClient)
		if err != nil {
			appLogger.Fatal("Failed to create Ollama completion service", zap.Error(err))
		}
	default:
		appLogger.Fatal(fmt.Sprintf("Unsupported LLM source: %s. Please check LLM_SOURCE in config.", cfg.LLM.Source))
	}

	// Connect to database
	db, err := database.NewSQLXMySQLDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize repositories
	userRepository := repository.NewSQLXUserRepository(db)
	attemptRepository := repository.NewSQLXAttemptRepository(db)
	analyticsRepository := repository.NewSQLXAnalyticsRepository(db)

	// Initialize Redis client
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize knowledge base and speech adapters
	contextProvider := knowledge.NewFileContextProvider(cfg.Knowledge)
	transcriber, err := speech.NewTranscriber(cfg.Speech, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create transcriber", zap.Error(err))
	}

	// Initialize services
	answerService := service.NewAnswerService(completionService, contextProvider, cacheAdapter, cfg)
	generationService := service.NewGenerationService(completionService, cfg.LLM)
	userService := service.NewUserService(userRepository, attemptRepository, analyticsRepository)

	// Initialize handlers
	answerHandler := handler.NewAnswerHandler(answerService)
	generationHandler := handler.NewGenerationHandler(generationService, contextProvider)
	speechHandler := handler.NewSpeechHandler(transcriber)
	userHandler := handler.NewUserHandler(userService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	// Assistant routes
	app.Post("/get_answer", answerHandler.GetAnswer)
	app.Post("/get_quiz", generationHandler.GetQuiz)
	app.Post("/get_scenario", generationHandler.GetScenario)
	app.Post("/speech_to_text", speechHandler.SpeechToText)

	// User and attempt routes
	app.Post("/users", userHandler.CreateUser)
	app.Get("/users", userHandler.ListUsers)
	app.Get("/users/:id", userHandler.GetUser)
	app.Get("/users/:id/stats", userHandler.GetUserStats)
	app.Post("/tests", userHandler.CreateTestAttempt)
	app.Get("/tests/:id", userHandler.GetTestAttempt)
	app.Post("/scenarios", userHandler.CreateScenarioAttempt)
	app.Get("/scenarios/:id", userHandler.GetScenarioAttempt)
	app.Get("/stats", userHandler.GetGlobalStats)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
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
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
