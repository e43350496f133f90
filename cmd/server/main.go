package main

import (
	"context"
	"flag"
	"log"
	"strconv"
	"time"

	"startupmentor/config"
	"startupmentor/controllers"
	"startupmentor/middlewares"
	"startupmentor/routes"
	"startupmentor/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "./config/config.yml", "path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	client, err := newCompletionClient(cfg)
	if err != nil {
		logger.Fatal("Failed to create completion client", zap.Error(err))
	}

	evaluator := services.NewEvaluator(client,
		time.Duration(cfg.Openai.TimeoutSeconds)*time.Second, logger)

	router := setupRouter(cfg, evaluator, logger)
	port := strconv.Itoa(cfg.Server.Port)
	logger.Info("Server starting",
		zap.String("port", port),
		zap.String("provider", cfg.Provider))

	if err := router.Run(":" + port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// newCompletionClient constructs the backend selected by the config.
func newCompletionClient(cfg *config.Config) (services.CompletionClient, error) {
	if cfg.Provider == "gemini" {
		return services.NewGeminiClient(context.Background(), cfg.Gemini.ApiKey, cfg.Gemini.Model)
	}
	return services.NewOpenAIClient(cfg.Openai.ApiKey, cfg.Openai.Model, cfg.Openai.BaseUrl), nil
}

func setupRouter(cfg *config.Config, evaluator *services.Evaluator, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.RequestLogger(logger))

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	origins := cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.GET("/health", controllers.HealthCheck)

	api := router.Group("/api")
	routes.SetupIdeaRoutes(api, controllers.NewIdeaController(evaluator))

	return router
}
