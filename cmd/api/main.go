// @title CS Quiz Daily Set API
// @version 1.0
// @description Serves the daily question set shared by every user of the CS quiz app, with its questions in Korean or English.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "cs-quiz/cmd/api/docs"
	"cs-quiz/internal/adapter"
	"cs-quiz/internal/cache"
	"cs-quiz/internal/config"
	"cs-quiz/internal/database"
	"cs-quiz/internal/domain"
	"cs-quiz/internal/handler"
	"cs-quiz/internal/logger"
	"cs-quiz/internal/middleware"
	"cs-quiz/internal/repository"
	"cs-quiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

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

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	poolRepository := repository.NewQuestionPoolDatabaseAdapter(db)
	dailySetRepository := repository.NewDailySetDatabaseAdapter(db)
	questionContentRepository := repository.NewQuestionContentDatabaseAdapter(db)

	// The cache is optional; without Redis every read goes to Oracle.
	var cacheAdapter domain.Cache
	healthComponents := map[string]handler.Pinger{"database": handler.PingFunc(db.PingContext)}
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Warn("Redis unavailable, serving daily sets without cache", zap.Error(err))
	} else {
		defer redisClient.Close()
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
		healthComponents["cache"] = cacheAdapter
		appLogger.Info("RedisCacheAdapter initialized")
	}
	dailySetCache := service.NewDailySetCacheService(cacheAdapter, cfg.DailySet.CacheTTL)

	dailySetService, err := service.NewDailySetService(poolRepository, dailySetRepository, dailySetCache, cfg)
	if err != nil {
		appLogger.Fatal("Failed to create DailySetService", zap.Error(err))
	}
	appLogger.Info("DailySetService initialized",
		zap.String("timezone", cfg.DailySet.Timezone),
		zap.String("strategy", cfg.DailySet.Strategy),
		zap.Int("question_count", cfg.DailySet.QuestionCount),
		zap.Int("max_per_topic", cfg.DailySet.MaxPerTopic),
	)

	dailyQuestionsService := service.NewDailyQuestionsService(dailySetService, questionContentRepository)

	dailySetHandler := handler.NewDailySetHandler(dailySetService, dailyQuestionsService)
	healthHandler := handler.NewHealthHandler(healthComponents)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	handler.RegisterRoutes(app, dailySetHandler, healthHandler)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
