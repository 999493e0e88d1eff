package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-trade-pilot/internal/api/config"
	delivery "golang-trade-pilot/internal/api/delivery/http"
	_ "golang-trade-pilot/internal/api/docs"
	"golang-trade-pilot/internal/repository"
	"golang-trade-pilot/internal/service"
	"golang-trade-pilot/pkg/logger"
	"golang-trade-pilot/pkg/postgres"
	"golang-trade-pilot/pkg/redis"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the trade pilot API",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting API Service", logger.Field("name", cfg.App.Name), logger.Field("env", cfg.App.Env))

	db, err := postgres.NewDB(postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	sqlDB, err := db.DB.DB()
	if err != nil {
		appLogger.Fatal("Failed to get database handle", logger.ErrorField(err))
	}
	defer sqlDB.Close()

	redisClient, err := redis.NewClient(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Repositories
	positionRepo := repository.NewPositionRepository(db.DB)
	tradeRepo := repository.NewTradeRepository(db.DB)
	tradePlanRepo := repository.NewTradePlanRepository(db.DB)
	lastPriceRepo := repository.NewLastPriceRepository(redisClient.Client)
	marketDataRepo := repository.NewMarketDataRepository(cfg.MarketData, lastPriceRepo, appLogger)
	evaluatorRepo := repository.NewEvaluatorRepository(cfg.Evaluator, appLogger)

	// Services
	portfolioSvc := service.NewPortfolioService(appLogger, positionRepo, tradeRepo, marketDataRepo)
	tradePlanSvc := service.NewTradePlanService(cfg.TradePlan, appLogger, tradePlanRepo, evaluatorRepo)
	monitorSvc := service.NewMonitorService(appLogger, tradePlanSvc, marketDataRepo, evaluatorRepo)
	sectorSvc := service.NewSectorService(cfg.SectorRotation, appLogger, marketDataRepo)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(delivery.RequestID())
	e.Use(delivery.AccessLog(appLogger))

	apiV1 := e.Group("/api/v1")
	delivery.NewPortfolioHandler(portfolioSvc, appLogger).RegisterRoutes(apiV1.Group("/portfolio"))
	delivery.NewTradePlanHandler(tradePlanSvc, monitorSvc, appLogger).RegisterRoutes(apiV1.Group("/trade-plans"))
	delivery.NewSectorHandler(sectorSvc, appLogger).RegisterRoutes(apiV1.Group("/sectors"))
	delivery.NewMarketHandler(marketDataRepo, appLogger).RegisterRoutes(apiV1.Group("/market"))
	delivery.NewHealthHandler(map[string]delivery.HealthCheck{
		"database": sqlDB.PingContext,
		"redis":    func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	}).RegisterRoutes(e)

	e.GET("/swagger/*", swagger.WrapHandler)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Trade Pilot API
// @version 1.0
// @description Trade plan lifecycle, portfolio ledger and sector rotation.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "api-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-api.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing api-service CLI: %s\n", err)
		os.Exit(1)
	}
}
