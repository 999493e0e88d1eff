package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang-trade-pilot/internal/alert/config"
	alertservice "golang-trade-pilot/internal/alert/service"
	"golang-trade-pilot/internal/repository"
	"golang-trade-pilot/internal/service"
	"golang-trade-pilot/pkg/logger"
	"golang-trade-pilot/pkg/postgres"
	"golang-trade-pilot/pkg/redis"
	"golang-trade-pilot/pkg/telegram"

	"github.com/spf13/cobra"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the plan alert worker",
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

	appLogger.Info("Starting Alert Service", logger.Field("name", cfg.App.Name), logger.Field("env", cfg.App.Env))

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
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

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

	notifier, err := telegram.NewNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
	}

	// Repositories
	tradePlanRepo := repository.NewTradePlanRepository(db.DB)
	lastPriceRepo := repository.NewLastPriceRepository(redisClient.Client)
	alertStateRepo := repository.NewAlertStateRepository(redisClient.Client, cfg.Redis.StreamMaxLen)
	marketDataRepo := repository.NewMarketDataRepository(cfg.MarketData, lastPriceRepo, appLogger)
	evaluatorRepo := repository.NewEvaluatorRepository(cfg.Evaluator, appLogger)

	// Services
	tradePlanSvc := service.NewTradePlanService(cfg.TradePlan, appLogger, tradePlanRepo, evaluatorRepo)
	monitorSvc := service.NewMonitorService(appLogger, tradePlanSvc, marketDataRepo, evaluatorRepo)
	alertSvc := alertservice.NewAlertService(cfg.Alert, appLogger, monitorSvc, alertStateRepo, notifier)

	if err := alertSvc.Start(ctx); err != nil {
		appLogger.Fatal("Failed to start alert scheduler", logger.ErrorField(err))
	}

	<-ctx.Done()

	appLogger.Info("Shutting down alert service...")
	alertSvc.Stop()
	appLogger.Info("Alert service exiting")
}

func main() {
	rootCmd := &cobra.Command{Use: "alert-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-alert.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing alert-service CLI: %s\n", err)
		os.Exit(1)
	}
}
