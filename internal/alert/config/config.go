package config

import (
	"time"

	"golang-trade-pilot/pkg/config"
)

// Alert holds the schedule and dedup settings of the plan alert worker.
type Alert struct {
	Schedule               string        `mapstructure:"schedule"`
	TimeZone               string        `mapstructure:"time_zone"`
	RunTimeout             time.Duration `mapstructure:"run_timeout"`
	ResendThresholdPercent float64       `mapstructure:"resend_threshold_percent"`
	CacheDuration          time.Duration `mapstructure:"cache_duration"`
	RunOnStart             bool          `mapstructure:"run_on_start"`
}

// Config holds the full configuration for the alert service.
type Config struct {
	App        config.App        `mapstructure:"app"`
	Logger     config.Logger     `mapstructure:"logger"`
	Database   config.Database   `mapstructure:"database"`
	Redis      config.Redis      `mapstructure:"redis"`
	MarketData config.MarketData `mapstructure:"market_data"`
	Evaluator  config.Evaluator  `mapstructure:"evaluator"`
	TradePlan  config.TradePlan  `mapstructure:"trade_plan"`
	Telegram   config.Telegram   `mapstructure:"telegram"`
	Alert      Alert             `mapstructure:"alert"`
}

// Load loads the alert service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.Alert.Schedule == "" {
		cfg.Alert.Schedule = "*/5 9-15 * * 1-5"
	}
	if cfg.Alert.TimeZone == "" {
		cfg.Alert.TimeZone = "Asia/Shanghai"
	}
	if cfg.Alert.RunTimeout <= 0 {
		cfg.Alert.RunTimeout = 2 * time.Minute
	}
	if cfg.Alert.ResendThresholdPercent <= 0 {
		cfg.Alert.ResendThresholdPercent = 2
	}
	if cfg.Alert.CacheDuration <= 0 {
		cfg.Alert.CacheDuration = 24 * time.Hour
	}
	return &cfg, nil
}
