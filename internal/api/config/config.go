package config

import (
	"golang-trade-pilot/pkg/config"
)

// Config holds the full configuration for the API service.
type Config struct {
	App            config.App            `mapstructure:"app"`
	Logger         config.Logger         `mapstructure:"logger"`
	Database       config.Database       `mapstructure:"database"`
	Redis          config.Redis          `mapstructure:"redis"`
	API            config.API            `mapstructure:"api"`
	MarketData     config.MarketData     `mapstructure:"market_data"`
	Evaluator      config.Evaluator      `mapstructure:"evaluator"`
	TradePlan      config.TradePlan      `mapstructure:"trade_plan"`
	SectorRotation config.SectorRotation `mapstructure:"sector_rotation"`
}

// Load loads the API configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
