package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// App holds application configuration.
type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

// Logger holds logger configuration.
type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// Database holds database configuration.
type Database struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	DBName          string `mapstructure:"name"`
	SSLMode         string `mapstructure:"ssl_mode"`
	TimeZone        string `mapstructure:"time_zone"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime string `mapstructure:"conn_max_lifetime"`
	LogLevel        string `mapstructure:"log_level"`
}

// Redis holds Redis configuration.
type Redis struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	PoolSize     int    `mapstructure:"pool_size"`
	StreamMaxLen int64  `mapstructure:"stream_max_len"`
}

// API holds API server configuration.
type API struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// MarketData holds the configuration of the upstream price feed.
type MarketData struct {
	BaseURL             string        `mapstructure:"base_url"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	Timeout             time.Duration `mapstructure:"timeout"`
	PriceCacheTTL       time.Duration `mapstructure:"price_cache_ttl"`
	HistoryLookbackDays int           `mapstructure:"history_lookback_days"`
}

// Evaluator holds the configuration of the external plan evaluation service.
type Evaluator struct {
	BaseURL             string        `mapstructure:"base_url"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	Timeout             time.Duration `mapstructure:"timeout"`
}

// TradePlan holds defaults applied when a plan is created without explicit risk settings.
type TradePlan struct {
	DefaultStopLossPct   float64 `mapstructure:"default_stop_loss_pct"`
	DefaultTakeProfitPct float64 `mapstructure:"default_take_profit_pct"`
}

// SectorRotation holds the thresholds used to flag high and low sectors.
type SectorRotation struct {
	Period         string  `mapstructure:"period"`
	HighThreshold  float64 `mapstructure:"high_threshold"`
	LowThreshold   float64 `mapstructure:"low_threshold"`
	MaxSuggestions int     `mapstructure:"max_suggestions"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("market_data.max_request_per_minute", 120)
	v.SetDefault("market_data.timeout", "10s")
	v.SetDefault("market_data.price_cache_ttl", "30s")
	v.SetDefault("market_data.history_lookback_days", 120)
	v.SetDefault("evaluator.max_request_per_minute", 60)
	v.SetDefault("evaluator.timeout", "15s")
	v.SetDefault("trade_plan.default_stop_loss_pct", -10)
	v.SetDefault("trade_plan.default_take_profit_pct", 30)
	v.SetDefault("sector_rotation.period", "60d")
	v.SetDefault("sector_rotation.high_threshold", 20)
	v.SetDefault("sector_rotation.low_threshold", -10)
	v.SetDefault("sector_rotation.max_suggestions", 5)
}

// Load loads configuration from a file into the given config struct.
func Load(path string, config interface{}) error {
	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		log.Println("Failed to read config file, falling back to defaults and environment variables")
	}

	return v.Unmarshal(config)
}
