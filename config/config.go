package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Customer support specifics
	Conversation   ConversationConfig
	Routing        RoutingConfig
	Refund         RefundConfig
	TransactionLog TransactionLogConfig
	Knowledge      KnowledgeConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// ConversationConfig bounds the session store.
type ConversationConfig struct {
	MaxHistory  int
	MaxSessions int
	SessionTTL  time.Duration
}

type RoutingConfig struct {
	MinScore float64
}

type RefundConfig struct {
	WindowDays    int
	ProcessingFee float64
	FeeThreshold  float64
}

type TransactionLogConfig struct {
	DSN string
}

// KnowledgeConfig points at an optional YAML knowledge base; empty uses the embedded one.
type KnowledgeConfig struct {
	Path string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")

	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// Conversation
	cfg.Conversation.MaxHistory = v.GetInt("conversation.max_history")
	cfg.Conversation.MaxSessions = v.GetInt("conversation.max_sessions")
	cfg.Conversation.SessionTTL = v.GetDuration("conversation.session_ttl")

	// Routing & refunds
	cfg.Routing.MinScore = v.GetFloat64("routing.min_score")
	cfg.Refund.WindowDays = v.GetInt("refund.window_days")
	cfg.Refund.ProcessingFee = v.GetFloat64("refund.processing_fee")
	cfg.Refund.FeeThreshold = v.GetFloat64("refund.fee_threshold")

	// Storage
	cfg.TransactionLog.DSN = v.GetString("transaction_log.dsn")
	cfg.Knowledge.Path = v.GetString("knowledge.path")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Conversation.MaxHistory <= 0 {
		return fmt.Errorf("conversation.max_history must be positive, got %d", c.Conversation.MaxHistory)
	}
	if c.Routing.MinScore < 0 || c.Routing.MinScore >= 1 {
		return fmt.Errorf("routing.min_score must be in [0,1), got %v", c.Routing.MinScore)
	}
	if c.Refund.WindowDays < 0 {
		return fmt.Errorf("refund.window_days must not be negative, got %d", c.Refund.WindowDays)
	}
	if c.Refund.ProcessingFee < 0 {
		return fmt.Errorf("refund.processing_fee must not be negative, got %v", c.Refund.ProcessingFee)
	}
	if c.TransactionLog.DSN == "" {
		return fmt.Errorf("transaction_log.dsn is required")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 60)

	// Conversation defaults
	v.SetDefault("conversation.max_history", 10)
	v.SetDefault("conversation.max_sessions", 10000)
	v.SetDefault("conversation.session_ttl", "30m")

	v.SetDefault("routing.min_score", 0.1)
	v.SetDefault("refund.window_days", 30)
	v.SetDefault("refund.processing_fee", 2.99)
	v.SetDefault("refund.fee_threshold", 50.0)
	v.SetDefault("transaction_log.dsn", "file:transactions.db")
	v.SetDefault("knowledge.path", "")
}
