// Package config содержит конфигурацию и загрузчик настроек.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config содержит конфигурацию приложения
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Cache     CacheConfig     `yaml:"cache"`
	Retry     RetryConfig     `yaml:"retry"`
	Auth      AuthConfig      `yaml:"auth"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"`
}

// DatabaseConfig содержит настройки подключения к БД
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// KafkaConfig содержит настройки Kafka
type KafkaConfig struct {
	Brokers    []string `yaml:"brokers"`
	OrderTopic string   `yaml:"order_topic"`
	ChatTopic  string   `yaml:"chat_topic"`
	GroupID    string   `yaml:"group_id"`
}

// CacheConfig содержит настройки кеша выдачи списка продавцов.
type CacheConfig struct {
	TTL             time.Duration `yaml:"ttl"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
	MaxItems        int           `yaml:"max_items"`
}

// RetryPolicyConfig описывает одну политику повторов: пауза и число попыток.
type RetryPolicyConfig struct {
	Wait        time.Duration `yaml:"wait"`
	MaxAttempts int           `yaml:"max_attempts"`
}

// RetryConfig содержит обе именованные политики повторов.
// Исходная система использовала 2s×3 на выдаче продавцов и 2s×5 на
// остальных чтениях; обе сохранены.
type RetryConfig struct {
	Listing RetryPolicyConfig `yaml:"listing"`
	Read    RetryPolicyConfig `yaml:"read"`
}

// AuthConfig содержит настройки сессий и хеширования паролей.
type AuthConfig struct {
	SessionTTL time.Duration `yaml:"session_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost"`
}

// TelemetryConfig содержит настройки трассировки и метрик.
type TelemetryConfig struct {
	ServiceName      string  `yaml:"service_name"`
	Environment      string  `yaml:"environment"`
	OTLPEndpoint     string  `yaml:"otlp_endpoint"`
	OTLPInsecure     bool    `yaml:"otlp_insecure"`
	TracesEnabled    bool    `yaml:"traces_enabled"`
	MetricsEnabled   bool    `yaml:"metrics_enabled"`
	TraceSampleRatio float64 `yaml:"trace_sample_ratio"`
	MetricsPath      string  `yaml:"metrics_path"`
}

// LoadConfig загружает конфигурацию из файла
func LoadConfig() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	normalizeConfig(&cfg)
	return &cfg, nil
}

// Address возвращает адрес сервера в формате host:port
func (s *ServerConfig) Address() string {
	if s.Host == "" {
		return fmt.Sprintf(":%d", s.Port)
	}
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:         "",
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Database: DatabaseConfig{
			DSN: "",
		},
		Kafka: KafkaConfig{
			Brokers:    []string{"localhost:9092"},
			OrderTopic: "order_events",
			ChatTopic:  "chat_messages",
			GroupID:    "chat-consumer",
		},
		Cache: CacheConfig{
			TTL:             300 * time.Second,
			CleanupInterval: 5 * time.Minute,
			MaxItems:        10000,
		},
		Retry: RetryConfig{
			Listing: RetryPolicyConfig{Wait: 2 * time.Second, MaxAttempts: 3},
			Read:    RetryPolicyConfig{Wait: 2 * time.Second, MaxAttempts: 5},
		},
		Auth: AuthConfig{
			SessionTTL: 24 * time.Hour,
			BcryptCost: 10,
		},
		Telemetry: TelemetryConfig{
			ServiceName:      "caterquest",
			Environment:      "local",
			OTLPEndpoint:     "localhost:4318",
			OTLPInsecure:     true,
			TracesEnabled:    true,
			MetricsEnabled:   true,
			TraceSampleRatio: 1.0,
			MetricsPath:      "/metrics",
		},
	}
}

func normalizeConfig(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10 * time.Second
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60 * time.Second
	}
	if cfg.Cache.TTL <= 0 {
		cfg.Cache.TTL = 300 * time.Second
	}
	if cfg.Cache.CleanupInterval < 0 {
		cfg.Cache.CleanupInterval = 0
	}
	if cfg.Cache.MaxItems <= 0 {
		cfg.Cache.MaxItems = 10000
	}
	if cfg.Retry.Listing.Wait <= 0 {
		cfg.Retry.Listing.Wait = 2 * time.Second
	}
	if cfg.Retry.Listing.MaxAttempts <= 0 {
		cfg.Retry.Listing.MaxAttempts = 3
	}
	if cfg.Retry.Read.Wait <= 0 {
		cfg.Retry.Read.Wait = 2 * time.Second
	}
	if cfg.Retry.Read.MaxAttempts <= 0 {
		cfg.Retry.Read.MaxAttempts = 5
	}
	if cfg.Auth.SessionTTL <= 0 {
		cfg.Auth.SessionTTL = 24 * time.Hour
	}
	if cfg.Auth.BcryptCost <= 0 {
		cfg.Auth.BcryptCost = 10
	}
	if cfg.Kafka.OrderTopic == "" {
		cfg.Kafka.OrderTopic = "order_events"
	}
	if cfg.Kafka.ChatTopic == "" {
		cfg.Kafka.ChatTopic = "chat_messages"
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = "chat-consumer"
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = "caterquest"
	}
	if cfg.Telemetry.OTLPEndpoint == "" {
		cfg.Telemetry.OTLPEndpoint = "localhost:4318"
	}
	if cfg.Telemetry.TraceSampleRatio <= 0 || cfg.Telemetry.TraceSampleRatio > 1 {
		cfg.Telemetry.TraceSampleRatio = 1.0
	}
	if cfg.Telemetry.MetricsPath == "" {
		cfg.Telemetry.MetricsPath = "/metrics"
	}
}
