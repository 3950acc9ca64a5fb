package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	GRPC     GRPCConfig     `yaml:"grpc"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Kafka    KafkaConfig    `yaml:"kafka"`
	Booking  BookingConfig  `yaml:"booking"`
	Auth     AuthConfig     `yaml:"auth"`
	Log      LogConfig      `yaml:"log"`
}

type HTTPConfig struct {
	Address string `yaml:"address"`
}

type GRPCConfig struct {
	Address string `yaml:"address"`
}

type DatabaseConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	User        string `yaml:"user"`
	Password    string `yaml:"password"`
	Name        string `yaml:"name"`
	SSLMode     string `yaml:"ssl_mode"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s", d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Brokers            []string `yaml:"brokers"`
	BookingTopic       string   `yaml:"booking_topic"`
	NotificationsTopic string   `yaml:"notifications_topic"`
	GroupID            string   `yaml:"group_id"`
}

type BookingConfig struct {
	Currency             string `yaml:"currency"`
	PNRPrefix            string `yaml:"pnr_prefix"`
	ConfirmPath          string `yaml:"confirm_path"`
	ConfirmationCacheTTL int    `yaml:"confirmation_cache_ttl_seconds"`
	PublishTimeout       int    `yaml:"publish_timeout_seconds"`
	DisplayTimezone      string `yaml:"display_timezone"`
}

type AuthConfig struct {
	SessionCookie string `yaml:"session_cookie"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// Path returns the config file location, CONFIG_PATH or config.yaml.
func Path() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return "config.yaml"
}

func (c *Config) applyDefaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":9090"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Booking.Currency == "" {
		c.Booking.Currency = "AUD"
	}
	if c.Booking.PNRPrefix == "" {
		c.Booking.PNRPrefix = "FLYDA"
	}
	if c.Booking.ConfirmPath == "" {
		c.Booking.ConfirmPath = "/confirm"
	}
	if c.Booking.ConfirmationCacheTTL == 0 {
		c.Booking.ConfirmationCacheTTL = 300
	}
	if c.Booking.PublishTimeout == 0 {
		c.Booking.PublishTimeout = 5
	}
	if c.Booking.DisplayTimezone == "" {
		c.Booking.DisplayTimezone = "UTC"
	}
	if c.Auth.SessionCookie == "" {
		c.Auth.SessionCookie = "session_token"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
