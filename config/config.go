package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer     HttpServerConfig
	Database       DatabaseConfig
	Redis          RedisConfig
	MessageStream  MessageStreamConfig
	HttpClient     HttpClientConfig
	UserService    UserServiceConfig
	CatalogService CatalogServiceConfig
	Refund         RefundConfig
}

type HttpServerConfig struct {
	Port string `envconfig:"HTTP_SERVER_PORT" default:"3000"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name     string `envconfig:"DB_NAME" default:"railway_booking"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpen  int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdle  int    `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"AMQP_HOST" default:"localhost"`
	Port     string `envconfig:"AMQP_PORT" default:"5672"`
	User     string `envconfig:"AMQP_USER" default:"guest"`
	Password string `envconfig:"AMQP_PASSWORD" default:"guest"`
}

type HttpClientConfig struct {
	Type                string  `envconfig:"HTTP_CLIENT_CB_TYPE" default:"consecutive"`
	Timeout             int     `envconfig:"HTTP_CLIENT_TIMEOUT_SECONDS" default:"10"`
	ConsecutiveFailures int64   `envconfig:"HTTP_CLIENT_CB_CONSECUTIVE_FAILURES" default:"5"`
	ErrorRate           float64 `envconfig:"HTTP_CLIENT_CB_ERROR_RATE" default:"0.65"`
	MinSamples          int64   `envconfig:"HTTP_CLIENT_CB_MIN_SAMPLES" default:"100"`
	Threshold           int64   `envconfig:"HTTP_CLIENT_CB_THRESHOLD" default:"10"`
}

type UserServiceConfig struct {
	Host string `envconfig:"USER_SERVICE_HOST" default:"localhost"`
	Port string `envconfig:"USER_SERVICE_PORT" default:"8081"`
}

type CatalogServiceConfig struct {
	Host string `envconfig:"CATALOG_SERVICE_HOST" default:"localhost"`
	Port string `envconfig:"CATALOG_SERVICE_PORT" default:"8082"`
}

// RefundConfig selects what happens to the money when a booking is
// cancelled: "direct" credits the original funding source immediately,
// "approval" parks a refund request for an admin decision.
type RefundConfig struct {
	Policy string `envconfig:"REFUND_POLICY" default:"approval"`
}

const (
	RefundPolicyDirect   = "direct"
	RefundPolicyApproval = "approval"
)

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return &cfg
}
