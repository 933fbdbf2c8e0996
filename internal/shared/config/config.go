package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full service configuration.
type Config struct {
	HTTP      HTTPConfig
	Storage   StorageConfig
	Database  DBConfig
	Redis     RedisConfig
	RabbitMQ  MQConfig
	Session   SessionConfig
	Telemetry TelemetryConfig
	DevMode   bool
}

type HTTPConfig struct {
	Port int
}

// StorageConfig selects the fleet storage backend: "memory" or "postgres".
type StorageConfig struct {
	Backend string
}

type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	VHost    string
}

// SessionConfig controls the cookie session layer. Store is "memory" or
// "redis".
type SessionConfig struct {
	Secret   string
	TTLHours int
	Store    string
}

type TelemetryConfig struct {
	ConsumerEnabled  bool
	Queue            string
	SimulatorEnabled bool
	SimulatorSeconds int
}

// Load reads config.yaml from CONFIG_DIR (default ".") and overlays
// environment variables (SAVEZAR_DB_HOST, SAVEZAR_HTTP_PORT, ...). A missing
// file is fine; defaults cover local development.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(envOr("CONFIG_DIR", "."))

	v.SetEnvPrefix("SAVEZAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("http.port", 5000)
	v.SetDefault("storage.backend", "memory")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "savezar_user")
	v.SetDefault("db.password", "savezar_pass")
	v.SetDefault("db.database", "savezar_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("rabbitmq.host", "localhost")
	v.SetDefault("rabbitmq.port", 5672)
	v.SetDefault("rabbitmq.user", "guest")
	v.SetDefault("rabbitmq.password", "guest")
	v.SetDefault("rabbitmq.vhost", "/")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.ttl_hours", 24)
	v.SetDefault("session.store", "memory")
	v.SetDefault("telemetry.consumer_enabled", false)
	v.SetDefault("telemetry.queue", "taxi.telemetry")
	v.SetDefault("telemetry.simulator_enabled", false)
	v.SetDefault("telemetry.simulator_seconds", 30)
	v.SetDefault("dev_mode", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		HTTP: HTTPConfig{
			Port: v.GetInt("http.port"),
		},
		Storage: StorageConfig{
			Backend: v.GetString("storage.backend"),
		},
		Database: DBConfig{
			Host:     v.GetString("db.host"),
			Port:     v.GetInt("db.port"),
			User:     v.GetString("db.user"),
			Password: v.GetString("db.password"),
			Database: v.GetString("db.database"),
			SSLMode:  v.GetString("db.sslmode"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		RabbitMQ: MQConfig{
			Host:     v.GetString("rabbitmq.host"),
			Port:     v.GetInt("rabbitmq.port"),
			User:     v.GetString("rabbitmq.user"),
			Password: v.GetString("rabbitmq.password"),
			VHost:    v.GetString("rabbitmq.vhost"),
		},
		Session: SessionConfig{
			Secret:   v.GetString("session.secret"),
			TTLHours: v.GetInt("session.ttl_hours"),
			Store:    v.GetString("session.store"),
		},
		Telemetry: TelemetryConfig{
			ConsumerEnabled:  v.GetBool("telemetry.consumer_enabled"),
			Queue:            v.GetString("telemetry.queue"),
			SimulatorEnabled: v.GetBool("telemetry.simulator_enabled"),
			SimulatorSeconds: v.GetInt("telemetry.simulator_seconds"),
		},
		DevMode: v.GetBool("dev_mode"),
	}

	if cfg.Session.Secret == "" {
		if !cfg.DevMode {
			return Config{}, errors.New("session.secret is required outside dev mode")
		}
		cfg.Session.Secret = "dev-only-secret"
	}

	return cfg, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// DSN returns the Postgres connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// AMQPURL returns the RabbitMQ connection URL.
func (c MQConfig) AMQPURL() string {
	return fmt.Sprintf(
		"amqp://%s:%s@%s:%d%s",
		c.User, c.Password, c.Host, c.Port, c.VHost,
	)
}
