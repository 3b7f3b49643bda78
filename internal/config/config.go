package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App     AppConfig
	Backend BackendConfig
	Storage StorageConfig
	Redis   RedisConfig
	MySQL   MySQLConfig
	Workers WorkerConfig
	Log     LogConfig
}

// AppConfig holds listener settings
type AppConfig struct {
	Env      string
	HTTPAddr string
	GRPCAddr string
}

// BackendConfig points at the pizza store REST backend
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration // 0 means no client timeout
}

// StorageConfig selects the client storage driver: memory, redis or mysql
type StorageConfig struct {
	Driver string
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// WorkerConfig sizes the client storage write queue and its workers
type WorkerConfig struct {
	Count     int
	QueueSize int
}

type LogConfig struct {
	Level  string
	Format string
	Output string
}

// Load reads configuration.
// Priority (highest to lowest):
// 1. Environment variables with PIZZERIA_ prefix (e.g., PIZZERIA_BACKEND_BASE_URL)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/pizzeria")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("PIZZERIA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("app.env"),
			HTTPAddr: v.GetString("app.http_addr"),
			GRPCAddr: v.GetString("app.grpc_addr"),
		},
		Backend: BackendConfig{
			BaseURL: v.GetString("backend.base_url"),
			Timeout: v.GetDuration("backend.timeout"),
		},
		Storage: StorageConfig{
			Driver: v.GetString("storage.driver"),
		},
		Redis: RedisConfig{
			Addr:      v.GetString("redis.addr"),
			Password:  v.GetString("redis.password"),
			DB:        v.GetInt("redis.db"),
			KeyPrefix: v.GetString("redis.key_prefix"),
		},
		MySQL: MySQLConfig{
			DSN:             v.GetString("mysql.dsn"),
			MaxOpenConns:    v.GetInt("mysql.max_open_conns"),
			MaxIdleConns:    v.GetInt("mysql.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("mysql.conn_max_lifetime"),
		},
		Workers: WorkerConfig{
			Count:     v.GetInt("workers.count"),
			QueueSize: v.GetInt("workers.queue_size"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.HTTPAddr == "" {
		cfg.App.HTTPAddr = ":8080"
	}
	if cfg.App.GRPCAddr == "" {
		cfg.App.GRPCAddr = ":50051"
	}
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = "http://localhost:8081"
	}
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = "memory"
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.MySQL.DSN == "" {
		cfg.MySQL.DSN = "root:root@tcp(localhost:3306)/pizzeria?parseTime=true"
	}
	if cfg.MySQL.MaxOpenConns == 0 {
		cfg.MySQL.MaxOpenConns = 10
	}
	if cfg.MySQL.MaxIdleConns == 0 {
		cfg.MySQL.MaxIdleConns = 5
	}
	if cfg.MySQL.ConnMaxLifetime == 0 {
		cfg.MySQL.ConnMaxLifetime = 5 * time.Minute
	}
	if cfg.Workers.Count == 0 {
		cfg.Workers.Count = 2
	}
	if cfg.Workers.QueueSize == 0 {
		cfg.Workers.QueueSize = 64
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		if cfg.App.Env == "production" {
			cfg.Log.Format = "json"
		} else {
			cfg.Log.Format = "console"
		}
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case "memory", "redis", "mysql":
	default:
		return fmt.Errorf("unsupported storage driver %q (want memory, redis or mysql)", c.Storage.Driver)
	}

	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid backend base url %q", c.Backend.BaseURL)
	}
	if c.Backend.Timeout < 0 {
		return errors.New("backend timeout must not be negative")
	}
	if c.Workers.Count < 0 || c.Workers.QueueSize < 0 {
		return errors.New("worker count and queue size must not be negative")
	}
	return nil
}
