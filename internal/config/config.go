package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App         AppConfig         `mapstructure:"app"`
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Idempotency IdempotencyConfig `mapstructure:"idempotency"`
	NATS        NATSConfig        `mapstructure:"nats"`
	Probe       ProbeConfig       `mapstructure:"probe"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func (c ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`

	// File enables rotated file output next to stdout.
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	URL             string        `mapstructure:"url"`
	Name            string        `mapstructure:"name"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	OpTimeout       time.Duration `mapstructure:"op_timeout"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	URL string `mapstructure:"url"`
}

type IdempotencyConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type NATSConfig struct {
	URL           string `mapstructure:"url"`
	SubjectPrefix string `mapstructure:"subject_prefix"`
}

type ProbeConfig struct {
	Interval string        `mapstructure:"interval"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// Load reads the YAML file at path (skipped when envOnly or missing) and
// overlays the environment. DATABASE_URL, DATABASE_NAME and PORT are read
// without prefix; everything else uses HEDGE_<SECTION>_<KEY>.
func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HEDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()

	for key, env := range map[string]string{
		"database.url":  "DATABASE_URL",
		"database.name": "DATABASE_NAME",
		"server.port":   "PORT",
		"redis.url":     "REDIS_URL",
		"nats.url":      "NATS_URL",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, err
		}
	}

	v.SetDefault("app.env", "dev")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 14)
	v.SetDefault("database.driver", "")
	v.SetDefault("database.url", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.connect_timeout", "5s")
	v.SetDefault("database.op_timeout", "5s")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.url", "")
	v.SetDefault("idempotency.ttl", "24h")
	v.SetDefault("nats.url", "")
	v.SetDefault("nats.subject_prefix", "hedge")
	v.SetDefault("probe.interval", "@every 30s")
	v.SetDefault("probe.timeout", "2s")

	if !envOnly && strings.TrimSpace(path) != "" {
		if err := v.ReadInConfig(); err != nil && !missingConfig(err) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func missingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}
