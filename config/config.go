package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Bridge    BridgeConfig    `mapstructure:"bridge"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Operator  OperatorConfig  `mapstructure:"operator"`
	Integrity IntegrityConfig `mapstructure:"integrity"`
	Pin       PinConfig       `mapstructure:"pin"`
	Ledger    LedgerConfig    `mapstructure:"ledger"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// BridgeConfig configures the token reader bridge.
// Mode "redis" exchanges payloads with a reader agent over Redis lists;
// mode "memory" runs an in-process emulated token (dev and tests only).
type BridgeConfig struct {
	Mode     string `mapstructure:"mode"`
	ReaderID string `mapstructure:"reader_id"`
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// OperatorConfig provisions the terminal operator login.
type OperatorConfig struct {
	ID     string `mapstructure:"id"`
	Secret string `mapstructure:"secret"`
}

// IntegrityConfig holds the payload MAC key. An empty key selects the
// legacy bare-JSON on-token format with no integrity trailer.
type IntegrityConfig struct {
	Key string `mapstructure:"key"` // hex-encoded HMAC-SHA256 key
}

// PinConfig tunes the failed-PIN lockout.
type PinConfig struct {
	MaxFailures int64         `mapstructure:"max_failures"`
	Window      time.Duration `mapstructure:"window"`
	Lockout     time.Duration `mapstructure:"lockout"`
}

// LedgerConfig selects the reconciliation ledger backend.
// Driver "memory" matches the legacy in-memory ledger; "postgres" keeps the
// ledger durable across restarts. AllowFailed enables the FAILED transaction
// state, which the legacy flow never reaches.
type LedgerConfig struct {
	Driver      string `mapstructure:"driver"`
	AllowFailed bool   `mapstructure:"allow_failed"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TAG_.
// Nested keys use underscore: TAG_LEDGER_DRIVER, TAG_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "tagpay")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("bridge.mode", "redis")
	v.SetDefault("bridge.reader_id", "reader-1")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "12h")
	v.SetDefault("jwt.issuer", "tagpay")
	v.SetDefault("operator.id", "terminal-1")
	v.SetDefault("operator.secret", "")
	v.SetDefault("integrity.key", "")
	v.SetDefault("pin.max_failures", 5)
	v.SetDefault("pin.window", "15m")
	v.SetDefault("pin.lockout", "15m")
	v.SetDefault("ledger.driver", "memory")
	v.SetDefault("ledger.allow_failed", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TAG_LEDGER_DRIVER -> ledger.driver
	v.SetEnvPrefix("TAG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional; env vars can carry everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
