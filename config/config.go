package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration, shared by the agent and the
// ledger service binaries. Each binary reads the sections it needs.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Secrets  SecretsConfig  `mapstructure:"secrets"`
	Sync     SyncConfig     `mapstructure:"sync"`
	Ledger   LedgerConfig   `mapstructure:"ledger"`
	Ops      OpsConfig      `mapstructure:"ops"`
	Sweep    SweepConfig    `mapstructure:"sweep"`
	Log      LogConfig      `mapstructure:"log"`
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

// SecretsConfig holds key material for the secret codec. Keys may be given as
// 64-char hex (raw 32-byte key) or as a passphrase, which is stretched with
// argon2id using KDFSalt. An empty AtRestKey enables the degraded pass-through
// mode; an empty TransitKey falls back to the at-rest key.
type SecretsConfig struct {
	AtRestKey      string `mapstructure:"at_rest_key"`
	TransitKey     string `mapstructure:"transit_key"`
	KDFSalt        string `mapstructure:"kdf_salt"`
	MaxUnwrapDepth int    `mapstructure:"max_unwrap_depth"`
}

// SyncConfig describes the internal HTTP channel between the two processes.
// On the agent, BaseURL points at the ledger service. Secret is the shared
// x-internal-secret value, used by both sides.
type SyncConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Secret  string        `mapstructure:"secret"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LedgerConfig describes the on-chain bridge the agent uses to move funds.
type LedgerConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	APIKey    string        `mapstructure:"api_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
	FeeBuffer float64       `mapstructure:"fee_buffer"` // headroom over entry fee for network fees
}

type OpsConfig struct {
	OperatorKey string        `mapstructure:"operator_key"`
	JWTSecret   string        `mapstructure:"jwt_secret"`
	JWTExpiry   time.Duration `mapstructure:"jwt_expiry"`
	JWTIssuer   string        `mapstructure:"jwt_issuer"`
}

type SweepConfig struct {
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: GWP_ (Guild Wager Platform).
// Nested keys use underscore: GWP_DATABASE_HOST, GWP_SYNC_SECRET, etc.
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
	v.SetDefault("database.dbname", "wager_platform")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("secrets.at_rest_key", "")
	v.SetDefault("secrets.transit_key", "")
	v.SetDefault("secrets.kdf_salt", "")
	v.SetDefault("secrets.max_unwrap_depth", 5)
	v.SetDefault("sync.base_url", "http://localhost:8081")
	v.SetDefault("sync.secret", "")
	v.SetDefault("sync.timeout", "5s")
	v.SetDefault("ledger.base_url", "http://localhost:8899")
	v.SetDefault("ledger.api_key", "")
	v.SetDefault("ledger.timeout", "10s")
	v.SetDefault("ledger.fee_buffer", 0.001)
	v.SetDefault("ops.operator_key", "")
	v.SetDefault("ops.jwt_secret", "")
	v.SetDefault("ops.jwt_expiry", "12h")
	v.SetDefault("ops.jwt_issuer", "guild-wager-platform")
	v.SetDefault("sweep.interval", "30s")
	v.SetDefault("sweep.batch_size", 25)
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

	// Environment variables: GWP_DATABASE_HOST -> database.host
	v.SetEnvPrefix("GWP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
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
