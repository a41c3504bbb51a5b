// Package config resolves the process settings from defaults, an optional
// YAML file, a .env file and VITALS_* environment variables, in increasing
// order of precedence. Command-line flags bound by the caller win over all.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "VITALS"

const (
	DbTypeFile   = "file"
	DbTypeMemory = "memory"
)

type Config struct {
	Db      DbConfig      `mapstructure:"db"`
	Http    HttpConfig    `mapstructure:"http"`
	Grpc    GrpcConfig    `mapstructure:"grpc"`
	Limiter LimiterConfig `mapstructure:"limiter"`
	Log     LogConfig     `mapstructure:"log"`
}

type DbConfig struct {
	Type string `mapstructure:"type"`
	Path string `mapstructure:"path"`
}

type HttpConfig struct {
	HostPort string `mapstructure:"host_port"`
}

// GrpcConfig leaves HostPort empty to keep the gRPC endpoint disabled.
type GrpcConfig struct {
	HostPort string `mapstructure:"host_port"`
}

type LimiterConfig struct {
	Rate  float64 `mapstructure:"rate"`
	Burst int     `mapstructure:"burst"`
}

type LogConfig struct {
	Dir  string `mapstructure:"dir"`
	File string `mapstructure:"file"`
}

// LoadDotEnv loads the given .env files (default ".env") into the process
// environment. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// New returns a viper instance with defaults and env lookup in place, ready
// for the caller to bind flags before Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("db.type", DbTypeFile)
	v.SetDefault("db.path", "vitals.db")
	v.SetDefault("http.host_port", ":1080")
	v.SetDefault("grpc.host_port", "")
	v.SetDefault("limiter.rate", 5.0)
	v.SetDefault("limiter.burst", 10)
	v.SetDefault("log.dir", "logs")
	v.SetDefault("log.file", "vitals.log")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.Http.HostPort = strings.TrimSpace(cfg.Http.HostPort)
	cfg.Grpc.HostPort = strings.TrimSpace(cfg.Grpc.HostPort)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Db.Type {
	case DbTypeFile, DbTypeMemory:
	default:
		return fmt.Errorf("unknown db.type %q, expected %q or %q", c.Db.Type, DbTypeFile, DbTypeMemory)
	}
	if c.Limiter.Rate <= 0 {
		return fmt.Errorf("limiter.rate must be positive, got %v", c.Limiter.Rate)
	}
	if c.Limiter.Burst < 1 {
		return fmt.Errorf("limiter.burst must be at least 1, got %d", c.Limiter.Burst)
	}
	return nil
}
