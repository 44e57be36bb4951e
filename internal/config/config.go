package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration, loaded from YAML with
// environment-variable overrides.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Auth     AuthConfig     `yaml:"auth"`
	Source   SourceConfig   `yaml:"source"`
	Game     GameConfig     `yaml:"game"`
}

type ServerConfig struct {
	Port           string        `yaml:"port"`
	Env            string        `yaml:"env"`
	RateLimitRPS   int           `yaml:"rateLimitRPS"`
	RateLimitBurst int           `yaml:"rateLimitBurst"`
	CORSOrigins    []string      `yaml:"corsOrigins"`
	ShutdownGrace  time.Duration `yaml:"shutdownGrace"`
}

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"maxSizeMB"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAgeDays int    `yaml:"maxAgeDays"`
}

type DatabaseConfig struct {
	// DSN is a postgres connection string. Empty selects the in-memory store.
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	// Addr enables the puzzle cache when set.
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	TTL      time.Duration `yaml:"ttl"`
}

type AuthConfig struct {
	JWTSecret string `yaml:"jwtSecret"`
}

type SourceConfig struct {
	// BaseURL of the external daily-puzzle API; the date and ".json" suffix
	// are appended per request.
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout"`
}

type GameConfig struct {
	AllowPastDates    bool   `yaml:"allowPastDates"`
	AcceptedWordsFile string `yaml:"acceptedWordsFile"`
}

// Load reads config from path (optional) and applies env overrides on top of
// defaults.
func Load(path string) (*Config, error) {
	c := &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			RateLimitRPS:   5,
			RateLimitBurst: 10,
			ShutdownGrace:  10 * time.Second,
		},
		Log:    LogConfig{Level: "info", Console: true, MaxSizeMB: 100, MaxBackups: 3, MaxAgeDays: 30},
		Redis:  RedisConfig{TTL: 24 * time.Hour},
		Source: SourceConfig{Timeout: 10 * time.Second},
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	envOverride(&c.Server.Port, "PORT")
	envOverride(&c.Server.Env, "ENV")
	envOverride(&c.Database.DSN, "DATABASE_URL")
	envOverride(&c.Redis.Addr, "REDIS_ADDR")
	envOverride(&c.Redis.Password, "REDIS_PASSWORD")
	envOverride(&c.Auth.JWTSecret, "JWT_SECRET")
	envOverride(&c.Source.BaseURL, "PUZZLE_SOURCE_URL")
	envOverride(&c.Game.AcceptedWordsFile, "ACCEPTED_WORDS_FILE")
	envOverrideInt(&c.Server.RateLimitRPS, "RATE_LIMIT_RPS")
	envOverrideInt(&c.Server.RateLimitBurst, "RATE_LIMIT_BURST")
	envOverrideBool(&c.Game.AllowPastDates, "ALLOW_PAST_DATES")
	envOverrideDuration(&c.Source.Timeout, "PUZZLE_SOURCE_TIMEOUT")

	if c.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("config: auth.jwtSecret (or JWT_SECRET) is required")
	}
	if c.Source.BaseURL == "" {
		return nil, fmt.Errorf("config: source.baseURL (or PUZZLE_SOURCE_URL) is required")
	}
	return c, nil
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || os.Getenv("GIN_MODE") == "release"
}

func envOverride(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envOverrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			*dst = i
		}
	}
}

func envOverrideBool(dst *bool, key string) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

func envOverrideDuration(dst *time.Duration, key string) {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
