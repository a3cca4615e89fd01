// Package config loads service configuration from the environment (and an optional .env file).
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env     string        `mapstructure:"app_env"`
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Storage StorageConfig `mapstructure:"aws"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	ML      MLConfig      `mapstructure:"ml"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
	Log     LogConfig     `mapstructure:"log"`
	Cache   CacheConfig   `mapstructure:"cache"`
}

type ServerConfig struct {
	Port       string `mapstructure:"port"`
	CORSOrigin string `mapstructure:"cors_origin"`
}

type DBConfig struct {
	URL             string        `mapstructure:"url"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Pass            string        `mapstructure:"pass"`
	Name            string        `mapstructure:"name"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns DB_URL when set, otherwise a key/value DSN built from the parts
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Pass, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
	Pass string `mapstructure:"pass"`
	DB   int    `mapstructure:"db"`
}

type StorageConfig struct {
	Region string `mapstructure:"region"`
	Bucket string `mapstructure:"bucket"`
	Prefix string `mapstructure:"prefix"`
}

type JWTConfig struct {
	Secret    string        `mapstructure:"secret"`
	ExpiresIn time.Duration `mapstructure:"expires_in"`
	Issuer    string        `mapstructure:"issuer"`
}

type MLConfig struct {
	ServiceURL     string        `mapstructure:"service_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
	CareerInfoPath string        `mapstructure:"career_info_path"`
}

type OpenAIConfig struct {
	APIKey    string  `mapstructure:"api_key"`
	Model     string  `mapstructure:"model"`
	MaxTokens int64   `mapstructure:"max_tokens"`
	Temp      float64 `mapstructure:"temperature"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

type CacheConfig struct {
	CareersTTL time.Duration `mapstructure:"careers_ttl"`
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

var defaults = map[string]any{
	"app_env":              "development",
	"server.port":          "3000",
	"server.cors_origin":   "http://localhost:5173",
	"db.url":               "",
	"db.host":              "localhost",
	"db.port":              "5432",
	"db.user":              "postgres",
	"db.pass":              "",
	"db.name":              "pathway",
	"db.sslmode":           "disable",
	"db.max_open_conns":    25,
	"db.max_idle_conns":    5,
	"db.conn_max_lifetime": "5m",
	"redis.addr":           "localhost:6379",
	"redis.pass":           "",
	"redis.db":             0,
	"aws.region":           "us-east-1",
	"aws.bucket":           "",
	"aws.prefix":           "uploads",
	"jwt.secret":           "",
	"jwt.expires_in":       "168h",
	"jwt.issuer":           "pathway",
	"ml.service_url":       "http://localhost:8000",
	"ml.timeout":           "30s",
	"ml.career_info_path":  "./data/career_info.json",
	"openai.api_key":       "",
	"openai.model":         "gpt-4o-mini",
	"openai.max_tokens":    2000,
	"openai.temperature":   0.7,
	"log.level":            "info",
	"log.json":             false,
	"cache.careers_ttl":    "10m",
}

// Load reads .env files (if present) and the process environment.
// Keys map to env vars by upper-casing and replacing dots with underscores,
// e.g. ml.service_url -> ML_SERVICE_URL.
func Load(envFiles ...string) (*Config, error) {
	// .env is optional; real deployments inject the environment directly
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// NODE_ENV is accepted for parity with the older deployment scripts
	if err := v.BindEnv("app_env", "APP_ENV", "NODE_ENV"); err != nil {
		return nil, fmt.Errorf("bind app_env: %w", err)
	}
	if err := v.BindEnv("server.port", "PORT", "SERVER_PORT"); err != nil {
		return nil, fmt.Errorf("bind server.port: %w", err)
	}
	if err := v.BindEnv("ml.service_url", "ML_SERVICE_URL", "PYTHON_ML_SERVICE_URL"); err != nil {
		return nil, fmt.Errorf("bind ml.service_url: %w", err)
	}
	if err := v.BindEnv("ml.career_info_path", "CAREER_INFO_PATH", "ML_CAREER_INFO_PATH"); err != nil {
		return nil, fmt.Errorf("bind ml.career_info_path: %w", err)
	}
	if err := v.BindEnv("cache.careers_ttl", "CAREERS_CACHE_TTL"); err != nil {
		return nil, fmt.Errorf("bind cache.careers_ttl: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and the settings production cannot run without
func (c *Config) Validate() error {
	if c.IsProduction() && strings.TrimSpace(c.JWT.Secret) == "" {
		return fmt.Errorf("config error: JWT_SECRET is required in production")
	}
	if c.JWT.ExpiresIn <= 0 {
		return fmt.Errorf("config error: JWT_EXPIRES_IN must be positive, got %s", c.JWT.ExpiresIn)
	}
	if c.ML.Timeout <= 0 {
		return fmt.Errorf("config error: ML_TIMEOUT must be positive, got %s", c.ML.Timeout)
	}
	if c.OpenAI.MaxTokens <= 0 {
		return fmt.Errorf("config error: OPENAI_MAX_TOKENS must be positive, got %d", c.OpenAI.MaxTokens)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("config error: PORT is empty")
	}
	return nil
}
