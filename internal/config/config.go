package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Environment string `toml:"-"`

	Host string `toml:"host"`
	Port int    `toml:"port"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// redis backs the /bmi rate limiter, leave the host empty to disable it
	RedisHost           string   `toml:"redis_host"`
	RedisPort           string   `toml:"redis_port"`
	BmiRateLimitPerMin  int      `toml:"bmi_rate_limit_per_min"`
	PlanCacheSizeMB     int      `toml:"plan_cache_size_mb"`
	PlanCacheTTLSeconds int      `toml:"plan_cache_ttl_seconds"`
	CorsAllowedOrigins  []string `toml:"cors_allowed_origins"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	cfg.Environment = strings.ToLower(env)
	return cfg, nil
}

func Load(env, configPath string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(configPath, &t); err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", configPath, err)
	}
	return t.Get(env)
}

// Secrets are read from the environment, never from the config file.
type Secrets struct {
	SentryDSN        string `env:"SENTRY_DSN"`
	RedisPassword    string `env:"FITPLAN_REDIS_PASS"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombApiKey  string `env:"HONEYCOMB_API_KEY"`
	OtelServiceName  string `env:"OTEL_SERVICE_NAME, default=fitplan"`
}

func LoadSecrets(ctx context.Context) (*Secrets, error) {
	var s Secrets
	if err := envconfig.Process(ctx, &s); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &s, nil
}
