package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the environment variable pointing at an optional YAML config file
const ConfigFileEnv = "SHAREIT_CONFIG"

// Config is the merged configuration of both services
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Gateway   GatewayConfig   `yaml:"gateway"`
	Log       LogConfig       `yaml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

type ServerConfig struct {
	Port        string `yaml:"port"`
	DBDriver    string `yaml:"db_driver"`
	DatabaseURL string `yaml:"database_url"`
}

type GatewayConfig struct {
	Port           string        `yaml:"port"`
	ServerURL      string        `yaml:"server_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	RateLimit      float64       `yaml:"rate_limit"`
	RateBurst      int           `yaml:"rate_burst"`
	Breaker        BreakerConfig `yaml:"breaker"`
}

type BreakerConfig struct {
	MaxRequests      uint32        `yaml:"max_requests"`
	Interval         time.Duration `yaml:"interval"`
	Timeout          time.Duration `yaml:"timeout"`
	FailureThreshold uint32        `yaml:"failure_threshold"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type TelemetryConfig struct {
	OTLPEndpoint string `yaml:"otlp_endpoint"`
	Insecure     bool   `yaml:"insecure"`
}

// Default returns the configuration used when nothing overrides it
func Default() Config {
	return Config{
		Server: ServerConfig{
			Port:        "9090",
			DBDriver:    "sqlite",
			DatabaseURL: "data/shareit.db",
		},
		Gateway: GatewayConfig{
			Port:           "8080",
			ServerURL:      "http://localhost:9090",
			RequestTimeout: 10 * time.Second,
			RateLimit:      100,
			RateBurst:      200,
			Breaker: BreakerConfig{
				MaxRequests:      1,
				Interval:         time.Minute,
				Timeout:          30 * time.Second,
				FailureThreshold: 5,
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Telemetry: TelemetryConfig{
			Insecure: true,
		},
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// SHAREIT_CONFIG if set, then environment variables.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(ConfigFileEnv); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Port, "PORT")
	setString(&c.Server.DBDriver, "DB_DRIVER")
	setString(&c.Server.DatabaseURL, "DATABASE_URL")
	setString(&c.Gateway.Port, "GATEWAY_PORT")
	setString(&c.Gateway.ServerURL, "SHAREIT_SERVER_URL")
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")
	setString(&c.Telemetry.OTLPEndpoint, "OTEL_EXPORTER_OTLP_ENDPOINT")

	var errs []error
	errs = append(errs,
		setDuration(&c.Gateway.RequestTimeout, "GATEWAY_REQUEST_TIMEOUT"),
		setFloat(&c.Gateway.RateLimit, "GATEWAY_RATE_LIMIT"),
		setInt(&c.Gateway.RateBurst, "GATEWAY_RATE_BURST"),
		setUint32(&c.Gateway.Breaker.FailureThreshold, "BREAKER_FAILURE_THRESHOLD"),
		setDuration(&c.Gateway.Breaker.Timeout, "BREAKER_TIMEOUT"),
		setBool(&c.Telemetry.Insecure, "OTEL_EXPORTER_OTLP_INSECURE"),
	)
	return errors.Join(errs...)
}

// Validate reports every invalid setting at once
func (c Config) Validate() error {
	var errs []error
	if c.Server.Port == "" {
		errs = append(errs, errors.New("config: server port is required"))
	}
	if c.Server.DBDriver != "sqlite" && c.Server.DBDriver != "postgres" {
		errs = append(errs, fmt.Errorf("config: unsupported db driver %q", c.Server.DBDriver))
	}
	if c.Server.DatabaseURL == "" {
		errs = append(errs, errors.New("config: database url is required"))
	}
	if c.Gateway.Port == "" {
		errs = append(errs, errors.New("config: gateway port is required"))
	}
	if c.Gateway.ServerURL == "" {
		errs = append(errs, errors.New("config: gateway server url is required"))
	}
	if c.Gateway.RequestTimeout <= 0 {
		errs = append(errs, errors.New("config: gateway request timeout must be positive"))
	}
	if c.Gateway.RateLimit < 0 || c.Gateway.RateBurst < 0 {
		errs = append(errs, errors.New("config: rate limit and burst must not be negative"))
	}
	if c.Gateway.RateLimit > 0 && c.Gateway.RateBurst == 0 {
		errs = append(errs, errors.New("config: rate burst must be positive when rate limiting is on"))
	}
	if c.Gateway.Breaker.FailureThreshold == 0 {
		errs = append(errs, errors.New("config: breaker failure threshold must be positive"))
	}
	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = d
	return nil
}

func setFloat(dst *float64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = f
	return nil
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = n
	return nil
}

func setUint32(dst *uint32, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = uint32(n)
	return nil
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("config: %s: %w", key, err)
	}
	*dst = b
	return nil
}
