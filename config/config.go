package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Tracker   TrackerConfig   `mapstructure:"tracker"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// TrackerConfig holds price tracker API configuration
type TrackerConfig struct {
	APIURL    string        `mapstructure:"api_url"`  // product data endpoint
	SiteURL   string        `mapstructure:"site_url"` // root of the tracker's HTML pages
	UserAgent string        `mapstructure:"user_agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig holds the outbound politeness limit
type RateLimitConfig struct {
	UpstreamRPS   float64 `mapstructure:"upstream_rps"`
	UpstreamBurst int     `mapstructure:"upstream_burst"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/pricelens/")

	// Environment variable settings
	v.SetEnvPrefix("PRICELENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads .env from the working directory. Variables already set
// in the environment win, and a missing file is not an error.
func loadEnvFile() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Tracker defaults
	v.SetDefault("tracker.api_url", "https://buyhatke.com/api/productData")
	v.SetDefault("tracker.site_url", "https://buyhatke.com")
	v.SetDefault("tracker.user_agent", defaultUserAgent)
	v.SetDefault("tracker.timeout", "15s")

	// Rate limit defaults
	v.SetDefault("ratelimit.upstream_rps", 2)
	v.SetDefault("ratelimit.upstream_burst", 5)

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Server.Environment {
	case "development", "test", "production":
	default:
		return fmt.Errorf("server environment must be 'development', 'test' or 'production', got: %s", config.Server.Environment)
	}

	if err := validateURL("tracker api_url", config.Tracker.APIURL); err != nil {
		return err
	}
	if err := validateURL("tracker site_url", config.Tracker.SiteURL); err != nil {
		return err
	}

	if config.Tracker.Timeout <= 0 {
		return fmt.Errorf("tracker timeout must be positive, got: %s", config.Tracker.Timeout)
	}

	if config.RateLimit.UpstreamRPS <= 0 || config.RateLimit.UpstreamBurst <= 0 {
		return fmt.Errorf("upstream rate limit must be positive, got: %v rps, burst %d",
			config.RateLimit.UpstreamRPS, config.RateLimit.UpstreamBurst)
	}

	if config.Log.Format != "console" && config.Log.Format != "json" {
		return fmt.Errorf("log format must be 'console' or 'json', got: %s", config.Log.Format)
	}

	return nil
}

func validateURL(name, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", name)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got: %s", name, raw)
	}
	return nil
}

// InitLogger builds the global zap logger from cfg
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
