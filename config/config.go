package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/storefront/backend/internal/domain"
)

// Catalog source kinds
const (
	SourceFile     = "file"
	SourceProvider = "provider"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Provider ProviderConfig
	Cart     CartConfig
	Tags     TagsConfig
	Log      LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig selects where products come from
type CatalogConfig struct {
	Source string        `mapstructure:"source"` // "file" or "provider"
	File   string        `mapstructure:"file"`
	TTL    time.Duration `mapstructure:"ttl"`
}

// ProviderConfig holds payments provider API configuration
type ProviderConfig struct {
	APIKey        string  `mapstructure:"api_key"`
	BaseURL       string  `mapstructure:"base_url"`
	RatePerSecond float64 `mapstructure:"rate_per_second"`
	Burst         int     `mapstructure:"burst"`
}

// CartConfig controls in-memory cart retention
type CartConfig struct {
	MaxIdle       time.Duration `mapstructure:"max_idle"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

// TagsConfig lists the canned search tags
type TagsConfig struct {
	Positions []string `mapstructure:"positions"`
	States    []string `mapstructure:"states"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

// Load loads configuration from .env, environment variables and an optional config file.
// An empty configFile searches the default locations for config.yaml.
func Load(configFile string) (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/storefront/")
	}

	// STOREFRONT_SERVER_PORT -> server.port
	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional unless one was named explicitly
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads a .env file from the working directory when present.
// Variables already set in the environment win.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(".env")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Catalog defaults
	v.SetDefault("catalog.source", SourceFile)
	v.SetDefault("catalog.file", "catalog.yaml")
	v.SetDefault("catalog.ttl", "5m")

	// Provider defaults
	v.SetDefault("provider.api_key", "")
	v.SetDefault("provider.base_url", "https://api.stripe.com")
	v.SetDefault("provider.rate_per_second", 20)
	v.SetDefault("provider.burst", 5)

	// Cart defaults
	v.SetDefault("cart.max_idle", "24h")
	v.SetDefault("cart.sweep_interval", "10m")

	// Tag defaults
	v.SetDefault("tags.positions", domain.PositionTags)
	v.SetDefault("tags.states", domain.StateTags)

	v.SetDefault("log.debug", false)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Catalog.Source {
	case SourceFile:
		if config.Catalog.File == "" {
			return fmt.Errorf("catalog file is required when catalog source is 'file'")
		}
	case SourceProvider:
		if config.Provider.APIKey == "" {
			return fmt.Errorf("provider API key is required (set STOREFRONT_PROVIDER_API_KEY)")
		}
		if config.Provider.BaseURL == "" {
			return fmt.Errorf("provider base URL is required when catalog source is 'provider'")
		}
	default:
		return fmt.Errorf("catalog source must be 'file' or 'provider', got: %s", config.Catalog.Source)
	}

	if config.Catalog.TTL < 0 {
		return fmt.Errorf("catalog ttl must not be negative, got: %s", config.Catalog.TTL)
	}

	return nil
}

// TagGroups returns the configured tag rows in display order
func (c *Config) TagGroups() []domain.TagGroup {
	groups := domain.DefaultTagGroups()
	if len(c.Tags.Positions) > 0 {
		groups[0].Tags = c.Tags.Positions
	}
	if len(c.Tags.States) > 0 {
		groups[1].Tags = c.Tags.States
	}
	return groups
}
