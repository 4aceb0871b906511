package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:newshub.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		UpdateInterval  time.Duration `yaml:"update_interval" json:"update_interval" jsonschema:"default=15m,description=How often ready sources are checked"`
		MaxWorkers      int           `yaml:"max_workers" json:"max_workers" jsonschema:"default=5,description=Maximum concurrent category fetches per source"`
		RetentionDays   int           `yaml:"retention_days" json:"retention_days" jsonschema:"default=30,description=Days to keep articles before cleanup"`
		CleanupInterval time.Duration `yaml:"cleanup_interval" json:"cleanup_interval" jsonschema:"default=24h,description=How often the retention cleanup runs"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Providers ProvidersConfig `yaml:"providers" json:"providers" jsonschema:"description=Provider HTTP client settings"`

	Sources    []Source   `yaml:"sources" json:"sources" jsonschema:"description=News sources to seed into the database"`
	Categories []Category `yaml:"categories" json:"categories" jsonschema:"description=Category taxonomy to seed into the database"`
}

// ProvidersConfig holds settings shared by all provider adapters
type ProvidersConfig struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Request timeout per provider call"`
	Window    time.Duration `yaml:"window" json:"window" jsonschema:"default=24h,description=Trailing publication window queried per request"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=Newshub/1.0,description=User agent for provider requests"`
}

// Source describes one external news provider seeded into the database
type Source struct {
	Slug      string            `yaml:"slug" json:"slug" jsonschema:"required,description=Stable identifier selecting the provider adapter"`
	Name      string            `yaml:"name" json:"name" jsonschema:"required,description=Display name"`
	APIURL    string            `yaml:"api_url" json:"api_url" jsonschema:"required,description=Base API URL"`
	APIKey    string            `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	APIConfig map[string]string `yaml:"api_config" json:"api_config" jsonschema:"description=Provider-specific settings such as endpoint overrides"`
	Language  string            `yaml:"language" json:"language" jsonschema:"default=en,description=Language code passed to providers that support it"`
	Country   string            `yaml:"country" json:"country" jsonschema:"description=Country code"`
	Interval  int               `yaml:"interval" json:"interval" jsonschema:"default=60,description=Fetch interval in minutes"`
	Enabled   bool              `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Whether the source participates in aggregation"`
}

// Category describes one taxonomy entry seeded into the database
type Category struct {
	Slug      string `yaml:"slug" json:"slug" jsonschema:"required,description=Unique category slug"`
	Name      string `yaml:"name" json:"name" jsonschema:"required,description=Display name used as the provider query term"`
	SortOrder int    `yaml:"sort_order" json:"sort_order" jsonschema:"description=Listing order"`
	Enabled   bool   `yaml:"enabled" json:"enabled" jsonschema:"default=true,description=Whether the category participates in aggregation"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for server
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:newshub.db?cache=shared&mode=rwc"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	// set defaults for schedule
	if cfg.Schedule.UpdateInterval == 0 {
		cfg.Schedule.UpdateInterval = 15 * time.Minute
	}
	if cfg.Schedule.MaxWorkers == 0 {
		cfg.Schedule.MaxWorkers = 5
	}
	if cfg.Schedule.RetentionDays == 0 {
		cfg.Schedule.RetentionDays = 30
	}
	if cfg.Schedule.CleanupInterval == 0 {
		cfg.Schedule.CleanupInterval = 24 * time.Hour
	}

	// set defaults for providers
	if cfg.Providers.Timeout == 0 {
		cfg.Providers.Timeout = 30 * time.Second
	}
	if cfg.Providers.Window == 0 {
		cfg.Providers.Window = 24 * time.Hour
	}
	if cfg.Providers.UserAgent == "" {
		cfg.Providers.UserAgent = "Newshub/1.0"
	}

	// set defaults for seeded sources
	for i := range cfg.Sources {
		if cfg.Sources[i].Interval == 0 {
			cfg.Sources[i].Interval = 60
		}
		if cfg.Sources[i].Language == "" {
			cfg.Sources[i].Language = "en"
		}
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// validate server config
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// validate schedule config
	if cfg.Schedule.UpdateInterval < time.Minute {
		return fmt.Errorf("schedule.update_interval must be at least 1 minute")
	}
	if cfg.Schedule.RetentionDays < 1 {
		return fmt.Errorf("schedule.retention_days must be at least 1")
	}

	// validate sources
	seenSources := make(map[string]struct{}, len(cfg.Sources))
	for _, src := range cfg.Sources {
		if src.Slug == "" {
			return fmt.Errorf("source slug is required")
		}
		if src.Name == "" {
			return fmt.Errorf("source %q: name is required", src.Slug)
		}
		if src.APIURL == "" {
			return fmt.Errorf("source %q: api_url is required", src.Slug)
		}
		if _, ok := seenSources[src.Slug]; ok {
			return fmt.Errorf("duplicate source slug %q", src.Slug)
		}
		seenSources[src.Slug] = struct{}{}
	}

	// validate categories
	seenCategories := make(map[string]struct{}, len(cfg.Categories))
	for _, cat := range cfg.Categories {
		if cat.Slug == "" {
			return fmt.Errorf("category slug is required")
		}
		if cat.Name == "" {
			return fmt.Errorf("category %q: name is required", cat.Slug)
		}
		if _, ok := seenCategories[cat.Slug]; ok {
			return fmt.Errorf("duplicate category slug %q", cat.Slug)
		}
		seenCategories[cat.Slug] = struct{}{}
	}

	return nil
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// GetProvidersConfig returns provider HTTP client configuration
func (c *Config) GetProvidersConfig() ProvidersConfig {
	return c.Providers
}
