package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"production-board/internal/dataview"
)

const EnvironmentProduction = "production"

// Collection kinds configured under view.collections.
const (
	CollectionShots = "shots"
	CollectionTasks = "tasks"
	CollectionNotes = "notes"
)

var collectionNames = []string{CollectionShots, CollectionTasks, CollectionNotes}

var (
	ErrInvalidPort      = errors.New("http_server.port must be positive")
	ErrInvalidCacheSize = errors.New("view.cache_size must not be negative")
	ErrInvalidDirection = errors.New("default_direction must be ascending/asc or descending/desc")
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Data views
	View ViewConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int // 0 disables limiting
	MaxClients     int
}

// ViewConfig configures the data view use case.
type ViewConfig struct {
	CacheSize   int    // memoized results kept; 0 disables memoization
	Timezone    string // IANA zone used to resolve relative due windows
	Collections map[string]CollectionConfig
}

// CollectionConfig declares how one collection kind is searched and sorted.
type CollectionConfig struct {
	SearchFields     []string
	DefaultSort      string
	DefaultDirection string
}

// Load loads configuration using Viper.
// The config file is config.yaml, searched in ./config, . and /etc/app/.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.MaxClients = viper.GetInt("rate_limit.max_clients")

	// Data views
	cfg.View.CacheSize = viper.GetInt("view.cache_size")
	cfg.View.Timezone = viper.GetString("view.timezone")
	cfg.View.Collections = make(map[string]CollectionConfig, len(collectionNames))
	for _, name := range collectionNames {
		prefix := "view.collections." + name + "."
		cfg.View.Collections[name] = CollectionConfig{
			SearchFields:     splitList(viper.GetStringSlice(prefix + "search_fields")),
			DefaultSort:      viper.GetString(prefix + "default_sort"),
			DefaultDirection: strings.ToLower(viper.GetString(prefix + "default_direction")),
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("rate_limit.requests_per_min", 600)
	viper.SetDefault("rate_limit.max_clients", 1000)

	viper.SetDefault("view.cache_size", 256)
	viper.SetDefault("view.timezone", "UTC")

	viper.SetDefault("view.collections.shots.search_fields", []string{"title", "category", "id"})
	viper.SetDefault("view.collections.shots.default_sort", "alpha")
	viper.SetDefault("view.collections.shots.default_direction", "ascending")

	viper.SetDefault("view.collections.tasks.search_fields", []string{"title", "description", "category"})
	viper.SetDefault("view.collections.tasks.default_sort", "dueDate")
	viper.SetDefault("view.collections.tasks.default_direction", "ascending")

	viper.SetDefault("view.collections.notes.search_fields", []string{"title", "content"})
	viper.SetDefault("view.collections.notes.default_sort", "modified")
	viper.SetDefault("view.collections.notes.default_direction", "descending")
}

func (cfg *Config) validate() error {
	if cfg.HTTPServer.Port <= 0 {
		return ErrInvalidPort
	}
	if cfg.View.CacheSize < 0 {
		return ErrInvalidCacheSize
	}
	for name, c := range cfg.View.Collections {
		if c.DefaultDirection == "" {
			continue
		}
		dir, ok := dataview.ParseDirection(c.DefaultDirection)
		if !ok {
			return fmt.Errorf("view.collections.%s: %w", name, ErrInvalidDirection)
		}
		c.DefaultDirection = string(dir)
		cfg.View.Collections[name] = c
	}
	return nil
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(raw []string) []string {
	var out []string
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
