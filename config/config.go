// Package config loads the service configuration from the environment with viper.
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/NomadCrew/travel-timeline-backend/logger"
	"github.com/spf13/viper"
)

// Environment represents the application's running environment (development or production).
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Environment    Environment `mapstructure:"ENVIRONMENT" yaml:"environment"`
	Port           string      `mapstructure:"PORT" yaml:"port"`
	AllowedOrigins []string    `mapstructure:"ALLOWED_ORIGINS" yaml:"allowed_origins"`
	Version        string      `mapstructure:"VERSION" yaml:"version"`
	// TrustedProxies lists CIDR ranges or IPs of reverse proxies. Empty means
	// X-Forwarded-For is ignored.
	TrustedProxies []string `mapstructure:"TRUSTED_PROXIES" yaml:"trusted_proxies"`
}

// DatabaseConfig holds PostgreSQL database connection details.
type DatabaseConfig struct {
	Host         string `mapstructure:"HOST" yaml:"host"`
	Port         int    `mapstructure:"PORT" yaml:"port"`
	User         string `mapstructure:"USER" yaml:"user"`
	Password     string `mapstructure:"PASSWORD" yaml:"password"`
	Name         string `mapstructure:"NAME" yaml:"name"`
	SSLMode      string `mapstructure:"SSL_MODE" yaml:"ssl_mode"`
	MaxOpenConns int    `mapstructure:"MAX_OPEN_CONNS" yaml:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"MAX_IDLE_CONNS" yaml:"max_idle_conns"`
	ConnMaxLife  string `mapstructure:"CONN_MAX_LIFE" yaml:"conn_max_life"`
}

// URL returns a postgres:// connection URL suitable for golang-migrate and pgxpool.
func (c *DatabaseConfig) URL() string {
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(c.User),
		url.QueryEscape(c.Password),
		c.Host,
		c.Port,
		c.Name,
		sslmode,
	)
}

// RedisConfig holds Redis connection details.
type RedisConfig struct {
	Address      string `mapstructure:"ADDRESS" yaml:"address"`
	Password     string `mapstructure:"PASSWORD" yaml:"password"`
	DB           int    `mapstructure:"DB" yaml:"db"`
	UseTLS       bool   `mapstructure:"USE_TLS" yaml:"use_tls"`
	PoolSize     int    `mapstructure:"POOL_SIZE" yaml:"pool_size"`
	MinIdleConns int    `mapstructure:"MIN_IDLE_CONNS" yaml:"min_idle_conns"`
}

// StoreConfig selects where trips and preferences live.
type StoreConfig struct {
	TripDriver        string `mapstructure:"TRIP_DRIVER" yaml:"trip_driver"`
	PreferencesDriver string `mapstructure:"PREFERENCES_DRIVER" yaml:"preferences_driver"`
	// SeedFile overrides the built-in seed trips. Empty uses the embedded set.
	SeedFile      string `mapstructure:"SEED_FILE" yaml:"seed_file"`
	RunMigrations bool   `mapstructure:"RUN_MIGRATIONS" yaml:"run_migrations"`
}

// MetricsConfig tunes the derived trip metrics.
type MetricsConfig struct {
	// Continents holds extra "Country=Continent" mappings.
	Continents []string `mapstructure:"CONTINENTS" yaml:"continents"`
}

// Config aggregates all application configuration sections.
type Config struct {
	Server   ServerConfig   `mapstructure:"SERVER" yaml:"server"`
	Database DatabaseConfig `mapstructure:"DATABASE" yaml:"database"`
	Redis    RedisConfig    `mapstructure:"REDIS" yaml:"redis"`
	Store    StoreConfig    `mapstructure:"STORE" yaml:"store"`
	Metrics  MetricsConfig  `mapstructure:"METRICS" yaml:"metrics"`
}

// IsDevelopment returns true if the application is running in development environment.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// IsProduction returns true if the application is running in production environment.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == EnvProduction
}

// bindEnvVars binds multiple environment variables to config keys.
// Format: []{configKey, envVar}
func bindEnvVars(v *viper.Viper, bindings [][2]string) error {
	for _, b := range bindings {
		if err := v.BindEnv(b[0], b[1]); err != nil {
			return fmt.Errorf("failed to bind %s: %w", b[0], err)
		}
	}
	return nil
}

// LoadConfig reads defaults and environment variables, unmarshals them into
// Config and validates the result.
func LoadConfig() (*Config, error) {
	v := viper.New()
	log := logger.GetLogger()

	v.SetDefault("SERVER.ENVIRONMENT", EnvDevelopment)
	v.SetDefault("SERVER.PORT", "8080")
	v.SetDefault("SERVER.ALLOWED_ORIGINS", []string{"*"})
	v.SetDefault("SERVER.VERSION", "dev")
	v.SetDefault("SERVER.TRUSTED_PROXIES", []string{})
	v.SetDefault("DATABASE.HOST", "localhost")
	v.SetDefault("DATABASE.PORT", 5432)
	v.SetDefault("DATABASE.USER", "postgres")
	v.SetDefault("DATABASE.PASSWORD", "")
	v.SetDefault("DATABASE.NAME", "travel_timeline")
	v.SetDefault("DATABASE.SSL_MODE", "disable")
	v.SetDefault("DATABASE.MAX_OPEN_CONNS", 5)
	v.SetDefault("DATABASE.MAX_IDLE_CONNS", 2)
	v.SetDefault("DATABASE.CONN_MAX_LIFE", "1h")
	v.SetDefault("REDIS.ADDRESS", "localhost:6379")
	v.SetDefault("REDIS.PASSWORD", "")
	v.SetDefault("REDIS.DB", 0)
	v.SetDefault("REDIS.USE_TLS", false)
	v.SetDefault("REDIS.POOL_SIZE", 3)
	v.SetDefault("REDIS.MIN_IDLE_CONNS", 1)
	v.SetDefault("STORE.TRIP_DRIVER", DriverMemory)
	v.SetDefault("STORE.PREFERENCES_DRIVER", DriverMemory)
	v.SetDefault("STORE.SEED_FILE", "")
	v.SetDefault("STORE.RUN_MIGRATIONS", true)
	v.SetDefault("METRICS.CONTINENTS", []string{})

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	envBindings := [][2]string{
		// Server config
		{"SERVER.ENVIRONMENT", "SERVER_ENVIRONMENT"},
		{"SERVER.PORT", "PORT"},
		{"SERVER.ALLOWED_ORIGINS", "ALLOWED_ORIGINS"},
		{"SERVER.VERSION", "VERSION"},
		{"SERVER.TRUSTED_PROXIES", "TRUSTED_PROXIES"},
		// Database config
		{"DATABASE.HOST", "DB_HOST"},
		{"DATABASE.PORT", "DB_PORT"},
		{"DATABASE.USER", "DB_USER"},
		{"DATABASE.PASSWORD", "DB_PASSWORD"},
		{"DATABASE.NAME", "DB_NAME"},
		{"DATABASE.SSL_MODE", "DB_SSL_MODE"},
		// Redis config
		{"REDIS.ADDRESS", "REDIS_ADDRESS"},
		{"REDIS.PASSWORD", "REDIS_PASSWORD"},
		{"REDIS.DB", "REDIS_DB"},
		{"REDIS.USE_TLS", "REDIS_USE_TLS"},
		// Store config
		{"STORE.TRIP_DRIVER", "STORE_DRIVER"},
		{"STORE.PREFERENCES_DRIVER", "PREFERENCES_DRIVER"},
		{"STORE.SEED_FILE", "SEED_FILE"},
		{"STORE.RUN_MIGRATIONS", "RUN_MIGRATIONS"},
		// Metrics config
		{"METRICS.CONTINENTS", "METRICS_CONTINENTS"},
	}

	if err := bindEnvVars(v, envBindings); err != nil {
		return nil, err
	}

	log.Infow("Configuration loaded",
		"environment", v.GetString("SERVER.ENVIRONMENT"),
		"server_port", v.GetString("SERVER.PORT"),
		"trip_driver", v.GetString("STORE.TRIP_DRIVER"),
		"preferences_driver", v.GetString("STORE.PREFERENCES_DRIVER"),
		"allowed_origins", v.GetStringSlice("SERVER.ALLOWED_ORIGINS"),
	)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal failed: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	log.Info("Configuration validated successfully")
	return &cfg, nil
}

// validateConfig checks if the loaded configuration values are valid.
func validateConfig(cfg *Config) error {
	log := logger.GetLogger()

	if cfg.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if cfg.Server.Environment != EnvDevelopment && cfg.Server.Environment != EnvProduction {
		return fmt.Errorf("unknown environment %q", cfg.Server.Environment)
	}
	if !containsWildcard(cfg.Server.AllowedOrigins) {
		for _, origin := range cfg.Server.AllowedOrigins {
			if _, err := url.ParseRequestURI(origin); err != nil {
				return fmt.Errorf("invalid allowed origin '%s': %w", origin, err)
			}
		}
	}

	switch cfg.Store.TripDriver {
	case DriverMemory:
	case DriverPostgres:
		if cfg.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}
		if cfg.Database.User == "" {
			return fmt.Errorf("database user is required")
		}
		if cfg.Database.Name == "" {
			return fmt.Errorf("database name is required")
		}
		if cfg.Database.Password == "" {
			log.Warn("Database password is not set. Ensure this is intended (e.g., using trusted auth).")
		}
	default:
		return fmt.Errorf("unknown trip store driver %q (want %s or %s)", cfg.Store.TripDriver, DriverMemory, DriverPostgres)
	}

	switch cfg.Store.PreferencesDriver {
	case DriverMemory:
	case DriverRedis:
		if cfg.Redis.Address == "" {
			return fmt.Errorf("redis address is required")
		}
	default:
		return fmt.Errorf("unknown preferences store driver %q (want %s or %s)", cfg.Store.PreferencesDriver, DriverMemory, DriverRedis)
	}

	for _, pair := range cfg.Metrics.Continents {
		country, continent, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(country) == "" || strings.TrimSpace(continent) == "" {
			return fmt.Errorf("invalid continent mapping %q (want Country=Continent)", pair)
		}
	}

	return nil
}

// containsWildcard checks if the list of allowed origins contains the wildcard "*".
func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
