package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppMode string `env:"APP_MODE" envDefault:"dev"`
	Port    string `env:"PORT" envDefault:"3000"`

	API      APIConfig
	Session  SessionConfig
	Redis    RedisConfig `envPrefix:"REDIS_"`
	Database DatabaseConfig
	Cookie   CookieConfig

	// AuthGuardStrict makes the authentication guard redirect on an invalid
	// credential instead of passing through
	AuthGuardStrict bool   `env:"AUTH_GUARD_STRICT" envDefault:"false"`
	GoldRateRefresh string `env:"GOLD_RATE_REFRESH" envDefault:"@every 15m"`
	AllowedOrigins  string `env:"ALLOWED_ORIGINS"`
}

// APIConfig holds the loan backend connection settings
type APIConfig struct {
	BaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:8080/api"`
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`
}

// SessionConfig holds session storage configuration
type SessionConfig struct {
	Storage     string `env:"SESSION_STORAGE" envDefault:"memory"`
	TTLHours    int    `env:"SESSION_TTL_HOURS" envDefault:"24"`
	IdleMinutes int    `env:"SESSION_IDLE_MINUTES" envDefault:"30"`
}

// RedisConfig holds redis configuration (SESSION_STORAGE=redis)
type RedisConfig struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

// DatabaseConfig holds database configuration (SESSION_STORAGE=mysql)
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"3306"`
	User     string `env:"DB_USER" envDefault:"root"`
	Password string `env:"DB_PASS"`
	DBName   string `env:"DB_NAME" envDefault:"goldloan_portal"`
}

// CookieConfig holds session cookie configuration
type CookieConfig struct {
	Secure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	SameSite string `env:"COOKIE_SAMESITE" envDefault:"Lax"`
	Domain   string `env:"COOKIE_DOMAIN"`
}

// Storage backends
const (
	StorageMemory = "memory"
	StorageRedis  = "redis"
	StorageMySQL  = "mysql"
)

// Global config instance
var AppConfig *Config

// Load reads configuration from .env files and environment variables
func Load(envFiles ...string) (*Config, error) {
	// Load .env file (ignore error if file doesn't exist in production)
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	config, err := Parse()
	if err != nil {
		return nil, err
	}

	// Set global config
	AppConfig = config

	log.Printf("✅ Configuration loaded successfully [MODE: %s, STORAGE: %s]", config.AppMode, config.Session.Storage)
	return config, nil
}

// Parse builds the config from the current environment only
func Parse() (*Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	// Trim spaces for Windows compatibility
	config.AppMode = strings.TrimSpace(config.AppMode)
	if config.AppMode != "dev" && config.AppMode != "prod" {
		return nil, fmt.Errorf("invalid APP_MODE: '%s' (must be 'dev' or 'prod')", config.AppMode)
	}

	// Database settings follow the mode prefix
	prefix := "DEV_"
	if config.AppMode == "prod" {
		prefix = "PROD_"
	}
	if err := env.ParseWithOptions(&config.Database, env.Options{Prefix: prefix}); err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	config.Session.Storage = strings.ToLower(strings.TrimSpace(config.Session.Storage))
	switch config.Session.Storage {
	case StorageMemory, StorageRedis, StorageMySQL:
	default:
		return nil, fmt.Errorf("invalid SESSION_STORAGE: '%s' (must be memory, redis or mysql)", config.Session.Storage)
	}

	config.API.BaseURL = strings.TrimRight(strings.TrimSpace(config.API.BaseURL), "/")
	if config.API.BaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL must not be empty")
	}
	if config.API.Timeout < 0 {
		config.API.Timeout = 0
	}
	if config.Session.TTLHours <= 0 {
		config.Session.TTLHours = 24
	}
	if config.Session.IdleMinutes <= 0 {
		config.Session.IdleMinutes = 30
	}

	return &config, nil
}

// IsDev returns true if running in development mode
func (c *Config) IsDev() bool {
	return c.AppMode == "dev"
}

// IsProd returns true if running in production mode
func (c *Config) IsProd() bool {
	return c.AppMode == "prod"
}

// SessionTTL is how long a stored credential slot lives
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Session.TTLHours) * time.Hour
}

// SessionIdle is how long an unused session stays in memory
func (c *Config) SessionIdle() time.Duration {
	return time.Duration(c.Session.IdleMinutes) * time.Minute
}

// GetAllowedOrigins returns allowed origins for CORS
func (c *Config) GetAllowedOrigins() string {
	if c.AllowedOrigins == "" {
		if c.IsDev() {
			return "*"
		}
		return "http://localhost:3000"
	}
	return c.AllowedOrigins
}
