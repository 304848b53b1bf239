package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"chatsearch/internal/dataset"

	"github.com/joho/godotenv"
)

// Dataset sources
const (
	SourceCSV      = "csv"
	SourcePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Dataset    DatasetConfig
	PostgreSQL PostgreSQLConfig
	Redis      RedisConfig
	Search     SearchConfig
	Logging    LoggingConfig

	// Warnings lists environment values that were ignored in favour of defaults
	Warnings []string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
	WebDir         string
	AccessLog      bool
}

// DatasetConfig holds dataset source and defaulting rules
type DatasetConfig struct {
	Source          string // csv or postgres
	DataDir         string
	DefaultCity     string
	DefaultBHKTypes string
	DefaultMinPrice float64
	DefaultMaxPrice float64
}

// PostgreSQLConfig holds PostgreSQL database configuration
type PostgreSQLConfig struct {
	DSN                string
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
}

// RedisConfig holds response cache configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
	Enabled  bool
}

// SearchConfig holds search-related configuration
type SearchConfig struct {
	DefaultMaxResults int
	MaxResultsLimit   int
}

// Limit applies the default to a non-positive request and caps it at the limit
func (c SearchConfig) Limit(requested int) int {
	if requested <= 0 {
		requested = c.DefaultMaxResults
	}
	if requested > c.MaxResultsLimit {
		requested = c.MaxResultsLimit
	}
	return requested
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	env := &envReader{}
	cfg := &Config{
		Server: ServerConfig{
			Port:           env.getEnvAsInt("SERVER_PORT", 8000),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			WebDir:         getEnv("WEB_DIR", "./web/dist"),
			AccessLog:      env.getEnvAsBool("SERVER_ACCESS_LOG", true),
		},
		Dataset: DatasetConfig{
			Source:          strings.ToLower(getEnv("DATASET_SOURCE", SourceCSV)),
			DataDir:         getEnv("DATA_DIR", "./data"),
			DefaultCity:     getEnv("DATASET_DEFAULT_CITY", "Mumbai"),
			DefaultBHKTypes: getEnv("DATASET_DEFAULT_BHK_TYPES", "1BHK,2BHK,3BHK"),
			DefaultMinPrice: env.getEnvAsFloat("DATASET_DEFAULT_MIN_PRICE", 500000),
			DefaultMaxPrice: env.getEnvAsFloat("DATASET_DEFAULT_MAX_PRICE", 1500000),
		},
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               env.getEnvAsInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "nobrokerage"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     env.getEnvAsInt("PG_MAX_CONNECTIONS", 5),
			MaxIdleConnections: env.getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 2),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       env.getEnvAsInt("REDIS_DB", 0),
			Prefix:   getEnv("REDIS_PREFIX", "chatsearch:"),
			TTL:      time.Duration(env.getEnvAsInt("REDIS_TTL_SECONDS", 600)) * time.Second,
			Enabled:  getEnv("REDIS_ADDR", "") != "",
		},
		Search: SearchConfig{
			DefaultMaxResults: env.getEnvAsInt("SEARCH_DEFAULT_MAX_RESULTS", 20),
			MaxResultsLimit:   env.getEnvAsInt("SEARCH_MAX_RESULTS_LIMIT", 100),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	cfg.Warnings = env.warnings

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with
func (c *Config) Validate() error {
	switch c.Dataset.Source {
	case SourceCSV, SourcePostgres:
	default:
		return fmt.Errorf("invalid DATASET_SOURCE %q: must be %q or %q", c.Dataset.Source, SourceCSV, SourcePostgres)
	}
	if c.Search.DefaultMaxResults <= 0 {
		return fmt.Errorf("SEARCH_DEFAULT_MAX_RESULTS must be positive, got %d", c.Search.DefaultMaxResults)
	}
	if c.Search.MaxResultsLimit < c.Search.DefaultMaxResults {
		return fmt.Errorf("SEARCH_MAX_RESULTS_LIMIT (%d) is below SEARCH_DEFAULT_MAX_RESULTS (%d)",
			c.Search.MaxResultsLimit, c.Search.DefaultMaxResults)
	}
	return nil
}

// DatasetRules returns the defaulting rules applied while building the dataset
func (c *Config) DatasetRules() dataset.Rules {
	return dataset.Rules{
		DefaultCity:     c.Dataset.DefaultCity,
		DefaultBHKTypes: c.Dataset.DefaultBHKTypes,
		DefaultMinPrice: c.Dataset.DefaultMinPrice,
		DefaultMaxPrice: c.Dataset.DefaultMaxPrice,
	}
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.PostgreSQL.DSN != "" {
		return c.PostgreSQL.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgreSQL.Host,
		c.PostgreSQL.Port,
		c.PostgreSQL.User,
		c.PostgreSQL.Password,
		c.PostgreSQL.Database,
		c.PostgreSQL.SSLMode,
	)
}

// Helper functions

// envReader reads typed environment values and records the ones it rejects
type envReader struct {
	warnings []string
}

func (e *envReader) warn(key, kind, value string, defaultValue any) {
	e.warnings = append(e.warnings,
		fmt.Sprintf("invalid %s value %q for %s, using default %v", kind, value, key, defaultValue))
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (e *envReader) getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		e.warn(key, "integer", valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func (e *envReader) getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		e.warn(key, "float", valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func (e *envReader) getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		e.warn(key, "boolean", valueStr, defaultValue)
		return defaultValue
	}
	return value
}
