package config

import (
	"fmt"
	"os"
)

// Supported document store drivers.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

const defaultSecret = "default-secret-key-change-me"

type Config struct {
	Port          string
	GinMode       string
	LogLevel      string
	StoreDriver   string
	MongoURI      string
	MongoDB       string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	JWTSecret     string
	SessionSecret string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		StoreDriver:   getEnv("STORE_DRIVER", DriverMongo),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "clubs-events"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "clubs"),
		DBPassword:    getEnv("DB_PASSWORD", "clubs"),
		DBName:        getEnv("DB_NAME", "clubs_events"),
		JWTSecret:     getEnv("JWT_SECRET", defaultSecret),
		SessionSecret: getEnv("SESSION_SECRET", defaultSecret),
	}
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case DriverMongo, DriverPostgres, DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}

	if c.IsRelease() {
		if c.JWTSecret == defaultSecret {
			return fmt.Errorf("JWT_SECRET must be set in release mode")
		}
		if c.SessionSecret == defaultSecret {
			return fmt.Errorf("SESSION_SECRET must be set in release mode")
		}
	}

	return nil
}

// IsRelease reports whether gin runs in release mode.
func (c *Config) IsRelease() bool {
	return c.GinMode == "release"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
