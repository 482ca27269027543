package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	defaultDatabasePath       = "site.db"
	defaultDBLogLevel         = "warn"
	defaultMaxOpenConns       = 100
	defaultMaxIdleConns       = 10
	defaultConnMaxLifetimeMin = 60
)

type Config struct {
	// database selection
	DatabaseDriver string // sqlite or postgres
	DatabasePath   string // sqlite file or DSN, used when DatabaseDriver is sqlite
	DatabaseDSN    string // postgres connection string, used when DatabaseDriver is postgres

	// GORM logging: silent, error, warn or info
	DBLogLevel string

	// connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	driver := strings.ToLower(getEnvOrDefault("DATABASE_DRIVER", DriverSQLite))

	cfg := Config{
		DatabaseDriver:  driver,
		DBLogLevel:      strings.ToLower(getEnvOrDefault("DB_LOG_LEVEL", defaultDBLogLevel)),
		MaxOpenConns:    getEnvIntOrDefault("DB_MAX_OPEN_CONNS", defaultMaxOpenConns),
		MaxIdleConns:    getEnvIntOrDefault("DB_MAX_IDLE_CONNS", defaultMaxIdleConns),
		ConnMaxLifetime: time.Duration(getEnvIntOrDefault("DB_CONN_MAX_LIFETIME_MINUTES", defaultConnMaxLifetimeMin)) * time.Minute,
	}

	switch driver {
	case DriverSQLite:
		dbPath := getEnvOrDefault("DATABASE_PATH", defaultDatabasePath)
		// URIs and the in-memory name are handed to the driver untouched
		if dbPath != ":memory:" && !strings.HasPrefix(dbPath, "file:") {
			absPath, err := filepath.Abs(dbPath)
			if err != nil {
				return Config{}, fmt.Errorf("failed to get absolute path for database '%s': %w", dbPath, err)
			}
			dbPath = absPath
		}
		cfg.DatabasePath = dbPath
	case DriverPostgres:
		cfg.DatabaseDSN = os.Getenv("DATABASE_DSN")
		if cfg.DatabaseDSN == "" {
			return Config{}, fmt.Errorf("DATABASE_DSN is required when DATABASE_DRIVER is %s", DriverPostgres)
		}
	default:
		return Config{}, fmt.Errorf("unsupported DATABASE_DRIVER '%s' (want %s or %s)", driver, DriverSQLite, DriverPostgres)
	}

	switch cfg.DBLogLevel {
	case "silent", "error", "warn", "info":
	default:
		log.Printf("Warning: Invalid DB_LOG_LEVEL '%s'. Using default %s.", cfg.DBLogLevel, defaultDBLogLevel)
		cfg.DBLogLevel = defaultDBLogLevel
	}

	return cfg, nil
}
