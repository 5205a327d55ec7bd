package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultListenAddr = ":8080"
	defaultLogMaxSize = 50 // megabytes
	defaultLogBackups = 3
	defaultLogMaxAge  = 28 // days
)

type Config struct {
	// database path
	DatabasePath string

	// HTTP listen address, e.g. ":8080"
	ListenAddr string

	// CORS origins allowed to call the API
	AllowedOrigins []string

	// log file configuration; LogPath empty means stdout only
	LogPath       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int
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
	dbPath := getEnvOrDefault("DATABASE_PATH", "catalog.db")
	absDBPath, err := filepath.Abs(dbPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute path for database '%s': %w", dbPath, err)
	}

	origins := strings.Split(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:5173"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	cfg := Config{
		DatabasePath:   absDBPath,
		ListenAddr:     getEnvOrDefault("LISTEN_ADDR", defaultListenAddr),
		AllowedOrigins: origins,
		LogPath:        getEnvOrDefault("LOG_PATH", ""),
		LogMaxSizeMB:   getEnvIntOrDefault("LOG_MAX_SIZE_MB", defaultLogMaxSize),
		LogMaxBackups:  getEnvIntOrDefault("LOG_MAX_BACKUPS", defaultLogBackups),
		LogMaxAgeDays:  getEnvIntOrDefault("LOG_MAX_AGE_DAYS", defaultLogMaxAge),
	}

	return cfg, nil
}
