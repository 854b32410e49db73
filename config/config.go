// Package config loads the server settings from the environment, with a
// .env file as an optional source.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP  string // Host IP for the server
	Port    int    // Port for the REST API
	GinMode string // Mode for the Gin framework (release, debug, test)
}

// Load reads the configuration from the environment. Every value has a
// default suitable for a local arena, so a missing .env is fine.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:  getEnvWithDefault("HOST_IP", "127.0.0.1"),
		Port:    getEnvAsIntWithDefault("PORT", 8080),
		GinMode: getEnvWithDefault("GIN_MODE", "release"),
	}
}

// getEnvWithDefault retrieves an environment variable or falls back.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable,
// falling back on a missing or malformed value.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be an integer, using %d: %v",
			key, defaultValue, err)

		return defaultValue
	}

	return value
}
