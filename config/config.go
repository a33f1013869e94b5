// Package config provides configuration management for the account service.
// It handles loading and validation of configuration values from environment
// variables, with support for required variables, default values, and
// collective error reporting. The resulting AppConfig is passed explicitly
// into the components that need it; nothing reads the environment after
// startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// EnvProduction selects the production secret-handling rules.
	EnvProduction = "production"

	// devFallbackSecret signs tokens when no JWT_SECRET is configured outside
	// production. Production refuses to start without an explicit secret.
	devFallbackSecret = "dev-secret-key"
)

// PoolConfig represents configuration for the database connection pool.
type PoolConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	MaxSize  int
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret     string        // Secret key for signing session tokens
	Environment   string        // "production" or a development environment name
	TokenDuration time.Duration // Lifetime of issued session tokens
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port string // Port for the HTTP server
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	DB     *PoolConfig
	Auth   *AuthConfig
	Server *ServerConfig
}

// getRequiredEnv returns the value of a required environment variable,
// appending to the errors slice when it is not set.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

// getOptionalEnv returns the value of an optional environment variable,
// or defaultValue when it is not set.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getOptionalEnvInt parses an optional environment variable as an int.
// Uses defaultValue if not set; appends an error if parsing fails.
func getOptionalEnvInt(key string, defaultValue int, errors *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

// getOptionalEnvDuration parses an optional environment variable as a
// time.Duration ("15m", "168h"). Uses defaultValue if not set; appends an
// error if parsing fails.
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool size within reasonable bounds.
func clampPoolSize(size int, varName string, errors *[]string) int {
	if size < 2 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is less than minimum 2, clamping to 2", varName, size))
		return 2
	}
	if size > 100 {
		*errors = append(*errors, fmt.Sprintf("pool size for %s (%d) is greater than maximum 100, clamping to 100", varName, size))
		return 100
	}
	return size
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading
// and returns a single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	var errors []string

	// Database configuration
	dbUser := getRequiredEnv("DB_USER", &errors)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errors)
	dbName := getRequiredEnv("DB_NAME", &errors)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errors)
	poolSize := clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errors), "DB_POOL_SIZE", &errors)

	dbConfig := &PoolConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		MaxSize:  poolSize,
	}

	// Auth configuration.
	// The signing secret is mandatory in production. Elsewhere a development
	// fallback keeps the service bootable without any secret configured.
	environment := getOptionalEnv("APP_ENV", "development")
	jwtSecret := ""
	if environment == EnvProduction {
		jwtSecret = getRequiredEnv("JWT_SECRET", &errors)
	} else {
		jwtSecret = getOptionalEnv("JWT_SECRET", devFallbackSecret)
	}
	// Session tokens live for 7 days unless overridden.
	tokenDuration := getOptionalEnvDuration("SESSION_TOKEN_DURATION", 168*time.Hour, &errors)

	authConfig := &AuthConfig{
		JWTSecret:     jwtSecret,
		Environment:   environment,
		TokenDuration: tokenDuration,
	}

	// Server configuration
	serverConfig := &ServerConfig{
		Port: getOptionalEnv("PORT", "8080"),
	}

	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		DB:     dbConfig,
		Auth:   authConfig,
		Server: serverConfig,
	}, nil
}
