package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Port            string
	Origin          string
	Environment     string
	JWTSecret       string
	TokenTTLMinutes int
	Database        DatabaseConfig
	RateLimit       RateLimitConfig
}

// DatabaseConfig holds database connection details
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	DSN      string
}

// RateLimitConfig holds the per-route-class request budgets, keyed by client
// address at the middleware layer.
type RateLimitConfig struct {
	LoginPerMinute   int
	SignUpPerHour    int
	RecoverPerHour   int
	DefaultPerMinute int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	dbConfig := DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "3306"),
		Username: getEnv("DB_USERNAME", "root"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "vetclinic"),
	}

	// Build DSN (Data Source Name) for MySQL connection
	dbConfig.DSN = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		dbConfig.Username, dbConfig.Password, dbConfig.Host, dbConfig.Port, dbConfig.Name)

	tokenTTL, err := strconv.Atoi(getEnv("TOKEN_TTL_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL_MINUTES: %w", err)
	}

	rateLimit, err := loadRateLimitConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:            getEnv("PORT", "8000"),
		Origin:          getEnv("ORIGIN", "http://localhost:8501"),
		Environment:     getEnv("APP_ENV", "development"),
		JWTSecret:       getEnv("JWT_SECRET", "default_jwt_secret"),
		TokenTTLMinutes: tokenTTL,
		Database:        dbConfig,
		RateLimit:       rateLimit,
	}, nil
}

func loadRateLimitConfig() (RateLimitConfig, error) {
	var cfg RateLimitConfig
	var err error

	if cfg.LoginPerMinute, err = strconv.Atoi(getEnv("RATE_LIMIT_LOGIN_PER_MINUTE", "5")); err != nil {
		return cfg, fmt.Errorf("invalid RATE_LIMIT_LOGIN_PER_MINUTE: %w", err)
	}
	if cfg.SignUpPerHour, err = strconv.Atoi(getEnv("RATE_LIMIT_SIGNUP_PER_HOUR", "10")); err != nil {
		return cfg, fmt.Errorf("invalid RATE_LIMIT_SIGNUP_PER_HOUR: %w", err)
	}
	if cfg.RecoverPerHour, err = strconv.Atoi(getEnv("RATE_LIMIT_RECOVER_PER_HOUR", "3")); err != nil {
		return cfg, fmt.Errorf("invalid RATE_LIMIT_RECOVER_PER_HOUR: %w", err)
	}
	if cfg.DefaultPerMinute, err = strconv.Atoi(getEnv("RATE_LIMIT_DEFAULT_PER_MINUTE", "100")); err != nil {
		return cfg, fmt.Errorf("invalid RATE_LIMIT_DEFAULT_PER_MINUTE: %w", err)
	}

	return cfg, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
