package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database    DatabaseConfig
	API         APIConfig
	Reservation ReservationConfig
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// APIConfig holds API server configuration
type APIConfig struct {
	Port int
}

// ReservationConfig holds reservation behavior configuration
type ReservationConfig struct {
	// StrictDates rejects unparseable reservation times with a validation
	// error. When off, bad input coerces to the "invalid date" sentinel.
	StrictDates bool
}

// Load reads configuration from the environment, with a .env file as a
// fallback for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	apiPort, err := strconv.Atoi(getEnv("API_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_PORT: %w", err)
	}

	strictDates, err := strconv.ParseBool(getEnv("RESERVATION_STRICT_DATES", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid RESERVATION_STRICT_DATES: %w", err)
	}

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "lunchly"),
			Password: getEnv("DB_PASSWORD", "lunchly"),
			DBName:   getEnv("DB_NAME", "lunchly"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		API: APIConfig{
			Port: apiPort,
		},
		Reservation: ReservationConfig{
			StrictDates: strictDates,
		},
	}, nil
}

// DSN returns the database connection string
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
