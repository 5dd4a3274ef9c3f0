package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds application configuration
type Config struct {
	Port string

	DBDriver   string // sqlite or postgres
	DBName     string // sqlite file name, or postgres database name
	DBHost     string
	DBUser     string
	DBPassword string
	DBPort     string

	// ExchangeRate is the number of primary-currency units per one
	// secondary-currency unit (e.g. 2500 TZS per USD).
	ExchangeRate decimal.Decimal

	PrimaryCurrency   string
	SecondaryCurrency string
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "3000"),

		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBName:     getEnv("DB_NAME", "biztrack.db"),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBPort:     getEnv("DB_PORT", "5432"),

		ExchangeRate: getEnvDecimal("EXCHANGE_RATE", "2500"),

		PrimaryCurrency:   getEnv("PRIMARY_CURRENCY", "TZS"),
		SecondaryCurrency: getEnv("SECONDARY_CURRENCY", "USD"),
	}

	if AppConfig.ExchangeRate.LessThanOrEqual(decimal.Zero) {
		log.Fatalf("EXCHANGE_RATE must be positive, got %s", AppConfig.ExchangeRate)
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvDecimal retrieves an environment variable as a decimal or returns the default
func getEnvDecimal(key, defaultValue string) decimal.Decimal {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to decimal: %v", key, err)
		d, _ = decimal.NewFromString(defaultValue)
	}
	return d
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
