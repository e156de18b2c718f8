package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server         ServerConfig
	Database       DatabaseConfig
	Currency       CurrencyConfig
	ProductService ProductServiceConfig
	ExchangeRate   ExchangeRateConfig
	CORS           CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CurrencyConfig holds the base currency all package totals are stored in
type CurrencyConfig struct {
	Base string
}

// ProductServiceConfig holds connection details for the external product
// directory. The directory requires basic authentication; credentials are
// supplied via environment and never logged.
type ProductServiceConfig struct {
	URL      string
	User     string
	Password string
}

// ExchangeRateConfig holds the endpoint of the public exchange rate service
type ExchangeRateConfig struct {
	URL string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			// Packages only live for the process lifetime; the default keeps
			// the whole store in memory.
			Path: getEnv("DB_PATH", ":memory:"),
		},
		Currency: CurrencyConfig{
			Base: getEnv("BASE_CURRENCY", "USD"),
		},
		ProductService: ProductServiceConfig{
			URL:      getEnv("PRODUCT_SERVICE_URL", "https://product-service.herokuapp.com/api/v1"),
			User:     getEnv("PRODUCT_SERVICE_USER", "user"),
			Password: getEnv("PRODUCT_SERVICE_PASSWORD", "pass"),
		},
		ExchangeRate: ExchangeRateConfig{
			URL: getEnv("EXCHANGE_RATE_URL", "https://www.frankfurter.app"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
