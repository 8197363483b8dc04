package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppPort string
	AppEnv  string

	DbDriver  string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string
	DbPath    string

	JWTSecret string
	TokenTTL  time.Duration

	CorsAllowedOrigins []string
	LogLevel           string
	TranslationFolder  string
}

// LoadConfig reads .env (if present) and the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppPort:            getEnv("APP_PORT", "8080"),
		AppEnv:             getEnv("APP_ENV", "development"),
		DbDriver:           strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DbHost:             getEnv("DB_HOST", "localhost"),
		DbPort:             getEnv("DB_PORT", "5432"),
		DbUser:             getEnv("DB_USER", "eventboard"),
		DbPass:             getEnv("DB_PASS", "eventboard"),
		DbName:             getEnv("DB_NAME", "eventboard"),
		DbSSLMode:          getEnv("DB_SSLMODE", "disable"),
		DbPath:             getEnv("DB_PATH", "./data/eventboard.db"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		CorsAllowedOrigins: parseList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		TranslationFolder:  getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is missing")
	}
	if c.DbDriver != DriverPostgres && c.DbDriver != DriverSQLite {
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DbDriver)
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}
	return nil
}

// PostgresDSN builds the DSN the same way for every environment.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DbHost, c.DbUser, c.DbPass, c.DbName, c.DbPort, c.DbSSLMode,
	)
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}
	return items
}
