package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backends selectable via STORAGE_BACKEND.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	Development bool
	// API configuration
	APIPort int

	// Storage configuration. The memory backend is the default tier and
	// loses all data on restart.
	StorageBackend string
	// Postgres configuration (used when StorageBackend is postgres)
	PostgresUser     string
	PostgresPassword string
	PostgresHost     string
	PostgresPort     int
	PostgresDB       string

	// Operator notification configuration. Channels without credentials
	// stay disabled.
	TelegramBotToken  string
	TelegramOpsChatID string

	// SMTP configuration
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPSender   string
	OpsEmail     string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Development: getEnvAsBool("DEVELOPMENT", false),
		APIPort:     getEnvAsInt("API_PORT", 5000),

		StorageBackend:   getEnv("STORAGE_BACKEND", StorageMemory),
		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnvAsInt("POSTGRES_PORT", 5432),
		PostgresDB:       getEnv("POSTGRES_DB", "stakeforge"),

		TelegramBotToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramOpsChatID: getEnv("TELEGRAM_OPS_CHAT_ID", ""),

		SMTPHost:     getEnv("SMTP_HOST", "smtp.example.com"),
		SMTPPort:     getEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPSender:   getEnv("SMTP_SENDER", ""),
		OpsEmail:     getEnv("OPS_EMAIL", ""),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are properly set
func (c *Config) Validate() error {
	if c.StorageBackend != StorageMemory && c.StorageBackend != StoragePostgres {
		return fmt.Errorf("STORAGE_BACKEND must be %q or %q, got %q", StorageMemory, StoragePostgres, c.StorageBackend)
	}

	if c.StorageBackend == StoragePostgres {
		if c.PostgresDB == "" {
			return fmt.Errorf("POSTGRES_DB is required for the postgres backend")
		}
		if c.PostgresHost == "" {
			return fmt.Errorf("POSTGRES_HOST is required for the postgres backend")
		}
	}

	if c.TelegramBotToken != "" && c.TelegramOpsChatID == "" {
		return fmt.Errorf("TELEGRAM_OPS_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}

	if c.SMTPUser != "" {
		if c.SMTPSender == "" {
			return fmt.Errorf("SMTP_SENDER is required when SMTP_USER is set")
		}
		if c.OpsEmail == "" {
			return fmt.Errorf("OPS_EMAIL is required when SMTP_USER is set")
		}
	}

	return nil
}

// TelegramEnabled reports whether the telegram ops channel is configured.
func (c *Config) TelegramEnabled() bool {
	return c.TelegramBotToken != ""
}

// EmailEnabled reports whether the email ops channel is configured.
func (c *Config) EmailEnabled() bool {
	return c.SMTPUser != ""
}

// Helper functions to read environment variables
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) int {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.Atoi(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}

func getEnvAsBool(name string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(name); exists {
		if value, err := strconv.ParseBool(valueStr); err == nil {
			return value
		}
	}
	return defaultValue
}
