package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	BotToken        string
	AdminPassword   string
	Storage         string
	DataFile        string
	CooldownSeconds int
	Database        DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cooldown, err := strconv.Atoi(getEnv("COOLDOWN_SECONDS", "300"))
	if err != nil || cooldown < 0 {
		return nil, fmt.Errorf("COOLDOWN_SECONDS must be a non-negative integer")
	}

	cfg := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		AdminPassword:   os.Getenv("ADMIN_PASSWORD"),
		Storage:         getEnv("STORAGE", StorageFile),
		DataFile:        getEnv("DATA_FILE", "glosor_words.json"),
		CooldownSeconds: cooldown,
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "glosor"),
			User:     getEnv("DB_USER", "glosor"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}

	switch cfg.Storage {
	case StorageFile:
		if cfg.DataFile == "" {
			return nil, fmt.Errorf("DATA_FILE is required for file storage")
		}
	case StoragePostgres:
		if cfg.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required for postgres storage")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE %q (want %q or %q)", cfg.Storage, StorageFile, StoragePostgres)
	}

	return cfg, nil
}

// CooldownWindow returns the re-exposure cooldown as a duration.
func (c *Config) CooldownWindow() time.Duration {
	return time.Duration(c.CooldownSeconds) * time.Second
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
