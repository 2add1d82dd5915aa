package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the authoring tools.
type Config struct {
	Content ContentConfig
	Redis   RedisConfig
}

// ContentConfig holds content discovery paths.
type ContentConfig struct {
	// BaseDataPath is the directory holding core game content files
	BaseDataPath string

	// CampaignPath is the directory holding campaign override files (optional)
	CampaignPath string
}

// RedisConfig holds Redis-specific configuration for the campaign store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Content: ContentConfig{
			BaseDataPath: getEnvOrDefault("ANTARES_DATA_PATH", "data"),
			CampaignPath: os.Getenv("ANTARES_CAMPAIGN_PATH"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
