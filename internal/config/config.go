package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type StoreConfig struct {
	// SettingsPath is the SQLite file holding the saved store profile.
	SettingsPath string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() *Config {
	// A local .env is optional; the environment always wins.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("SETTINGS_PATH", "techparts.db")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "")

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Store: StoreConfig{
			SettingsPath: viper.GetString("SETTINGS_PATH"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
	}
}

func splitOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
