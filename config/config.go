package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Mode        string // "mcp" (stdio), "web" или "cli"
	WebAddr     string
	Username    string
	Password    string
	JWTSecret   string
	HistoryFile string
	OpenBrowser bool
}

func Load() *Config {
	// Загрузка .env файла
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		Mode:        getEnv("CALC_MODE", "mcp"),
		WebAddr:     getEnv("CALC_WEB_ADDR", ":8080"),
		Username:    getEnv("USERNAME", "user"),
		Password:    getEnv("PASSWORD", "123"),
		JWTSecret:   getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		HistoryFile: getEnv("CALC_HISTORY_FILE", "calculator_data.json"),
		OpenBrowser: getEnvAsBool("CALC_OPEN_BROWSER", true),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}
