package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultPort                = "8080"
	DefaultSessionExpiryHours  = 24
	DefaultGeoLookupBaseURL    = "https://ipapi.co"
	DefaultGeoLookupTimeoutSec = 3
)

type Config struct {
	Env                 string
	Port                string
	DBURL               string
	JWTSecret           string
	SessionExpiryHours  int
	GeoLookupBaseURL    string
	GeoLookupTimeoutSec int
	SentryDSN           string
}

func Load() *Config {
	env := getEnv("ENV", "development")

	// Real env vars take precedence; godotenv only fills gaps.
	envFile := "config/.env.dev"
	if env == "production" {
		envFile = "config/.env.prod"
	}
	_ = godotenv.Load(envFile)

	return &Config{
		Env:                 env,
		Port:                getEnv("PORT", DefaultPort),
		DBURL:               mustGetEnv("DB_URL"),
		JWTSecret:           mustGetEnv("JWT_SECRET"),
		SessionExpiryHours:  getEnvAsInt("SESSION_EXPIRY_HOURS", DefaultSessionExpiryHours),
		GeoLookupBaseURL:    getEnv("GEO_LOOKUP_BASE_URL", DefaultGeoLookupBaseURL),
		GeoLookupTimeoutSec: getEnvAsInt("GEO_LOOKUP_TIMEOUT_SECONDS", DefaultGeoLookupTimeoutSec),
		SentryDSN:           getEnv("SENTRY_DSN", ""),
	}
}

func (c *Config) Production() bool {
	return c.Env == "production"
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func mustGetEnv(key string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	log.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
