package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	Server   ServerConfig
	CORS     CORSConfig
	Cookie   CookieConfig
	Storage  StorageConfig
	Admin    AdminConfig
}

type DatabaseConfig struct {
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	AutoMigrate bool
}

type JWTConfig struct {
	AccessSecret       string
	RefreshSecret      string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// CookieConfig controls the refresh token cookie. The defaults allow the
// cookie to be sent cross-site, which requires Secure.
type CookieConfig struct {
	Name     string
	Domain   string
	Secure   bool
	SameSite string
}

// StorageConfig describes the object storage bucket recipe images go to.
// Driver is either "minio" or "s3".
type StorageConfig struct {
	Driver        string
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	Bucket        string
	UseSSL        bool
	PublicBaseURL string
}

type AdminConfig struct {
	Name     string
	Email    string
	Password string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		Database: DatabaseConfig{
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "3306"),
			User:        getEnv("DB_USER", "root"),
			Password:    getEnv("DB_PASSWORD", ""),
			Database:    getEnv("DB_NAME", "recipe_sharing"),
			AutoMigrate: parseBool(getEnv("DB_AUTO_MIGRATE", "true")),
		},
		JWT: JWTConfig{
			AccessSecret:       getEnv("ACCESS_TOKEN_SECRET", "your-access-secret-key"),
			RefreshSecret:      getEnv("REFRESH_TOKEN_SECRET", "your-refresh-secret-key"),
			AccessTokenExpiry:  parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "10m"), 10*time.Minute),
			RefreshTokenExpiry: parseDuration(getEnv("REFRESH_TOKEN_EXPIRY", "168h"), 7*24*time.Hour),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "3000"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		},
		Cookie: CookieConfig{
			Name:     getEnv("REFRESH_COOKIE_NAME", "refreshToken"),
			Domain:   getEnv("REFRESH_COOKIE_DOMAIN", ""),
			Secure:   parseBool(getEnv("REFRESH_COOKIE_SECURE", "true")),
			SameSite: getEnv("REFRESH_COOKIE_SAMESITE", "none"),
		},
		Storage: StorageConfig{
			Driver:        getEnv("STORAGE_DRIVER", "minio"),
			Endpoint:      getEnv("STORAGE_ENDPOINT", "localhost:9000"),
			Region:        getEnv("STORAGE_REGION", "us-east-1"),
			AccessKey:     getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey:     getEnv("STORAGE_SECRET_KEY", ""),
			Bucket:        getEnv("BUCKET_NAME", "recipe-images"),
			UseSSL:        parseBool(getEnv("STORAGE_USE_SSL", "false")),
			PublicBaseURL: getEnv("STORAGE_PUBLIC_BASE_URL", ""),
		},
		Admin: AdminConfig{
			Name:     getEnv("ADMIN_NAME", "Administrator"),
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		slog.Warn("invalid duration format, using default", "value", s, "default", fallback)
		return fallback
	}
	return duration
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
