package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Database. Empty means run from the built-in catalog fixtures
	// with no booking persistence (local development without Postgres).
	DatabaseURL string

	// Redis (optional)
	RedisURL        string
	CatalogCacheTTL time.Duration

	// Admin auth
	JWTSecret   string
	AdminJWTTTL time.Duration

	// Bootstrap admin, used by cmd/seed and the fixtures mode
	AdminEmail    string
	AdminPassword string

	// CORS
	AllowedOrigins []string

	// Media storage (S3/MinIO). Empty bucket means local disk.
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string
	MediaDir    string
	MediaURL    string

	// Email (SendGrid)
	SendGridAPIKey string
	EmailFrom      string
	EmailFromName  string

	// Reservation partner (remote coupon validation)
	PartnerBaseURL        string
	PartnerToken          string
	PartnerTimeoutSeconds int

	// Coupon strategy: "local" or "remote"
	CouponStrategy string

	// Logging
	LogLevel string
}

func Load() *Config {
	// Load .env file in development
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		// Server
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", ""),

		// Redis
		RedisURL:        getEnv("REDIS_URL", ""),
		CatalogCacheTTL: parseDuration(getEnv("CATALOG_CACHE_TTL", "5m"), 5*time.Minute),

		// Admin auth
		JWTSecret:   getEnv("JWT_SECRET", "super-secret-key-change-me"),
		AdminJWTTTL: parseDuration(getEnv("ADMIN_JWT_TTL", "24h"), 24*time.Hour),

		// Bootstrap admin
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@plumeriaretreat.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		// CORS
		AllowedOrigins: parseStringSlice(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),

		// Media storage
		S3Endpoint:  getEnv("S3_ENDPOINT", ""),
		S3Region:    getEnv("S3_REGION", "us-east-1"),
		S3AccessKey: getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("S3_SECRET_KEY", ""),
		S3Bucket:    getEnv("S3_BUCKET", ""),
		S3PublicURL: getEnv("S3_PUBLIC_URL", ""),
		MediaDir:    getEnv("MEDIA_DIR", "./media"),
		MediaURL:    getEnv("MEDIA_URL", "/media"),

		// Email
		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		EmailFrom:      getEnv("EMAIL_FROM", "bookings@plumeriaretreat.com"),
		EmailFromName:  getEnv("EMAIL_FROM_NAME", "Plumeria Retreat"),

		// Reservation partner
		PartnerBaseURL:        getEnv("PARTNER_BASE_URL", ""),
		PartnerToken:          getEnv("PARTNER_TOKEN", ""),
		PartnerTimeoutSeconds: parseInt(getEnv("PARTNER_TIMEOUT_SECONDS", "10"), 10),

		// Coupons
		CouponStrategy: getEnv("COUPON_STRATEGY", "local"),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "debug"),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return defaultValue
	}
	return d
}

func parseInt(s string, defaultValue int) int {
	value, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return value
}

func parseStringSlice(s string) []string {
	if s == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
