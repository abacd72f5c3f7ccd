package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at startup
type Config struct {
	Port              string
	GinMode           string
	PublicBaseURL     string
	UserServiceURL    string
	PreferenceTimeout time.Duration

	DBDriver    string
	DBPath      string
	DatabaseURL string

	UploadDir      string
	MaxUploadBytes int64
	SeedCategories bool

	RabbitMQURL    string
	EventsExchange string

	// JWTSecret enables the admin guard when non-empty
	JWTSecret   []byte
	CORSOrigins []string
}

// Load reads .env (if present) and the process environment
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:              getEnv("BUSINESS_PORT", getEnv("PORT", "3003")),
		GinMode:           os.Getenv("GIN_MODE"),
		PublicBaseURL:     strings.TrimRight(getEnv("BUSINESS_SERVICE_URL", "http://localhost:3003"), "/"),
		UserServiceURL:    strings.TrimRight(getEnv("USER_SERVICE_URL", "http://localhost:3002"), "/"),
		PreferenceTimeout: getDuration("PREFERENCE_TIMEOUT", 3*time.Second),
		DBDriver:          getEnv("DB_DRIVER", "sqlite"),
		DBPath:            getEnv("DB_PATH", "business.db"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		UploadDir:         getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:    getInt64("MAX_UPLOAD_BYTES", 5<<20),
		SeedCategories:    getBool("SEED_CATEGORIES", true),
		RabbitMQURL:       os.Getenv("RABBITMQ_URL"),
		EventsExchange:    getEnv("EVENTS_EXCHANGE", "business.events"),
		JWTSecret:         []byte(os.Getenv("JWT_SECRET")),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

// DefaultLogoURL is stored for businesses registered without a logo
func (c Config) DefaultLogoURL() string {
	return c.PublicBaseURL + "/uploads/logo/default-business-logo.png"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if b, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return b
	}
	return fallback
}

func getInt64(key string, fallback int64) int64 {
	if n, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil && n > 0 {
		return n
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
