package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config is loaded once at startup and passed explicitly to the router and
// services; nothing reads the environment after Load returns.
type Config struct {
	Port string
	Env  string // development|production

	MongoURI      string
	MongoDatabase string

	JWTSecret string
	JWTTTL    time.Duration

	// Trailing lookback bound for the streak computation, in days.
	StreakWindowDays int

	// Token-bucket parameters for the /auth rate limiter, per client IP.
	AuthRateRPS   float64
	AuthRateBurst int

	// Optional S3 avatar uploads. Disabled when Bucket is empty.
	AWSRegion string
	S3Bucket  string

	LogLevel string
	LogJSON  bool
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file found, using system environment")
	}

	cfg := &Config{
		Port:             envOr("PORT", "8080"),
		Env:              envOr("ENV", "development"),
		MongoURI:         envOr("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    envOr("MONGO_DB", "fitpro"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTTTL:           time.Duration(envIntOr("JWT_TTL_HOURS", 24)) * time.Hour,
		StreakWindowDays: envIntOr("STREAK_WINDOW_DAYS", 60),
		AuthRateRPS:      envFloatOr("AUTH_RATE_RPS", 5),
		AuthRateBurst:    envIntOr("AUTH_RATE_BURST", 10),
		AWSRegion:        envOr("AWS_REGION", "us-east-1"),
		S3Bucket:         os.Getenv("S3_BUCKET"),
		LogLevel:         envOr("LOG_LEVEL", "info"),
		LogJSON:          envOr("LOG_JSON", "false") == "true",
	}

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is not set")
	}

	return cfg
}

// IsProduction gates verbose error output.
func (c *Config) IsProduction() bool { return c.Env == "production" }

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.Warnf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func envFloatOr(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		logrus.Warnf("invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}
