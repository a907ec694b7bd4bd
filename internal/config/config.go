package config

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const devSecret = "dev-only-secret"

type Config struct {
	Env            string
	Port           int
	JWTSecret      string
	JWTTTL         time.Duration
	AllowedOrigins []string
	OTLPEndpoint   string

	// auth endpoint rate limit
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present. In prod an explicit JWT_SECRET is
// required; the development fallback is never used there.
func Load() (Config, error) {
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "dev")
	port := getEnvInt("PORT", 8080)

	secret := os.Getenv("JWT_SECRET")

	if secret == "" {
		if env == "prod" {
			return Config{}, errors.New("JWT_SECRET must be set when APP_ENV=prod")
		}
		secret = devSecret
	}

	return Config{
		Env:            env,
		Port:           port,
		JWTSecret:      secret,
		JWTTTL:         getEnvDuration("JWT_TTL", 24*time.Hour),
		AllowedOrigins: splitCSV(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		OTLPEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		AuthRateLimit:  getEnvInt("AUTH_RATE_LIMIT", 20),
		AuthRateWindow: getEnvDuration("AUTH_RATE_WINDOW", time.Minute),
	}, nil
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err == nil {
			return num
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)

		if err == nil {
			return d
		}
	}
	return fallback
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
