package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr       string
	GinMode       string
	DBDSN         string
	RedisAddr     string
	RedisPassword string
	BackendAPIURL string
	JWTSecret     string
	SessionTTL    time.Duration
}

func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Println("File .env tidak ditemukan, pakai environment sistem")
	}

	appAddr := getEnv("APP_ADDR", ":8081")

	dsn := getEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/travel_app?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s")

	ttl := 30 * time.Minute
	if raw := getEnv("SESSION_TTL", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			ttl = d
		} else {
			log.Printf("SESSION_TTL tidak valid (%q), pakai default %s", raw, ttl)
		}
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       getEnv("GIN_MODE", ""),
		DBDSN:         dsn,
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		BackendAPIURL: getEnv("BACKEND_API_URL", "http://127.0.0.1:8080"),
		JWTSecret:     getEnv("JWT_SECRET", "super-secret-key-change-me"),
		SessionTTL:    ttl,
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
