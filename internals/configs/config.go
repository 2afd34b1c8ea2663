package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret  string
	AppBaseURL string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found, using system ENV")
		}
	}

	JWTSecret = GetEnv("JWT_SECRET")
	AppBaseURL = GetEnv("APP_BASE_URL", "http://localhost:3000")

	if JWTSecret == "" {
		log.Println("JWT_SECRET is not set, admin routes will reject all tokens")
	}
	if GetEnv("CASHFREE_CLIENT_ID") == "" {
		log.Println("CASHFREE_CLIENT_ID is not set")
	}
	if GetEnv("CASHFREE_WEBHOOK_SECRET") == "" {
		log.Println("CASHFREE_WEBHOOK_SECRET is not set, webhooks will be rejected")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
