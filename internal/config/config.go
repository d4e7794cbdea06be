package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI   string
	MongoDB    string
	RedisAddr  string
	RedisPass  string
	JWTSecret  string
	JWTTTL     time.Duration
	HTTPPort   string
	CORSOrigin string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:    getEnv("MONGO_DB", "bookhub"),
		RedisAddr:  getEnv("REDIS_ADDR", ""),
		RedisPass:  getEnv("REDIS_PASSWORD", ""),
		JWTSecret:  getEnv("JWT_SECRET", "super-secret"),
		JWTTTL:     time.Duration(getEnvInt("JWT_TTL_HOURS", 168)) * time.Hour,
		HTTPPort:   getEnv("HTTP_PORT", "8080"),
		CORSOrigin: getEnv("CORS_ORIGIN", "*"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s not set, using default", key)
		return def
	}
	return v
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s=%q is not a number, using %d", key, v, def)
		return def
	}
	return n
}
