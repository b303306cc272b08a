package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	DBPath          string
	Location        *time.Location // calendar days, streaks and bucket labels
	DefaultQuantity int

	// Optional analytics cache; empty RedisURL disables it.
	RedisURL          string
	AnalyticsCacheTTL time.Duration

	// Optional event publishing; empty RabbitMQURL disables it.
	RabbitMQURL   string
	EventExchange string
	EventWorkers  int
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:     mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:   mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:            getenvDefault("DB_PATH", "quizengine.db"),
		Location:          mustGetLocation("TIMEZONE"),
		DefaultQuantity:   getenvInt("DEFAULT_QUANTITY", 10),
		RedisURL:          os.Getenv("REDIS_URL"),
		AnalyticsCacheTTL: getenvDuration("ANALYTICS_CACHE_TTL", time.Minute),
		RabbitMQURL:       os.Getenv("RABBITMQ_URL"),
		EventExchange:     getenvDefault("EVENT_EXCHANGE", "quiz.events"),
		EventWorkers:      getenvInt("EVENT_WORKERS", 2),
	}
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

// mustGetLocation reads an IANA zone name. Unset means the host's zone.
func mustGetLocation(k string) *time.Location {
	v := getenvDefault(k, "Local")
	loc, err := time.LoadLocation(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid time zone: %v", k, v, err)
	}
	return loc
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getenvInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Fatalf("config: %s=%q is not a positive integer", k, v)
	}
	return n
}

func getenvDuration(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}
