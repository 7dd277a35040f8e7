package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Init loads .env and fails fast on the settings the process cannot run
// without.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	if os.Getenv("DB_DSN") == "" {
		Logger.Fatal("DB_DSN is not set")
	}
	if os.Getenv("REDIS_ADDR") == "" {
		Logger.Fatal("REDIS_ADDR is not set")
	}
	if os.Getenv("JWT_SECRET") == "" {
		Logger.Fatal("JWT_SECRET is not set")
	}
}

// SettleDelay is how long a payment stays PENDING before the activation
// worker may confirm it.
func SettleDelay() time.Duration {
	secs, err := strconv.Atoi(os.Getenv("SETTLE_DELAY_SECONDS"))
	if err != nil || secs < 0 {
		secs = 3
	}
	return time.Duration(secs) * time.Second
}

// BatchSize is the number of queue rows a worker drains per poll.
func BatchSize() int {
	n, err := strconv.Atoi(os.Getenv("BATCH_SIZE"))
	if err != nil || n <= 0 {
		return 100
	}
	return n
}
