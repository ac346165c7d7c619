package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv reads the .env file when one exists. Container deployments
// ship without it and run on plain environment variables.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}
}

// GetEnv returns the variable value, or the fallback when it is unset
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// MustGetEnv returns the variable value or aborts startup. Used for
// values with no sensible default, such as the token signing secret.
func MustGetEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("❌ ERROR: %s not set in environment", key)
	}
	return value
}
