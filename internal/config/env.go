package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

var envPaths = []string{".env", ".env.local"}

// loadEnvFile loads the first of .env/.env.local that exists.
// Existing process environment variables are not overwritten.
func loadEnvFile() error {
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			return fmt.Errorf("failed to load %s: %w", envPath, err)
		}
		fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
		return nil
	}
	return errors.New("no .env file found")
}
