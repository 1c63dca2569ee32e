package cli

import (
	"os"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Player    string
	Output    string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("WORDDUEL_SERVER", "http://localhost:8080"),
		Player:    os.Getenv("WORDDUEL_PLAYER"),
		Output:    "text",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
