package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabasePath string
	JWTSecret    []byte
	LogLevel     string
	CORSOrigins  []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	config := &Config{
		Port:         EnvIntDefault("PORT", 3000),
		DatabasePath: EnvDefault("DATABASE_PATH", "database_folder/database.db"),
		JWTSecret:    []byte(os.Getenv("JWT_SECRET")),
		LogLevel:     EnvDefault("LOG_LEVEL", "info"),
		CORSOrigins:  CSV(os.Getenv("CORS_ORIGINS")),
	}

	// There is no fallback secret: issuing tokens nobody can verify later
	// is worse than refusing to start.
	MustNonEmptyBytes(config.JWTSecret, "JWT_SECRET")

	return config, nil
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
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

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func MustNonEmptyBytes(value []byte, envName string) {
	if len(value) == 0 {
		log.Fatalf("missing required env %s", envName)
	}
}
