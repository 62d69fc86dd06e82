package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment.
type Config struct {
	Port     string
	DataFile string
	LogFile  string
	LogLevel string

	JWTSecret string

	// AuthRequired makes the user-scoped routes demand a bearer token.
	// Off by default: the original contract identifies users by the
	// userId carried in request bodies.
	AuthRequired bool

	// FeedbackRequireUser makes feedback submission verify the owning
	// user exists, matching request submission. Off by default, which is
	// the original behavior.
	FeedbackRequireUser bool
}

// Load reads .env (if present) and the environment, with defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	return &Config{
		Port:                getEnv("PORT", "3000"),
		DataFile:            getEnv("DATA_FILE", "progress.json"),
		LogFile:             getEnv("LOG_FILE", "./logs/app.log"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		JWTSecret:           getEnv("JWT_SECRET", "supersecret"),
		AuthRequired:        getEnvBool("AUTH_REQUIRED", false),
		FeedbackRequireUser: getEnvBool("FEEDBACK_REQUIRE_USER", false),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	v, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid boolean for %s: %q, using default", key, v)
		return defaultValue
	}
	return parsed
}
