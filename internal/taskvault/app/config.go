package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer           string        // Optional: issuer claim for identity tokens (default: taskvault)
	IdentityKeyFile  string        // Optional: path to PKCS8 PEM Ed25519 key; empty means ephemeral
	IdentityTokenTTL time.Duration // Optional: identity token lifetime; zero means no expiry

	CredentialScheme string // Optional: credential scheme (plain, argon2id) (default: argon2id)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer:           getEnvOrDefault("TASKVAULT_ISSUER", "taskvault"),
		IdentityKeyFile:  os.Getenv("TASKVAULT_IDENTITY_KEY_FILE"),
		IdentityTokenTTL: getEnvDurationOrDefault("TASKVAULT_IDENTITY_TOKEN_TTL", 0),

		CredentialScheme: getEnvOrDefault("TASKVAULT_CREDENTIAL_SCHEME", "argon2id"),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	return defaultValue
}
