package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries every process setting, loaded once at startup from the
// environment (a .env file is picked up via godotenv autoload in the
// server package).
type Config struct {
	Port string

	// LLM provider. An empty APIKey disables the LLM path entirely and
	// every request is served by the rule-based generator.
	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string
	LLMTimeout time.Duration

	// Optional collaborators.
	RedisAddr   string // empty disables response caching
	DatabaseURL string // empty selects the in-memory session store

	SessionTTL       time.Duration
	SweepInterval    time.Duration
	CacheTTL         time.Duration
	MaxMessageLength int
}

func Load() Config {
	return Config{
		Port:             getenv("PORT", "8080"),
		LLMBaseURL:       getenv("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
		LLMAPIKey:        getenv("LLM_API_KEY", ""),
		LLMModel:         getenv("LLM_MODEL", "deepseek/deepseek-chat"),
		LLMTimeout:       getenvDuration("LLM_TIMEOUT", 45*time.Second),
		RedisAddr:        getenv("REDIS_ADDR", ""),
		DatabaseURL:      getenv("DATABASE_URL", ""),
		SessionTTL:       getenvDuration("SESSION_TTL", time.Hour),
		SweepInterval:    getenvDuration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		CacheTTL:         getenvDuration("CACHE_TTL", 10*time.Minute),
		MaxMessageLength: getenvInt("MAX_MESSAGE_LENGTH", 2000),
	}
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
