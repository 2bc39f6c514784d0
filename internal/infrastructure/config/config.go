package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mathdrill/backend/internal/domain/scoring"
	"github.com/mathdrill/backend/internal/domain/settings"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// Persistence
	StoreDriver string // "sqlite", "postgres" or "bbolt"
	StoreDSN    string // file path for sqlite/bbolt, connection string for postgres

	CorpusPath string

	// Guards
	AdminToken         string // empty disables disputes
	RateLimitPerMinute int

	// Settings used until the learner saves their own
	DefaultMaxRetries       int
	DefaultCorrectionPolicy scoring.CorrectionPolicy

	Log LogConfig
}

type LogConfig struct {
	Level string // debug, info, warn or error
	File  string // optional rotating file, teed with stdout
}

// VerifyConfig is the subset read by the corpus checker.
type VerifyConfig struct {
	CorpusPath string
	Workers    int
	Log        LogConfig
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	policy, err := scoring.ParsePolicy(getenvDefault("DEFAULT_CORRECTION_POLICY", "0"))
	if err != nil {
		log.Fatalf("config: DEFAULT_CORRECTION_POLICY: %v", err)
	}

	return &Config{
		ServerAddress:           mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:         mustGetDuration("SHUTDOWN_TIMEOUT"),
		StoreDriver:             getenvDefault("STORE_DRIVER", "sqlite"),
		StoreDSN:                getenvDefault("STORE_DSN", "mathdrill.db"),
		CorpusPath:              getenvDefault("CORPUS_PATH", "data/chapter7.json"),
		AdminToken:              os.Getenv("ADMIN_TOKEN"),
		RateLimitPerMinute:      getenvInt("RATE_LIMIT_PER_MINUTE", 120),
		DefaultMaxRetries:       getenvInt("DEFAULT_MAX_RETRIES", settings.DefaultMaxRetries),
		DefaultCorrectionPolicy: policy,
		Log:                     loadLog(),
	}
}

func LoadVerify() *VerifyConfig {
	_ = godotenv.Load()
	return &VerifyConfig{
		CorpusPath: getenvDefault("CORPUS_PATH", "data/chapter7.json"),
		Workers:    getenvInt("VERIFY_WORKERS", 4),
		Log:        loadLog(),
	}
}

// DefaultSettings are the learner settings the server starts with.
func (c *Config) DefaultSettings() settings.Settings {
	return settings.Settings{
		MaxRetries:      c.DefaultMaxRetries,
		CorrectionScore: c.DefaultCorrectionPolicy,
	}
}

func loadLog() LogConfig {
	return LogConfig{
		Level: getenvDefault("LOG_LEVEL", "info"),
		File:  os.Getenv("LOG_FILE"),
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
	if err != nil || n < 1 {
		log.Fatalf("config: %s=%q is not a positive integer", k, v)
	}
	return n
}
