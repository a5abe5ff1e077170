package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	SQLitePath    string
	SubmitLatency time.Duration
	SubmitTimeout time.Duration
	SessionTTL    time.Duration
}

// ProcessEnvironmentVariables loads an optional .env file and then applies
// environment overrides on top of the defaults.
func ProcessEnvironmentVariables() (*Config, error) {
	// Missing .env is fine; env vars alone are enough
	_ = godotenv.Load()

	env := Config{
		Port:          "9446",
		SQLitePath:    "./data/dashboard.db",
		SubmitLatency: 2 * time.Second,
		SubmitTimeout: 30 * time.Second,
		SessionTTL:    30 * time.Minute,
	}

	envPort := os.Getenv("PORT")
	envSQLitePath := os.Getenv("SQLITE_DB_PATH")

	if len(envPort) != 0 {
		env.Port = envPort
	}

	if len(envSQLitePath) != 0 {
		env.SQLitePath = envSQLitePath
	}

	if d, err := readDuration("SUBMIT_LATENCY"); err != nil {
		return nil, err
	} else if d != 0 {
		env.SubmitLatency = d
	}

	if d, err := readDuration("SUBMIT_TIMEOUT"); err != nil {
		return nil, err
	} else if d != 0 {
		env.SubmitTimeout = d
	}

	if d, err := readDuration("SESSION_TTL"); err != nil {
		return nil, err
	} else if d != 0 {
		env.SessionTTL = d
	}

	return &env, nil
}

func readDuration(key string) (time.Duration, error) {
	raw := os.Getenv(key)
	if len(raw) == 0 {
		return 0, nil
	}
	return time.ParseDuration(raw)
}
