package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment. A .env
// file in the working directory is loaded first when present.
type Config struct {
	Port            int    `env:"PORT,default=3000"`
	PostgresConnStr string `env:"POSTGRES_CONN_STR,required"`

	// SessionCleanupFrequency is how often expired login sessions are
	// purged from the database.
	SessionCleanupFrequency time.Duration `env:"SESSION_CLEANUP_FREQUENCY,default=1h"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	var c Config
	if err := envdecode.Decode(&c); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}
	return &c, nil
}
