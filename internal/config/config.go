package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	Port           string        `env:"PORT" envDefault:"8080"`
	MongoURI       string        `env:"MONGO_URI,required"`
	MongoDB        string        `env:"MONGO_DB" envDefault:"rental_ads"`
	JWTSecret      string        `env:"JWT_SECRET,required"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" envDefault:"720h"`
	BcryptCost     int           `env:"BCRYPT_COST" envDefault:"0"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
}

// Load reads configuration from environment variables. A .env file is
// loaded first when present, for development.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("loading .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
