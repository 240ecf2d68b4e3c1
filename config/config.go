package config

import (
	"fmt"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"5000"`
	DBType      string `env:"DB_TYPE" envDefault:"mongo"`
	MongoURL    string `env:"MONGO_URL" envDefault:"mongodb://localhost:27017"`
	PostgresURL string `env:"POSTGRES_URL"`
	DBName      string `env:"DB_NAME" envDefault:"assetverse"`

	// AuthDriver selects the token verifier: "firebase" or "jwt" (dev only).
	AuthDriver          string `env:"AUTH_DRIVER" envDefault:"firebase"`
	FirebaseCredentials string `env:"FIREBASE_CREDENTIALS"`
	JWTSecret           string `env:"JWT_SECRET"`

	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:5174,https://assetverse-11man.web.app"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
