package config

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	SecretKey string `env:"SECRET_KEY, required"`
	UploadDir string `env:"UPLOAD_DIR, default=./uploads"`

	Mongo MongoConfig
	Redis RedisConfig
	Mail  MailConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=consultancy_site"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MailConfig struct {
	Host      string   `env:"MAIL_HOST"`
	Port      int      `env:"MAIL_PORT, default=587"`
	UseTLS    bool     `env:"MAIL_USE_TLS"`
	Username  string   `env:"MAIL_USERNAME"`
	Password  string   `env:"MAIL_PASSWORD"`
	Operators []string `env:"MAIL_OPERATORS, delimiter=,"`
}

// Load reads configuration from the environment using go-envconfig. A .env
// file in the working directory is merged in first when present.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
