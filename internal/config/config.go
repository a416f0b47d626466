package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"DATABASE_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Hash     Hash     `envPrefix:"HASH_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"4000"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains DynamoDB table parameters. Endpoint is only set when
// pointing at a local DynamoDB instance; when empty the SDK default
// resolution applies.
type Database struct {
	Endpoint   string `env:"ENDPOINT"`
	UsersTable string `env:"USERS_TABLE" envDefault:"quirknotes-users"`
	NotesTable string `env:"NOTES_TABLE" envDefault:"quirknotes-notes"`
	OwnerIndex string `env:"OWNER_INDEX" envDefault:"owner-index"`
}

// JWT contains session token parameters. The secret is fixed for the process
// lifetime; there is no rotation.
type JWT struct {
	Secret   string        `env:"SECRET" envDefault:"devsecret"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
}

// Hash contains password hashing parameters.
type Hash struct {
	Cost int `env:"COST" envDefault:"10"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
