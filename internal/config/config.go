package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/utils"
)

type Config struct {
	HTTPAddr string `yaml:"http_addr"`

	Postgres Postgres `yaml:"postgres"`

	JWTSecretKey string `yaml:"jwt_secret_key"`

	// AccessTokenTTLSec is the file/env form (seconds); AccessTokenTTL
	// is derived from it in Load.
	AccessTokenTTLSec int           `yaml:"access_token_ttl"`
	AccessTokenTTL    time.Duration `yaml:"-"`

	CORSOrigins []string `yaml:"cors_origins"`
}

type Postgres struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", p.User, p.Password, p.Host, p.Port, p.Name)
}

// Load builds the config from an optional YAML file (CONFIG_FILE, default
// config.yaml) with environment variables taking precedence over file values.
func Load(log *logger.Logger) (Config, error) {
	cfg := Config{
		HTTPAddr: ":8000",
		Postgres: Postgres{
			Host: "localhost",
			Port: "5432",
			User: "postgres",
			Name: "websaga",
		},
		JWTSecretKey:      "defaultsecret",
		AccessTokenTTLSec: 3600,
		CORSOrigins:       []string{"http://localhost:3000", "http://localhost:5173"},
	}

	path := utils.GetEnv("CONFIG_FILE", "config.yaml", log)
	if raw, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
		log.Info("Loaded config file", "path", path)
	}

	cfg.HTTPAddr = utils.GetEnv("HTTP_ADDR", cfg.HTTPAddr, log)
	cfg.Postgres.Host = utils.GetEnv("POSTGRES_HOST", cfg.Postgres.Host, log)
	cfg.Postgres.Port = utils.GetEnv("POSTGRES_PORT", cfg.Postgres.Port, log)
	cfg.Postgres.User = utils.GetEnv("POSTGRES_USER", cfg.Postgres.User, log)
	cfg.Postgres.Password = utils.GetEnv("POSTGRES_PASSWORD", cfg.Postgres.Password, log)
	cfg.Postgres.Name = utils.GetEnv("POSTGRES_NAME", cfg.Postgres.Name, log)
	cfg.JWTSecretKey = utils.GetEnv("JWT_SECRET_KEY", cfg.JWTSecretKey, log)

	cfg.AccessTokenTTLSec = utils.GetEnvAsInt("ACCESS_TOKEN_TTL", cfg.AccessTokenTTLSec, log)
	cfg.AccessTokenTTL = time.Duration(cfg.AccessTokenTTLSec) * time.Second

	return cfg, nil
}
