package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/websaga/websaga-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}

func TestLoadReadsAccessTTLFromFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", writeConfigFile(t, "access_token_ttl: 120\njwt_secret_key: filekey\n"))

	cfg, err := Load(testLogger(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AccessTokenTTL != 2*time.Minute {
		t.Fatalf("access token ttl: want=%v got=%v", 2*time.Minute, cfg.AccessTokenTTL)
	}
	if cfg.JWTSecretKey != "filekey" {
		t.Fatalf("jwt secret key: want=%q got=%q", "filekey", cfg.JWTSecretKey)
	}
}

func TestLoadEnvOverridesFileTTL(t *testing.T) {
	t.Setenv("CONFIG_FILE", writeConfigFile(t, "access_token_ttl: 120\n"))
	t.Setenv("ACCESS_TOKEN_TTL", "45")

	cfg, err := Load(testLogger(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AccessTokenTTL != 45*time.Second {
		t.Fatalf("access token ttl: want=%v got=%v", 45*time.Second, cfg.AccessTokenTTL)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg, err := Load(testLogger(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8000" {
		t.Fatalf("http addr default: want=%q got=%q", ":8000", cfg.HTTPAddr)
	}
	if cfg.AccessTokenTTL != time.Hour {
		t.Fatalf("access token ttl default: want=%v got=%v", time.Hour, cfg.AccessTokenTTL)
	}
}
