package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "svc-password")
	t.Setenv("JWT_SECRET", "a-test-signing-secret-of-32-bytes!!")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.DBPort != "3306" {
		t.Errorf("DBPort = %q, want %q", cfg.DBPort, "3306")
	}
	if cfg.DBName != "users" {
		t.Errorf("DBName = %q, want %q", cfg.DBName, "users")
	}
	if cfg.JWTExpiry != 60*time.Minute {
		t.Errorf("JWTExpiry = %v, want 60m", cfg.JWTExpiry)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("BcryptCost = %d, want 10", cfg.BcryptCost)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want %q", cfg.Environment, "development")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail when JWT_SECRET is missing")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_EXPIRY", "15m")
	t.Setenv("API_PORT", "9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.JWTExpiry != 15*time.Minute {
		t.Errorf("JWTExpiry = %v, want 15m", cfg.JWTExpiry)
	}
	if got := cfg.Addr(); got != "0.0.0.0:9000" {
		t.Errorf("Addr() = %q, want %q", got, "0.0.0.0:9000")
	}
}

func TestLoad_BcryptCostOutOfRange(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("BCRYPT_COST", "99")

	if _, err := Load(); err == nil {
		t.Error("Load() should fail for bcrypt cost outside valid range")
	}
}

func TestDSN(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PORT", "3307")
	t.Setenv("DB_NAME", "users")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := "svc:svc-password@tcp(localhost:3307)/users?charset=utf8mb4&parseTime=True&loc=UTC"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
