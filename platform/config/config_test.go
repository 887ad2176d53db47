package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/brickworks")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("APP_ENV", "development")
	t.Setenv("MINIO_ENDPOINT", "")
	t.Setenv("SMTP_HOST", "")
	t.Setenv("REDIS_URL", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Env != "development" {
		t.Fatalf("expected development env, got %s", cfg.Env)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("expected 12h session TTL, got %v", cfg.SessionTTL)
	}
	if cfg.AuthCookieName != "bw_admin_token" {
		t.Fatalf("unexpected cookie name %s", cfg.AuthCookieName)
	}
	if cfg.AuthCookieSecure {
		t.Fatal("expected insecure cookie in development")
	}
	if cfg.BricksPerTrolley != 3000 {
		t.Fatalf("expected 3000 bricks per trolley, got %d", cfg.BricksPerTrolley)
	}
	if cfg.IsMinIOEnabled() {
		t.Fatal("expected MinIO disabled without MINIO_ENDPOINT")
	}
	if cfg.IsEmailEnabled() {
		t.Fatal("expected email disabled without SMTP_HOST")
	}
	if cfg.IsSchedulerEnabled() {
		t.Fatal("expected scheduler disabled without REDIS_URL")
	}
	if cfg.GetAsynqQueueName() != "default" {
		t.Fatalf("unexpected queue name %s", cfg.GetAsynqQueueName())
	}
	if cfg.GetAsynqConcurrency() != 10 {
		t.Fatalf("unexpected concurrency %d", cfg.GetAsynqConcurrency())
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := Load(); err == nil {
		t.Fatal("expected missing DATABASE_URL to fail")
	}
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/brickworks")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected missing JWT_SECRET to fail")
	}
}

func TestLoadCookieSecureInProduction(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.AuthCookieSecure {
		t.Fatal("expected secure cookie in production")
	}
}

func TestLoadWildcardOriginForcesAllowAll(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ORIGINS", "*")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.CORSAllowAll {
		t.Fatal("expected wildcard origin to enable allow-all")
	}
}

func TestLoadRejectsCredentialsWithAllowAll(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CORS_ALLOW_ALL", "true")
	t.Setenv("CORS_ALLOW_CREDENTIALS", "true")

	if _, err := Load(); err == nil {
		t.Fatal("expected allow-all with credentials to fail")
	}
}

func TestEmailRequiresFromAddress(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("EMAIL_FROM_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected enabled email without from address to fail")
	}
}
