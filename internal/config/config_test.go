package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.JWTAccessExpiry != 15*time.Minute {
		t.Errorf("JWTAccessExpiry = %v, want 15m", cfg.JWTAccessExpiry)
	}
	if cfg.JWTRefreshExpiry != 168*time.Hour {
		t.Errorf("JWTRefreshExpiry = %v, want 168h", cfg.JWTRefreshExpiry)
	}
	if cfg.OTPExpiry != 10*time.Minute {
		t.Errorf("OTPExpiry = %v, want 10m", cfg.OTPExpiry)
	}
	if cfg.ResetTokenExpiry != 15*time.Minute {
		t.Errorf("ResetTokenExpiry = %v, want 15m", cfg.ResetTokenExpiry)
	}
	if cfg.AuditRetention != 17520*time.Hour {
		t.Errorf("AuditRetention = %v, want 2 years", cfg.AuditRetention)
	}
	if cfg.DeletedUserRetention != 720*time.Hour {
		t.Errorf("DeletedUserRetention = %v, want 30 days", cfg.DeletedUserRetention)
	}
	if cfg.SystemLogRetention != 720*time.Hour {
		t.Errorf("SystemLogRetention = %v, want 30 days", cfg.SystemLogRetention)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	if cfg.DBHost != "db.internal" {
		t.Errorf("DBHost = %q, want db.internal", cfg.DBHost)
	}
	if cfg.JWTAccessExpiry != 30*time.Minute {
		t.Errorf("JWTAccessExpiry = %v, want 30m", cfg.JWTAccessExpiry)
	}
	if cfg.IsDevelopment() {
		t.Error("IsDevelopment() = true with APP_ENV=production")
	}
}

func TestParseDurationFallback(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "not-a-duration")

	cfg := Load()
	if cfg.JWTAccessExpiry != 15*time.Minute {
		t.Errorf("JWTAccessExpiry = %v, want fallback 15m", cfg.JWTAccessExpiry)
	}
}

func TestDSN(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "pw")
	t.Setenv("DB_NAME", "telehealth_test")
	t.Setenv("DB_SSLMODE", "require")

	got := Load().DSN()
	want := "host=localhost user=app password=pw dbname=telehealth_test port=5433 sslmode=require TimeZone=UTC"
	if got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
