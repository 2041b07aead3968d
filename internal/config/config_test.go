package config

import "testing"

// TestLoadDefaults verifies development defaults apply when no environment
// variables are set.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if !cfg.IsDev() {
		t.Error("IsDev() = false, want true")
	}
	if cfg.DBName != "glidecms" {
		t.Errorf("DBName = %q, want glidecms", cfg.DBName)
	}
}

// TestLoadProductionGuard verifies production refuses the default database
// password.
func TestLoadProductionGuard(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail in production with the default password")
	}

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.IsDev() {
		t.Error("IsDev() = true in production")
	}
}

// TestDSN verifies the connection string shape.
func TestDSN(t *testing.T) {
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("POSTGRES_PORT", "5433")
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("POSTGRES_DB", "slider")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := "postgres://u:p@db.internal:5433/slider?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
