package database

import (
	"os"
	"testing"

	"github.com/pressly/goose/v3"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDSN() string {
	user := envOr("POSTGRES_USER", "glidecms")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	name := envOr("POSTGRES_DB", "glidecms")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

// TestConnectAndMigrate verifies the pool opens and the embedded slider
// migrations apply cleanly (and are re-runnable).
func TestConnectAndMigrate(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	// Running migrations twice must be a no-op.
	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	for _, table := range []string{"slider_configs", "slides", "slide_layers", "slide_highlights"} {
		var exists bool
		err := db.QueryRow(
			"SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)", table,
		).Scan(&exists)
		if err != nil {
			t.Fatalf("check table %s: %v", table, err)
		}
		if !exists {
			t.Errorf("table %s missing after migrate", table)
		}
	}
}

// TestConnectBadDSN verifies a malformed DSN fails fast.
func TestConnectBadDSN(t *testing.T) {
	if _, err := Connect("postgres://user@%zz:bad/"); err == nil {
		t.Error("Connect with malformed DSN should fail")
	}
}
