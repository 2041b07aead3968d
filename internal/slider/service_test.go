// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// service_test.go exercises the full load/mutate/save round-trip against a
// real PostgreSQL. Tests skip when the database is unreachable.
package slider

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"glidecms/internal/database"
	"glidecms/internal/models"
	"glidecms/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	user := envOr("POSTGRES_USER", "glidecms")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	name := envOr("POSTGRES_DB", "glidecms")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testService creates a service without a cache plus a config for a fresh
// tenant, cleaned up through FK cascade on teardown.
func testService(t *testing.T) (*Service, *models.SliderConfig, uuid.UUID) {
	t.Helper()
	db := testDB(t)
	svc := NewService(store.NewSliderStore(db), nil)

	tenant := uuid.New()
	cfg, err := svc.CreateConfig(context.Background(), &tenant)
	if err != nil {
		t.Fatalf("CreateConfig: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM slider_configs WHERE id = $1", cfg.ID)
	})
	return svc, cfg, tenant
}

func serviceSlideInput(pos int) models.SlideInput {
	return models.SlideInput{
		Position:       pos,
		Title:          "Slide",
		Tagline:        "Tagline",
		CTAColor:       models.CTAColorPrimary,
		DurationMs:     4000,
		Direction:      models.DirectionLeft,
		Variant:        models.VariantDefault,
		Intensity:      models.IntensityNormal,
		BackgroundMode: models.BackgroundModeImage,
		Overlay:        "dark-40",
		BackgroundURL:  "https://cdn.example.com/bg.jpg",
		MediaType:      models.MediaTypeImage,
		IsActive:       true,
	}
}

// TestCreateConfigOncePerTenant verifies the tenant-singleton rule.
func TestCreateConfigOncePerTenant(t *testing.T) {
	svc, _, tenant := testService(t)

	_, err := svc.CreateConfig(context.Background(), &tenant)
	if !errors.Is(err, models.ErrConflict) {
		t.Errorf("second CreateConfig = %v, want ErrConflict", err)
	}
}

// TestServiceSlideLifecycle walks a slide through add, reorder, highlight
// reconciliation and delete, verifying persistence after each step.
func TestServiceSlideLifecycle(t *testing.T) {
	svc, cfg, tenant := testService(t)
	ctx := context.Background()

	first, err := svc.AddSlide(ctx, cfg.ID, serviceSlideInput(0))
	if err != nil {
		t.Fatalf("AddSlide: %v", err)
	}
	second, err := svc.AddSlide(ctx, cfg.ID, serviceSlideInput(1))
	if err != nil {
		t.Fatalf("AddSlide: %v", err)
	}

	if err := svc.ReorderSlides(ctx, cfg.ID, []models.ReorderEntry{
		{ID: first, Position: 1},
		{ID: second, Position: 0},
	}); err != nil {
		t.Fatalf("ReorderSlides: %v", err)
	}

	if err := svc.ReplaceHighlights(ctx, cfg.ID, first, []models.HighlightInput{
		{Text: "New", Variant: "primary", Position: 0},
	}); err != nil {
		t.Fatalf("ReplaceHighlights: %v", err)
	}

	payload, err := svc.ActiveView(ctx, &tenant)
	if err != nil {
		t.Fatalf("ActiveView: %v", err)
	}
	var view ConfigView
	if err := json.Unmarshal(payload, &view); err != nil {
		t.Fatalf("unmarshal view: %v", err)
	}
	if len(view.Slides) != 2 {
		t.Fatalf("view slides = %d, want 2", len(view.Slides))
	}
	if view.Slides[0].ID != second || view.Slides[1].ID != first {
		t.Error("reorder did not persist into the view")
	}
	if len(view.Slides[1].Highlights) != 1 || view.Slides[1].Highlights[0].Text != "New" {
		t.Errorf("highlights in view = %+v, want one 'New'", view.Slides[1].Highlights)
	}

	if err := svc.DeleteSlide(ctx, cfg.ID, first); err != nil {
		t.Fatalf("DeleteSlide: %v", err)
	}
	payload, err = svc.ActiveView(ctx, &tenant)
	if err != nil {
		t.Fatalf("ActiveView: %v", err)
	}
	if err := json.Unmarshal(payload, &view); err != nil {
		t.Fatalf("unmarshal view: %v", err)
	}
	if len(view.Slides) != 1 || view.Slides[0].ID != second {
		t.Errorf("view after delete = %+v, want only %s", view.Slides, second)
	}

	// Restore brings the slide back without re-creation.
	if err := svc.RestoreSlide(ctx, cfg.ID, first); err != nil {
		t.Fatalf("RestoreSlide: %v", err)
	}
	payload, err = svc.ActiveView(ctx, &tenant)
	if err != nil {
		t.Fatalf("ActiveView: %v", err)
	}
	if err := json.Unmarshal(payload, &view); err != nil {
		t.Fatalf("unmarshal view: %v", err)
	}
	if len(view.Slides) != 2 {
		t.Errorf("view after restore = %d slides, want 2", len(view.Slides))
	}
}

// TestServiceRejectsUnknownConfig verifies mutations against a missing
// config fail NotFound.
func TestServiceRejectsUnknownConfig(t *testing.T) {
	db := testDB(t)
	svc := NewService(store.NewSliderStore(db), nil)

	err := svc.UpdateConfig(context.Background(), uuid.New(), models.SliderConfigInput{HeightValue: 100})
	if !errors.Is(err, models.ErrNotFound) {
		t.Errorf("UpdateConfig(unknown) = %v, want ErrNotFound", err)
	}
}

// TestActiveViewHiddenConfig verifies a soft-deleted or switched-off
// config yields NotFound on the read path.
func TestActiveViewHiddenConfig(t *testing.T) {
	svc, cfg, tenant := testService(t)
	ctx := context.Background()

	if err := svc.DeleteConfig(ctx, cfg.ID); err != nil {
		t.Fatalf("DeleteConfig: %v", err)
	}
	if _, err := svc.ActiveView(ctx, &tenant); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("ActiveView(deleted config) = %v, want ErrNotFound", err)
	}

	if err := svc.RestoreConfig(ctx, cfg.ID); err != nil {
		t.Fatalf("RestoreConfig: %v", err)
	}
	if _, err := svc.ActiveView(ctx, &tenant); err != nil {
		t.Errorf("ActiveView(restored config) = %v, want nil", err)
	}
}

// TestSeed verifies seeding is idempotent.
func TestSeed(t *testing.T) {
	db := testDB(t)
	st := store.NewSliderStore(db)

	if err := Seed(st); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if err := Seed(st); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	cfg, err := st.FindByTenant(nil)
	if err != nil {
		t.Fatalf("FindByTenant: %v", err)
	}
	if cfg == nil {
		t.Fatal("global config missing after seed")
	}
	if len(cfg.ActiveSlides()) != 2 {
		t.Errorf("seeded slides = %d, want 2", len(cfg.ActiveSlides()))
	}
}
