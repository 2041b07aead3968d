// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slider

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"glidecms/internal/models"
	"glidecms/internal/store"
)

// Seed creates the global default slider with demo content if no global
// config exists yet. The aggregate is built through the domain engine so
// seeded data satisfies the same invariants as user-created data.
func Seed(st *store.SliderStore) error {
	existing, err := st.FindByTenant(nil)
	if err != nil {
		return fmt.Errorf("seed check slider: %w", err)
	}
	if existing != nil {
		slog.Info("slider already seeded, skipping")
		return nil
	}

	now := time.Now().UTC()
	cfg := models.NewSliderConfig(uuid.New(), nil, now)

	welcome := uuid.New()
	if err := cfg.AddSlide(welcome, models.SlideInput{
		Title:          "Welcome to GlideCMS",
		Tagline:        "Your content, in motion",
		CTAColor:       models.CTAColorPrimary,
		DurationMs:     6000,
		Direction:      models.DirectionLeft,
		Variant:        models.VariantDefault,
		Intensity:      models.IntensityNormal,
		BackgroundMode: models.BackgroundModeImage,
		OverlayEnabled: true,
		Overlay:        "dark-40",
		BackgroundURL:  "https://cdn.glidecms.local/demo/hero-1.jpg",
		MediaType:      models.MediaTypeImage,
		IsActive:       true,
	}, now); err != nil {
		return fmt.Errorf("seed welcome slide: %w", err)
	}

	if err := cfg.AddLayer(welcome, uuid.New(), models.LayerInput{
		Type:        models.LayerTypeText,
		Content:     "Build beautiful pages",
		X:           10,
		Y:           35,
		Width:       "40%",
		AnimateFrom: models.AnimateFromLeft,
		DelayMs:     200,
		DurationMs:  600,
		Easing:      "ease-out",
		Visibility:  "all",
	}, now); err != nil {
		return fmt.Errorf("seed welcome layer: %w", err)
	}

	if err := cfg.ReplaceHighlights(welcome, []models.HighlightInput{
		{ID: uuid.New(), Text: "New", Variant: "primary", Position: 0},
	}, now); err != nil {
		return fmt.Errorf("seed welcome highlights: %w", err)
	}

	if err := cfg.AddSlide(uuid.New(), models.SlideInput{
		Position:       1,
		Title:          "Showcase your work",
		Tagline:        "Sliders, catalogs and more",
		CTAColor:       models.CTAColorSecondary,
		DurationMs:     6000,
		Direction:      models.DirectionLeft,
		Variant:        models.VariantGradient,
		Intensity:      models.IntensityNormal,
		BackgroundMode: models.BackgroundModeImage,
		OverlayEnabled: true,
		Overlay:        "dark-40",
		BackgroundURL:  "https://cdn.glidecms.local/demo/hero-2.jpg",
		MediaType:      models.MediaTypeImage,
		IsActive:       true,
	}, now); err != nil {
		return fmt.Errorf("seed showcase slide: %w", err)
	}

	if err := st.Save(cfg); err != nil {
		return fmt.Errorf("seed save slider: %w", err)
	}

	slog.Info("slider seeded with demo content", "config_id", cfg.ID, "slides", len(cfg.Slides))
	return nil
}
