// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slider wires the slider domain engine to its collaborators.
// The Service owns the load/mutate/save round-trip: it materializes the
// full aggregate, generates identifiers and timestamps at the boundary,
// applies exactly one domain operation, persists the whole aggregate in
// one transaction and invalidates the tenant's cached payload. The domain
// engine itself never touches a clock, an id generator, the database or
// the cache.
package slider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"glidecms/internal/cache"
	"glidecms/internal/models"
	"glidecms/internal/store"
)

// Service coordinates slider mutations and reads.
type Service struct {
	store *store.SliderStore
	cache *cache.SliderCache // optional; nil disables payload caching
}

// NewService creates a slider service. The cache may be nil.
func NewService(st *store.SliderStore, sc *cache.SliderCache) *Service {
	return &Service{store: st, cache: sc}
}

// mutate runs one domain operation against a freshly loaded aggregate and
// persists the result. The callback receives the aggregate and the
// operation timestamp.
func (s *Service) mutate(ctx context.Context, configID uuid.UUID, op func(cfg *models.SliderConfig, now time.Time) error) error {
	cfg, err := s.store.FindByID(configID)
	if err != nil {
		return err
	}
	if cfg == nil {
		return fmt.Errorf("%w: slider config %s", models.ErrNotFound, configID)
	}

	if err := op(cfg, time.Now().UTC()); err != nil {
		return err
	}

	if err := s.store.Save(cfg); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, cfg.TenantID)
	}
	return nil
}

// CreateConfig creates the slider config for a tenant (nil for the global
// default). Fails with a Conflict error if the tenant already has one.
func (s *Service) CreateConfig(ctx context.Context, tenantID *uuid.UUID) (*models.SliderConfig, error) {
	existing, err := s.store.FindByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: tenant already has a slider config", models.ErrConflict)
	}

	cfg := models.NewSliderConfig(uuid.New(), tenantID, time.Now().UTC())
	if err := s.store.Save(cfg); err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, tenantID)
	}
	slog.Info("slider config created", "config_id", cfg.ID, "tenant", cache.TenantKey(tenantID))
	return cfg, nil
}

// UpdateConfig overwrites the config's own fields.
func (s *Service) UpdateConfig(ctx context.Context, configID uuid.UUID, in models.SliderConfigInput) error {
	return s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		return cfg.Update(in, now)
	})
}

// DeleteConfig soft-deletes the whole config.
func (s *Service) DeleteConfig(ctx context.Context, configID uuid.UUID) error {
	return s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		cfg.Delete(now)
		return nil
	})
}

// RestoreConfig brings a soft-deleted config back.
func (s *Service) RestoreConfig(ctx context.Context, configID uuid.UUID) error {
	return s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		cfg.Restore(now)
		return nil
	})
}

// AddSlide creates a slide and returns its generated identifier.
func (s *Service) AddSlide(ctx context.Context, configID uuid.UUID, in models.SlideInput) (uuid.UUID, error) {
	slideID := uuid.New()
	err := s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		return cfg.AddSlide(slideID, in, now)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return slideID, nil
}

// UpdateSlide overwrites a slide's own fields.
func (s *Service) UpdateSlide(ctx context.Context, configID, slideID uuid.UUID, in models.SlideInput) error {
	return s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		return cfg.UpdateSlide(slideID, in, now)
	})
}

// DeleteSlide soft-deletes a slide.
func (s *Service) DeleteSlide(ctx context.Context, configID, slideID uuid.UUID) error {
	return s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		return cfg.DeleteSlide(slideID, now)
	})
}

// RestoreSlide restores a soft-deleted slide.
func (s *Service) RestoreSlide(ctx context.Context, configID, slideID uuid.UUID) error {
	return s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		return cfg.RestoreSlide(slideID, now)
	})
}

// ReorderSlides applies a bulk slide reorder.
func (s *Service) ReorderSlides(ctx context.Context, configID uuid.UUID, entries []models.ReorderEntry) error {
	return s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		return cfg.ReorderSlides(entries, now)
	})
}

// AddLayer creates a layer on a slide and returns its generated identifier.
func (s *Service) AddLayer(ctx context.Context, configID, slideID uuid.UUID, in models.LayerInput) (uuid.UUID, error) {
	layerID := uuid.New()
	err := s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		return cfg.AddLayer(slideID, layerID, in, now)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return layerID, nil
}

// UpdateLayer overwrites a layer's fields.
func (s *Service) UpdateLayer(ctx context.Context, configID, slideID, layerID uuid.UUID, in models.LayerInput) error {
	return s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		return cfg.UpdateLayer(slideID, layerID, in, now)
	})
}

// DeleteLayer soft-deletes a layer.
func (s *Service) DeleteLayer(ctx context.Context, configID, slideID, layerID uuid.UUID) error {
	return s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		return cfg.DeleteLayer(slideID, layerID, now)
	})
}

// RestoreLayer restores a soft-deleted layer.
func (s *Service) RestoreLayer(ctx context.Context, configID, slideID, layerID uuid.UUID) error {
	return s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		return cfg.RestoreLayer(slideID, layerID, now)
	})
}

// ReorderLayers applies a bulk layer reorder on one slide.
func (s *Service) ReorderLayers(ctx context.Context, configID, slideID uuid.UUID, entries []models.ReorderEntry) error {
	return s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		return cfg.ReorderLayers(slideID, entries, now)
	})
}

// ReplaceHighlights reconciles a slide's highlight set against the desired
// final state. Identifiers for newly created highlights are generated here
// for entries that carry none.
func (s *Service) ReplaceHighlights(ctx context.Context, configID, slideID uuid.UUID, desired []models.HighlightInput) error {
	withIDs := make([]models.HighlightInput, len(desired))
	copy(withIDs, desired)
	for i := range withIDs {
		if withIDs[i].ID == uuid.Nil {
			withIDs[i].ID = uuid.New()
		}
	}
	return s.mutate(ctx, configID, func(cfg *models.SliderConfig, now time.Time) error {
		return cfg.ReplaceHighlights(slideID, withIDs, now)
	})
}

// ActiveView returns a tenant's slider payload as JSON: the active-only
// projection of the aggregate, cache-backed. Fails NotFound when the
// tenant has no config or the config is soft-deleted or switched off.
func (s *Service) ActiveView(ctx context.Context, tenantID *uuid.UUID) ([]byte, error) {
	if s.cache != nil {
		if payload, ok := s.cache.Get(ctx, tenantID); ok {
			return payload, nil
		}
	}

	cfg, err := s.store.FindByTenant(tenantID)
	if err != nil {
		return nil, err
	}
	if cfg == nil || !cfg.Active() || !cfg.IsActive {
		return nil, fmt.Errorf("%w: no active slider for tenant %s", models.ErrNotFound, cache.TenantKey(tenantID))
	}

	payload, err := json.Marshal(NewConfigView(cfg))
	if err != nil {
		return nil, fmt.Errorf("marshal slider view: %w", err)
	}
	if s.cache != nil {
		s.cache.Set(ctx, tenantID, payload)
	}
	return payload, nil
}
