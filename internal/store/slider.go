// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store persists slider aggregates. A SliderConfig is always
// loaded and saved whole: the domain engine assumes every slide, layer
// and highlight — soft-deleted rows included — is in memory before any
// mutation, and the save writes the full aggregate back in one
// transaction. Rows are never hard-deleted here; physical removal rides
// on the schema's FK cascade.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"glidecms/internal/models"
)

// SliderStore handles all slider-related database operations.
type SliderStore struct {
	db *sql.DB
}

// NewSliderStore creates a new SliderStore with the given database connection.
func NewSliderStore(db *sql.DB) *SliderStore {
	return &SliderStore{db: db}
}

const configCols = `id, tenant_id, is_active, autoplay, loop_enabled, show_progress,
	show_arrows, show_dots, parallax, particles, variant, intensity, direction,
	background_mode, scroll_behavior, height_mode, height_value, container_mode,
	content_align, is_deleted, deleted_at, created_at, updated_at`

const slideCols = `id, config_id, sort_order, title, tagline, cta_text, cta_href,
	cta_color, duration_ms, direction, variant, intensity, background_mode,
	overlay_enabled, overlay, background_url, media_type, video_id, is_active,
	is_deleted, deleted_at, created_at, updated_at`

const layerCols = `id, slide_id, sort_order, layer_type, content, media_url,
	pos_x, pos_y, width, animate_from, delay_ms, duration_ms, easing, visibility,
	is_deleted, deleted_at, created_at, updated_at`

const highlightCols = `id, slide_id, sort_order, label, variant,
	is_deleted, deleted_at, created_at, updated_at`

// FindByID materializes the full aggregate for a config id, including
// soft-deleted descendants. Returns nil if no config exists.
func (s *SliderStore) FindByID(id uuid.UUID) (*models.SliderConfig, error) {
	row := s.db.QueryRow(`SELECT `+configCols+` FROM slider_configs WHERE id = $1`, id)
	return s.loadAggregate(row)
}

// FindByTenant materializes the full aggregate for a tenant. A nil tenant
// id selects the global default config. Returns nil if no config exists.
func (s *SliderStore) FindByTenant(tenantID *uuid.UUID) (*models.SliderConfig, error) {
	var row *sql.Row
	if tenantID == nil {
		row = s.db.QueryRow(`SELECT ` + configCols + ` FROM slider_configs WHERE tenant_id IS NULL`)
	} else {
		row = s.db.QueryRow(`SELECT `+configCols+` FROM slider_configs WHERE tenant_id = $1`, *tenantID)
	}
	return s.loadAggregate(row)
}

// ListTenants returns the tenant ids that have a slider config, excluding
// the global default.
func (s *SliderStore) ListTenants() ([]uuid.UUID, error) {
	rows, err := s.db.Query(`SELECT tenant_id FROM slider_configs WHERE tenant_id IS NOT NULL ORDER BY tenant_id`)
	if err != nil {
		return nil, fmt.Errorf("list slider tenants: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan tenant id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *SliderStore) loadAggregate(row *sql.Row) (*models.SliderConfig, error) {
	cfg := &models.SliderConfig{}
	err := row.Scan(
		&cfg.ID, &cfg.TenantID, &cfg.IsActive, &cfg.Autoplay, &cfg.Loop,
		&cfg.ShowProgress, &cfg.ShowArrows, &cfg.ShowDots, &cfg.Parallax,
		&cfg.Particles, &cfg.Variant, &cfg.Intensity, &cfg.Direction,
		&cfg.BackgroundMode, &cfg.ScrollBehavior, &cfg.HeightMode,
		&cfg.HeightValue, &cfg.ContainerMode, &cfg.ContentAlign,
		&cfg.IsDeleted, &cfg.DeletedAt, &cfg.CreatedAt, &cfg.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find slider config: %w", err)
	}

	if err := s.loadSlides(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *SliderStore) loadSlides(cfg *models.SliderConfig) error {
	rows, err := s.db.Query(`
		SELECT `+slideCols+`
		FROM slides
		WHERE config_id = $1
		ORDER BY sort_order, created_at
	`, cfg.ID)
	if err != nil {
		return fmt.Errorf("list slides: %w", err)
	}
	defer rows.Close()

	slideIdx := make(map[uuid.UUID]int)
	for rows.Next() {
		var sl models.Slide
		if err := rows.Scan(
			&sl.ID, &sl.ConfigID, &sl.Position, &sl.Title, &sl.Tagline,
			&sl.CTAText, &sl.CTAHref, &sl.CTAColor, &sl.DurationMs,
			&sl.Direction, &sl.Variant, &sl.Intensity, &sl.BackgroundMode,
			&sl.OverlayEnabled, &sl.Overlay, &sl.BackgroundURL, &sl.MediaType,
			&sl.VideoID, &sl.IsActive, &sl.IsDeleted, &sl.DeletedAt,
			&sl.CreatedAt, &sl.UpdatedAt,
		); err != nil {
			return fmt.Errorf("scan slide: %w", err)
		}
		slideIdx[sl.ID] = len(cfg.Slides)
		cfg.Slides = append(cfg.Slides, sl)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(cfg.Slides) == 0 {
		return nil
	}

	if err := s.loadLayers(cfg, slideIdx); err != nil {
		return err
	}
	return s.loadHighlights(cfg, slideIdx)
}

func (s *SliderStore) loadLayers(cfg *models.SliderConfig, slideIdx map[uuid.UUID]int) error {
	rows, err := s.db.Query(`
		SELECT l.id, l.slide_id, l.sort_order, l.layer_type, l.content, l.media_url,
		       l.pos_x, l.pos_y, l.width, l.animate_from, l.delay_ms, l.duration_ms,
		       l.easing, l.visibility, l.is_deleted, l.deleted_at, l.created_at, l.updated_at
		FROM slide_layers l
		JOIN slides sl ON sl.id = l.slide_id
		WHERE sl.config_id = $1
		ORDER BY l.sort_order, l.created_at
	`, cfg.ID)
	if err != nil {
		return fmt.Errorf("list slide layers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l models.Layer
		if err := rows.Scan(
			&l.ID, &l.SlideID, &l.Position, &l.Type, &l.Content, &l.MediaURL,
			&l.X, &l.Y, &l.Width, &l.AnimateFrom, &l.DelayMs, &l.DurationMs,
			&l.Easing, &l.Visibility, &l.IsDeleted, &l.DeletedAt,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return fmt.Errorf("scan slide layer: %w", err)
		}
		idx, ok := slideIdx[l.SlideID]
		if !ok {
			continue
		}
		cfg.Slides[idx].Layers = append(cfg.Slides[idx].Layers, l)
	}
	return rows.Err()
}

func (s *SliderStore) loadHighlights(cfg *models.SliderConfig, slideIdx map[uuid.UUID]int) error {
	rows, err := s.db.Query(`
		SELECT h.id, h.slide_id, h.sort_order, h.label, h.variant,
		       h.is_deleted, h.deleted_at, h.created_at, h.updated_at
		FROM slide_highlights h
		JOIN slides sl ON sl.id = h.slide_id
		WHERE sl.config_id = $1
		ORDER BY h.sort_order, h.created_at
	`, cfg.ID)
	if err != nil {
		return fmt.Errorf("list slide highlights: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var h models.Highlight
		if err := rows.Scan(
			&h.ID, &h.SlideID, &h.Position, &h.Text, &h.Variant,
			&h.IsDeleted, &h.DeletedAt, &h.CreatedAt, &h.UpdatedAt,
		); err != nil {
			return fmt.Errorf("scan slide highlight: %w", err)
		}
		idx, ok := slideIdx[h.SlideID]
		if !ok {
			continue
		}
		cfg.Slides[idx].Highlights = append(cfg.Slides[idx].Highlights, h)
	}
	return rows.Err()
}

// Save writes the whole aggregate in one transaction: config, slides,
// layers and highlights are upserted by id. The load/mutate/save
// round-trip is the atomicity boundary of every slider operation.
func (s *SliderStore) Save(cfg *models.SliderConfig) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin slider save: %w", err)
	}
	defer tx.Rollback()

	if err := upsertConfig(tx, cfg); err != nil {
		return err
	}
	for i := range cfg.Slides {
		sl := &cfg.Slides[i]
		if err := upsertSlide(tx, sl); err != nil {
			return err
		}
		for j := range sl.Layers {
			if err := upsertLayer(tx, &sl.Layers[j]); err != nil {
				return err
			}
		}
		for j := range sl.Highlights {
			if err := upsertHighlight(tx, &sl.Highlights[j]); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit slider save: %w", err)
	}
	return nil
}

func upsertConfig(tx *sql.Tx, cfg *models.SliderConfig) error {
	_, err := tx.Exec(`
		INSERT INTO slider_configs (`+configCols+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (id) DO UPDATE SET
			is_active = EXCLUDED.is_active,
			autoplay = EXCLUDED.autoplay,
			loop_enabled = EXCLUDED.loop_enabled,
			show_progress = EXCLUDED.show_progress,
			show_arrows = EXCLUDED.show_arrows,
			show_dots = EXCLUDED.show_dots,
			parallax = EXCLUDED.parallax,
			particles = EXCLUDED.particles,
			variant = EXCLUDED.variant,
			intensity = EXCLUDED.intensity,
			direction = EXCLUDED.direction,
			background_mode = EXCLUDED.background_mode,
			scroll_behavior = EXCLUDED.scroll_behavior,
			height_mode = EXCLUDED.height_mode,
			height_value = EXCLUDED.height_value,
			container_mode = EXCLUDED.container_mode,
			content_align = EXCLUDED.content_align,
			is_deleted = EXCLUDED.is_deleted,
			deleted_at = EXCLUDED.deleted_at,
			updated_at = EXCLUDED.updated_at
	`, cfg.ID, cfg.TenantID, cfg.IsActive, cfg.Autoplay, cfg.Loop,
		cfg.ShowProgress, cfg.ShowArrows, cfg.ShowDots, cfg.Parallax,
		cfg.Particles, cfg.Variant, cfg.Intensity, cfg.Direction,
		cfg.BackgroundMode, cfg.ScrollBehavior, cfg.HeightMode,
		cfg.HeightValue, cfg.ContainerMode, cfg.ContentAlign,
		cfg.IsDeleted, cfg.DeletedAt, cfg.CreatedAt, cfg.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert slider config: %w", err)
	}
	return nil
}

func upsertSlide(tx *sql.Tx, sl *models.Slide) error {
	_, err := tx.Exec(`
		INSERT INTO slides (`+slideCols+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
		ON CONFLICT (id) DO UPDATE SET
			sort_order = EXCLUDED.sort_order,
			title = EXCLUDED.title,
			tagline = EXCLUDED.tagline,
			cta_text = EXCLUDED.cta_text,
			cta_href = EXCLUDED.cta_href,
			cta_color = EXCLUDED.cta_color,
			duration_ms = EXCLUDED.duration_ms,
			direction = EXCLUDED.direction,
			variant = EXCLUDED.variant,
			intensity = EXCLUDED.intensity,
			background_mode = EXCLUDED.background_mode,
			overlay_enabled = EXCLUDED.overlay_enabled,
			overlay = EXCLUDED.overlay,
			background_url = EXCLUDED.background_url,
			media_type = EXCLUDED.media_type,
			video_id = EXCLUDED.video_id,
			is_active = EXCLUDED.is_active,
			is_deleted = EXCLUDED.is_deleted,
			deleted_at = EXCLUDED.deleted_at,
			updated_at = EXCLUDED.updated_at
	`, sl.ID, sl.ConfigID, sl.Position, sl.Title, sl.Tagline, sl.CTAText,
		sl.CTAHref, sl.CTAColor, sl.DurationMs, sl.Direction, sl.Variant,
		sl.Intensity, sl.BackgroundMode, sl.OverlayEnabled, sl.Overlay,
		sl.BackgroundURL, sl.MediaType, sl.VideoID, sl.IsActive,
		sl.IsDeleted, sl.DeletedAt, sl.CreatedAt, sl.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert slide: %w", err)
	}
	return nil
}

func upsertLayer(tx *sql.Tx, l *models.Layer) error {
	_, err := tx.Exec(`
		INSERT INTO slide_layers (`+layerCols+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18)
		ON CONFLICT (id) DO UPDATE SET
			sort_order = EXCLUDED.sort_order,
			layer_type = EXCLUDED.layer_type,
			content = EXCLUDED.content,
			media_url = EXCLUDED.media_url,
			pos_x = EXCLUDED.pos_x,
			pos_y = EXCLUDED.pos_y,
			width = EXCLUDED.width,
			animate_from = EXCLUDED.animate_from,
			delay_ms = EXCLUDED.delay_ms,
			duration_ms = EXCLUDED.duration_ms,
			easing = EXCLUDED.easing,
			visibility = EXCLUDED.visibility,
			is_deleted = EXCLUDED.is_deleted,
			deleted_at = EXCLUDED.deleted_at,
			updated_at = EXCLUDED.updated_at
	`, l.ID, l.SlideID, l.Position, l.Type, l.Content, l.MediaURL,
		l.X, l.Y, l.Width, l.AnimateFrom, l.DelayMs, l.DurationMs,
		l.Easing, l.Visibility, l.IsDeleted, l.DeletedAt,
		l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert slide layer: %w", err)
	}
	return nil
}

func upsertHighlight(tx *sql.Tx, h *models.Highlight) error {
	_, err := tx.Exec(`
		INSERT INTO slide_highlights (`+highlightCols+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			sort_order = EXCLUDED.sort_order,
			label = EXCLUDED.label,
			variant = EXCLUDED.variant,
			is_deleted = EXCLUDED.is_deleted,
			deleted_at = EXCLUDED.deleted_at,
			updated_at = EXCLUDED.updated_at
	`, h.ID, h.SlideID, h.Position, h.Text, h.Variant,
		h.IsDeleted, h.DeletedAt, h.CreatedAt, h.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert slide highlight: %w", err)
	}
	return nil
}
