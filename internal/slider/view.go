// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package slider

import (
	"github.com/google/uuid"

	"glidecms/internal/models"
)

// ConfigView is the active-only projection of a slider aggregate: the
// shape the presentation layer consumes. Soft-deleted slides, layers and
// highlights never appear in it.
type ConfigView struct {
	ID             uuid.UUID                  `json:"id"`
	Autoplay       bool                       `json:"autoplay"`
	Loop           bool                       `json:"loop"`
	ShowProgress   bool                       `json:"show_progress"`
	ShowArrows     bool                       `json:"show_arrows"`
	ShowDots       bool                       `json:"show_dots"`
	Parallax       bool                       `json:"parallax"`
	Particles      bool                       `json:"particles"`
	Variant        models.Variant             `json:"variant"`
	Intensity      models.Intensity           `json:"intensity"`
	Direction      models.TransitionDirection `json:"direction"`
	BackgroundMode models.BackgroundMode      `json:"background_mode"`
	ScrollBehavior models.ScrollBehavior      `json:"scroll_behavior"`
	HeightMode     models.HeightMode          `json:"height_mode"`
	HeightValue    int                        `json:"height_value"`
	ContainerMode  models.ContainerMode       `json:"container_mode"`
	ContentAlign   models.ContentAlign        `json:"content_align"`
	Slides         []SlideView                `json:"slides"`
}

// SlideView is one active slide with its active children, in display order.
type SlideView struct {
	ID             uuid.UUID                  `json:"id"`
	Position       int                        `json:"position"`
	Title          string                     `json:"title"`
	Tagline        string                     `json:"tagline"`
	CTAText        *string                    `json:"cta_text,omitempty"`
	CTAHref        *string                    `json:"cta_href,omitempty"`
	CTAColor       models.CTAColor            `json:"cta_color"`
	DurationMs     int                        `json:"duration_ms"`
	Direction      models.TransitionDirection `json:"direction"`
	Variant        models.Variant             `json:"variant"`
	Intensity      models.Intensity           `json:"intensity"`
	BackgroundMode models.BackgroundMode      `json:"background_mode"`
	OverlayEnabled bool                       `json:"overlay_enabled"`
	Overlay        string                     `json:"overlay"`
	BackgroundURL  string                     `json:"background_url"`
	MediaType      models.MediaType           `json:"media_type"`
	VideoID        *string                    `json:"video_id,omitempty"`
	Layers         []LayerView                `json:"layers"`
	Highlights     []HighlightView            `json:"highlights"`
}

// LayerView is one active layer.
type LayerView struct {
	ID          uuid.UUID              `json:"id"`
	Position    int                    `json:"position"`
	Type        models.LayerType       `json:"type"`
	Content     string                 `json:"content"`
	MediaURL    *string                `json:"media_url,omitempty"`
	X           float64                `json:"x"`
	Y           float64                `json:"y"`
	Width       string                 `json:"width"`
	AnimateFrom models.AnimationOrigin `json:"animate_from"`
	DelayMs     int                    `json:"delay_ms"`
	DurationMs  int                    `json:"duration_ms"`
	Easing      string                 `json:"easing"`
	Visibility  string                 `json:"visibility"`
}

// HighlightView is one active highlight badge.
type HighlightView struct {
	Position int    `json:"position"`
	Text     string `json:"text"`
	Variant  string `json:"variant"`
}

// NewConfigView projects an aggregate into its active-only view. Slides
// that are active but switched off (IsActive false) are skipped: they are
// editable drafts, not part of the public slider.
func NewConfigView(cfg *models.SliderConfig) ConfigView {
	view := ConfigView{
		ID:             cfg.ID,
		Autoplay:       cfg.Autoplay,
		Loop:           cfg.Loop,
		ShowProgress:   cfg.ShowProgress,
		ShowArrows:     cfg.ShowArrows,
		ShowDots:       cfg.ShowDots,
		Parallax:       cfg.Parallax,
		Particles:      cfg.Particles,
		Variant:        cfg.Variant,
		Intensity:      cfg.Intensity,
		Direction:      cfg.Direction,
		BackgroundMode: cfg.BackgroundMode,
		ScrollBehavior: cfg.ScrollBehavior,
		HeightMode:     cfg.HeightMode,
		HeightValue:    cfg.HeightValue,
		ContainerMode:  cfg.ContainerMode,
		ContentAlign:   cfg.ContentAlign,
		Slides:         []SlideView{},
	}

	for _, sl := range cfg.ActiveSlides() {
		if !sl.IsActive {
			continue
		}
		sv := SlideView{
			ID:             sl.ID,
			Position:       sl.Position,
			Title:          sl.Title,
			Tagline:        sl.Tagline,
			CTAText:        sl.CTAText,
			CTAHref:        sl.CTAHref,
			CTAColor:       sl.CTAColor,
			DurationMs:     sl.DurationMs,
			Direction:      sl.Direction,
			Variant:        sl.Variant,
			Intensity:      sl.Intensity,
			BackgroundMode: sl.BackgroundMode,
			OverlayEnabled: sl.OverlayEnabled,
			Overlay:        sl.Overlay,
			BackgroundURL:  sl.BackgroundURL,
			MediaType:      sl.MediaType,
			VideoID:        sl.VideoID,
			Layers:         []LayerView{},
			Highlights:     []HighlightView{},
		}
		for _, l := range sl.ActiveLayers() {
			sv.Layers = append(sv.Layers, LayerView{
				ID:          l.ID,
				Position:    l.Position,
				Type:        l.Type,
				Content:     l.Content,
				MediaURL:    l.MediaURL,
				X:           l.X,
				Y:           l.Y,
				Width:       l.Width,
				AnimateFrom: l.AnimateFrom,
				DelayMs:     l.DelayMs,
				DurationMs:  l.DurationMs,
				Easing:      l.Easing,
				Visibility:  l.Visibility,
			})
		}
		for _, h := range sl.ActiveHighlights() {
			sv.Highlights = append(sv.Highlights, HighlightView{
				Position: h.Position,
				Text:     h.Text,
				Variant:  h.Variant,
			})
		}
		view.Slides = append(view.Slides, sv)
	}
	return view
}
