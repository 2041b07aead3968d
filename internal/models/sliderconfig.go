// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models implements the slider domain: the tenant-scoped
// SliderConfig aggregate and the ordering and soft-delete invariants that
// govern its slides, layers and highlights. Entities are constructed only
// through validating factories and mutated only through the owning
// parent's methods. The engine reads no clocks and generates no
// identifiers; both arrive from the caller on every operation.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Variant is a presentation style preset shared by configs and slides.
type Variant string

const (
	VariantDefault  Variant = "default"
	VariantMinimal  Variant = "minimal"
	VariantBold     Variant = "bold"
	VariantGradient Variant = "gradient"
)

// Intensity scales how pronounced transitions and effects are.
type Intensity string

const (
	IntensitySubtle Intensity = "subtle"
	IntensityNormal Intensity = "normal"
	IntensityStrong Intensity = "strong"
)

// TransitionDirection is the direction slides move during a transition.
type TransitionDirection string

const (
	DirectionLeft  TransitionDirection = "left"
	DirectionRight TransitionDirection = "right"
	DirectionUp    TransitionDirection = "up"
	DirectionDown  TransitionDirection = "down"
)

// BackgroundMode selects how a background is rendered.
type BackgroundMode string

const (
	BackgroundModeImage    BackgroundMode = "image"
	BackgroundModeVideo    BackgroundMode = "video"
	BackgroundModeColor    BackgroundMode = "color"
	BackgroundModeGradient BackgroundMode = "gradient"
)

// ScrollBehavior controls how the page scrolls past the slider.
type ScrollBehavior string

const (
	ScrollBehaviorNone   ScrollBehavior = "none"
	ScrollBehaviorSnap   ScrollBehavior = "snap"
	ScrollBehaviorSmooth ScrollBehavior = "smooth"
)

// HeightMode selects how the slider's height is computed.
type HeightMode string

const (
	HeightModeFullscreen HeightMode = "fullscreen"
	HeightModeFixed      HeightMode = "fixed"
	HeightModeRatio      HeightMode = "ratio"
)

// ContainerMode selects full-bleed versus boxed layout.
type ContainerMode string

const (
	ContainerModeFull  ContainerMode = "full"
	ContainerModeBoxed ContainerMode = "boxed"
)

// ContentAlign is the horizontal alignment of slide content.
type ContentAlign string

const (
	ContentAlignLeft   ContentAlign = "left"
	ContentAlignCenter ContentAlign = "center"
	ContentAlignRight  ContentAlign = "right"
)

// SliderConfig is the aggregate root of the slider feature: a tenant-scoped
// singleton owning an ordered collection of slides. A nil TenantID marks
// the global default config. All mutations to slides, layers and
// highlights pass through this root; external callers never hold mutable
// child handles.
type SliderConfig struct {
	ID             uuid.UUID           `json:"id"`
	TenantID       *uuid.UUID          `json:"tenant_id,omitempty"`
	IsActive       bool                `json:"is_active"`
	Autoplay       bool                `json:"autoplay"`
	Loop           bool                `json:"loop"`
	ShowProgress   bool                `json:"show_progress"`
	ShowArrows     bool                `json:"show_arrows"`
	ShowDots       bool                `json:"show_dots"`
	Parallax       bool                `json:"parallax"`
	Particles      bool                `json:"particles"`
	Variant        Variant             `json:"variant"`
	Intensity      Intensity           `json:"intensity"`
	Direction      TransitionDirection `json:"direction"`
	BackgroundMode BackgroundMode      `json:"background_mode"`
	ScrollBehavior ScrollBehavior      `json:"scroll_behavior"`
	HeightMode     HeightMode          `json:"height_mode"`
	HeightValue    int                 `json:"height_value"`
	ContainerMode  ContainerMode       `json:"container_mode"`
	ContentAlign   ContentAlign        `json:"content_align"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	SoftDelete
	Slides []Slide `json:"slides"`
}

// SliderConfigInput carries the caller-supplied fields for updating a
// config. Slides are never part of it; they have their own operations.
type SliderConfigInput struct {
	IsActive       bool
	Autoplay       bool
	Loop           bool
	ShowProgress   bool
	ShowArrows     bool
	ShowDots       bool
	Parallax       bool
	Particles      bool
	Variant        Variant
	Intensity      Intensity
	Direction      TransitionDirection
	BackgroundMode BackgroundMode
	ScrollBehavior ScrollBehavior
	HeightMode     HeightMode
	HeightValue    int
	ContainerMode  ContainerMode
	ContentAlign   ContentAlign
}

// NewSliderConfig creates a config with the standard defaults: display
// flags on, fullscreen height at value 100, centered full-width content.
// There are no caller-supplied fields yet, so nothing to validate.
func NewSliderConfig(id uuid.UUID, tenantID *uuid.UUID, now time.Time) *SliderConfig {
	return &SliderConfig{
		ID:             id,
		TenantID:       tenantID,
		IsActive:       true,
		Autoplay:       true,
		Loop:           true,
		ShowProgress:   true,
		ShowArrows:     true,
		ShowDots:       true,
		Parallax:       false,
		Particles:      false,
		Variant:        VariantDefault,
		Intensity:      IntensityNormal,
		Direction:      DirectionLeft,
		BackgroundMode: BackgroundModeImage,
		ScrollBehavior: ScrollBehaviorSmooth,
		HeightMode:     HeightModeFullscreen,
		HeightValue:    100,
		ContainerMode:  ContainerModeFull,
		ContentAlign:   ContentAlignCenter,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Update overwrites all config fields. Fails Validation when the height
// value is not positive; no field is assigned on failure.
func (c *SliderConfig) Update(in SliderConfigInput, now time.Time) error {
	if in.HeightValue <= 0 {
		return validationErr("height value must be positive, got %d", in.HeightValue)
	}
	c.IsActive = in.IsActive
	c.Autoplay = in.Autoplay
	c.Loop = in.Loop
	c.ShowProgress = in.ShowProgress
	c.ShowArrows = in.ShowArrows
	c.ShowDots = in.ShowDots
	c.Parallax = in.Parallax
	c.Particles = in.Particles
	c.Variant = in.Variant
	c.Intensity = in.Intensity
	c.Direction = in.Direction
	c.BackgroundMode = in.BackgroundMode
	c.ScrollBehavior = in.ScrollBehavior
	c.HeightMode = in.HeightMode
	c.HeightValue = in.HeightValue
	c.ContainerMode = in.ContainerMode
	c.ContentAlign = in.ContentAlign
	c.UpdatedAt = now
	return nil
}

// Delete soft-deletes the whole config. Slides keep their own lifecycle
// state; hiding the root hides everything it owns.
func (c *SliderConfig) Delete(now time.Time) {
	markDeleted(&c.SoftDelete, now)
	c.UpdatedAt = now
}

// Restore brings a soft-deleted config back.
func (c *SliderConfig) Restore(now time.Time) {
	markRestored(&c.SoftDelete)
	c.UpdatedAt = now
}

func (c *SliderConfig) slideHandles() []orderable {
	handles := make([]orderable, len(c.Slides))
	for i := range c.Slides {
		handles[i] = &c.Slides[i]
	}
	return handles
}

// ActiveSlides returns the active slides ordered by position. The returned
// pointers are read handles; mutation goes through the config's methods.
func (c *SliderConfig) ActiveSlides() []*Slide {
	var out []*Slide
	for i := range c.Slides {
		if c.Slides[i].Active() {
			out = append(out, &c.Slides[i])
		}
	}
	sortByOrder(out)
	return out
}

// FindSlide returns the slide with the given id regardless of lifecycle
// state, or nil. Soft-deleted slides stay reachable for restore.
func (c *SliderConfig) FindSlide(id uuid.UUID) *Slide {
	for i := range c.Slides {
		if c.Slides[i].ID == id {
			return &c.Slides[i]
		}
	}
	return nil
}

// findActiveSlide returns the index of the active slide with the given id,
// or -1.
func (c *SliderConfig) findActiveSlide(id uuid.UUID) int {
	for i := range c.Slides {
		if c.Slides[i].ID == id && c.Slides[i].Active() {
			return i
		}
	}
	return -1
}

// AddSlide constructs a new slide at the requested position. Fails with a
// Conflict error if another active slide already holds that position, or a
// Validation error from the slide factory. On success all active slides
// are renormalized and the config timestamp bumps.
func (c *SliderConfig) AddSlide(id uuid.UUID, in SlideInput, now time.Time) error {
	if err := ensureUniquePosition(c.slideHandles(), in.Position, uuid.Nil); err != nil {
		return err
	}
	slide, err := newSlide(id, c.ID, in, now)
	if err != nil {
		return err
	}
	c.Slides = append(c.Slides, slide)
	renormalize(c.slideHandles(), now)
	c.UpdatedAt = now
	return nil
}

// UpdateSlide overwrites an active slide's own fields, leaving its layers
// and highlights untouched.
func (c *SliderConfig) UpdateSlide(slideID uuid.UUID, in SlideInput, now time.Time) error {
	idx := c.findActiveSlide(slideID)
	if idx < 0 {
		return notFoundErr("slide %s not found on config %s", slideID, c.ID)
	}
	if err := ensureUniquePosition(c.slideHandles(), in.Position, slideID); err != nil {
		return err
	}
	if err := c.Slides[idx].update(in, now); err != nil {
		return err
	}
	renormalize(c.slideHandles(), now)
	c.UpdatedAt = now
	return nil
}

// DeleteSlide soft-deletes an active slide and closes the position gap.
func (c *SliderConfig) DeleteSlide(slideID uuid.UUID, now time.Time) error {
	idx := c.findActiveSlide(slideID)
	if idx < 0 {
		return notFoundErr("slide %s not found on config %s", slideID, c.ID)
	}
	markDeleted(&c.Slides[idx].SoftDelete, now)
	renormalize(c.slideHandles(), now)
	c.UpdatedAt = now
	return nil
}

// RestoreSlide brings a soft-deleted slide back into the active set. Its
// old position acts as a sort hint; renormalization folds it into the
// contiguous range, creation time breaking ties.
func (c *SliderConfig) RestoreSlide(slideID uuid.UUID, now time.Time) error {
	slide := c.FindSlide(slideID)
	if slide == nil {
		return notFoundErr("slide %s not found on config %s", slideID, c.ID)
	}
	markRestored(&slide.SoftDelete)
	renormalize(c.slideHandles(), now)
	c.UpdatedAt = now
	return nil
}

// ReorderSlides applies a batch of (slide id, requested position) pairs.
// Fails Validation on duplicate slide ids and NotFound on any unresolvable
// id, in both cases before any position changes. Renormalization runs once
// after the whole batch.
func (c *SliderConfig) ReorderSlides(entries []ReorderEntry, now time.Time) error {
	seen := make(map[uuid.UUID]bool, len(entries))
	for _, e := range entries {
		if seen[e.ID] {
			return validationErr("duplicate slide id %s in reorder batch", e.ID)
		}
		seen[e.ID] = true
	}
	indexes := make([]int, len(entries))
	for i, e := range entries {
		idx := c.findActiveSlide(e.ID)
		if idx < 0 {
			return notFoundErr("slide %s not found on config %s", e.ID, c.ID)
		}
		indexes[i] = idx
	}
	for i, e := range entries {
		c.Slides[indexes[i]].reorder(e.Position, now)
	}
	renormalize(c.slideHandles(), now)
	c.UpdatedAt = now
	return nil
}

// The remaining methods dispatch child operations through the root so the
// config timestamp tracks every structural change in the aggregate.

// AddLayer adds a layer to an active slide.
func (c *SliderConfig) AddLayer(slideID, layerID uuid.UUID, in LayerInput, now time.Time) error {
	idx := c.findActiveSlide(slideID)
	if idx < 0 {
		return notFoundErr("slide %s not found on config %s", slideID, c.ID)
	}
	if err := c.Slides[idx].AddLayer(layerID, in, now); err != nil {
		return err
	}
	c.UpdatedAt = now
	return nil
}

// UpdateLayer overwrites a layer on an active slide.
func (c *SliderConfig) UpdateLayer(slideID, layerID uuid.UUID, in LayerInput, now time.Time) error {
	idx := c.findActiveSlide(slideID)
	if idx < 0 {
		return notFoundErr("slide %s not found on config %s", slideID, c.ID)
	}
	if err := c.Slides[idx].UpdateLayer(layerID, in, now); err != nil {
		return err
	}
	c.UpdatedAt = now
	return nil
}

// DeleteLayer soft-deletes a layer on an active slide.
func (c *SliderConfig) DeleteLayer(slideID, layerID uuid.UUID, now time.Time) error {
	idx := c.findActiveSlide(slideID)
	if idx < 0 {
		return notFoundErr("slide %s not found on config %s", slideID, c.ID)
	}
	if err := c.Slides[idx].DeleteLayer(layerID, now); err != nil {
		return err
	}
	c.UpdatedAt = now
	return nil
}

// RestoreLayer restores a soft-deleted layer on an active slide.
func (c *SliderConfig) RestoreLayer(slideID, layerID uuid.UUID, now time.Time) error {
	idx := c.findActiveSlide(slideID)
	if idx < 0 {
		return notFoundErr("slide %s not found on config %s", slideID, c.ID)
	}
	if err := c.Slides[idx].RestoreLayer(layerID, now); err != nil {
		return err
	}
	c.UpdatedAt = now
	return nil
}

// ReorderLayers applies a bulk layer reorder on an active slide.
func (c *SliderConfig) ReorderLayers(slideID uuid.UUID, entries []ReorderEntry, now time.Time) error {
	idx := c.findActiveSlide(slideID)
	if idx < 0 {
		return notFoundErr("slide %s not found on config %s", slideID, c.ID)
	}
	if err := c.Slides[idx].ReorderLayers(entries, now); err != nil {
		return err
	}
	c.UpdatedAt = now
	return nil
}

// ReplaceHighlights reconciles a slide's highlight set against the desired
// final state.
func (c *SliderConfig) ReplaceHighlights(slideID uuid.UUID, desired []HighlightInput, now time.Time) error {
	idx := c.findActiveSlide(slideID)
	if idx < 0 {
		return notFoundErr("slide %s not found on config %s", slideID, c.ID)
	}
	if err := c.Slides[idx].ReplaceHighlights(desired, now); err != nil {
		return err
	}
	c.UpdatedAt = now
	return nil
}
