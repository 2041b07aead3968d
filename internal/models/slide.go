// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// CTAColor is the color token for a slide's call-to-action button.
type CTAColor string

const (
	CTAColorPrimary   CTAColor = "primary"
	CTAColorSecondary CTAColor = "secondary"
	CTAColorAccent    CTAColor = "accent"
	CTAColorGhost     CTAColor = "ghost"
)

// MediaType distinguishes the background media of a slide.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// MinSlideDurationMs is the shortest allowed rotation duration for a slide.
const MinSlideDurationMs = 1000

// Slide is one panel of the rotating hero banner. It owns an ordered
// collection of layers and a position-keyed collection of highlights;
// both are mutated exclusively through the slide's methods, which keep
// active positions unique and contiguous.
type Slide struct {
	ID             uuid.UUID           `json:"id"`
	ConfigID       uuid.UUID           `json:"config_id"`
	Position       int                 `json:"position"`
	Title          string              `json:"title"`
	Tagline        string              `json:"tagline"`
	CTAText        *string             `json:"cta_text,omitempty"`
	CTAHref        *string             `json:"cta_href,omitempty"`
	CTAColor       CTAColor            `json:"cta_color"`
	DurationMs     int                 `json:"duration_ms"`
	Direction      TransitionDirection `json:"direction"`
	Variant        Variant             `json:"variant"`
	Intensity      Intensity           `json:"intensity"`
	BackgroundMode BackgroundMode      `json:"background_mode"`
	OverlayEnabled bool                `json:"overlay_enabled"`
	Overlay        string              `json:"overlay"` // overlay style token
	BackgroundURL  string              `json:"background_url"`
	MediaType      MediaType           `json:"media_type"`
	VideoID        *string             `json:"video_id,omitempty"`
	IsActive       bool                `json:"is_active"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	SoftDelete
	Layers     []Layer     `json:"layers"`
	Highlights []Highlight `json:"highlights"`
}

// SlideInput carries the caller-supplied fields for creating or fully
// updating a slide. It never includes layers or highlights; those have
// their own operations.
type SlideInput struct {
	Position       int
	Title          string
	Tagline        string
	CTAText        *string
	CTAHref        *string
	CTAColor       CTAColor
	DurationMs     int
	Direction      TransitionDirection
	Variant        Variant
	Intensity      Intensity
	BackgroundMode BackgroundMode
	OverlayEnabled bool
	Overlay        string
	BackgroundURL  string
	MediaType      MediaType
	VideoID        *string
	IsActive       bool
}

func (in SlideInput) validate() (SlideInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Tagline = strings.TrimSpace(in.Tagline)
	in.Overlay = strings.TrimSpace(in.Overlay)
	in.BackgroundURL = strings.TrimSpace(in.BackgroundURL)
	if in.CTAText != nil {
		v := strings.TrimSpace(*in.CTAText)
		in.CTAText = &v
	}
	if in.CTAHref != nil {
		v := strings.TrimSpace(*in.CTAHref)
		in.CTAHref = &v
	}
	if in.VideoID != nil {
		v := strings.TrimSpace(*in.VideoID)
		in.VideoID = &v
	}

	switch {
	case in.Title == "":
		return in, validationErr("slide title is required")
	case in.Tagline == "":
		return in, validationErr("slide tagline is required")
	case in.Overlay == "":
		return in, validationErr("slide overlay token is required")
	case in.BackgroundURL == "":
		return in, validationErr("slide background URL is required")
	case in.DurationMs < MinSlideDurationMs:
		return in, validationErr("slide duration must be at least %dms, got %d", MinSlideDurationMs, in.DurationMs)
	}
	return in, nil
}

// newSlide is the validating factory for slides. Identifier and clock come
// from the caller.
func newSlide(id, configID uuid.UUID, in SlideInput, now time.Time) (Slide, error) {
	in, err := in.validate()
	if err != nil {
		return Slide{}, err
	}
	return Slide{
		ID:             id,
		ConfigID:       configID,
		Position:       in.Position,
		Title:          in.Title,
		Tagline:        in.Tagline,
		CTAText:        in.CTAText,
		CTAHref:        in.CTAHref,
		CTAColor:       in.CTAColor,
		DurationMs:     in.DurationMs,
		Direction:      in.Direction,
		Variant:        in.Variant,
		Intensity:      in.Intensity,
		BackgroundMode: in.BackgroundMode,
		OverlayEnabled: in.OverlayEnabled,
		Overlay:        in.Overlay,
		BackgroundURL:  in.BackgroundURL,
		MediaType:      in.MediaType,
		VideoID:        in.VideoID,
		IsActive:       in.IsActive,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// update overwrites all slide fields except layers and highlights.
// Validation completes before the first assignment.
func (s *Slide) update(in SlideInput, now time.Time) error {
	in, err := in.validate()
	if err != nil {
		return err
	}
	s.Position = in.Position
	s.Title = in.Title
	s.Tagline = in.Tagline
	s.CTAText = in.CTAText
	s.CTAHref = in.CTAHref
	s.CTAColor = in.CTAColor
	s.DurationMs = in.DurationMs
	s.Direction = in.Direction
	s.Variant = in.Variant
	s.Intensity = in.Intensity
	s.BackgroundMode = in.BackgroundMode
	s.OverlayEnabled = in.OverlayEnabled
	s.Overlay = in.Overlay
	s.BackgroundURL = in.BackgroundURL
	s.MediaType = in.MediaType
	s.VideoID = in.VideoID
	s.IsActive = in.IsActive
	s.UpdatedAt = now
	return nil
}

// reorder changes only the position and timestamp.
func (s *Slide) reorder(pos int, now time.Time) {
	s.Position = pos
	s.UpdatedAt = now
}

// touch bumps the slide's update timestamp. Every child mutation calls it
// so the parent timestamp always reflects the latest structural change.
func (s *Slide) touch(now time.Time) {
	s.UpdatedAt = now
}

// orderable implementation.

func (s *Slide) entityID() uuid.UUID       { return s.ID }
func (s *Slide) displayOrder() int         { return s.Position }
func (s *Slide) createdInstant() time.Time { return s.CreatedAt }
func (s *Slide) orderActive() bool         { return s.Active() }
func (s *Slide) setDisplayOrder(pos int, now time.Time) { s.reorder(pos, now) }

// layerHandles exposes the layer collection to the ordering policy.
func (s *Slide) layerHandles() []orderable {
	handles := make([]orderable, len(s.Layers))
	for i := range s.Layers {
		handles[i] = &s.Layers[i]
	}
	return handles
}

func (s *Slide) highlightHandles() []orderable {
	handles := make([]orderable, len(s.Highlights))
	for i := range s.Highlights {
		handles[i] = &s.Highlights[i]
	}
	return handles
}

// ActiveLayers returns the slide's active layers ordered by position.
// The returned pointers are read handles; mutation goes through the
// aggregate root.
func (s *Slide) ActiveLayers() []*Layer {
	var out []*Layer
	for _, h := range s.layerHandles() {
		if h.orderActive() {
			out = append(out, h.(*Layer))
		}
	}
	sortByOrder(out)
	return out
}

// ActiveHighlights returns the slide's active highlights ordered by position.
func (s *Slide) ActiveHighlights() []*Highlight {
	var out []*Highlight
	for _, h := range s.highlightHandles() {
		if h.orderActive() {
			out = append(out, h.(*Highlight))
		}
	}
	sortByOrder(out)
	return out
}

// findActiveLayer returns the index of the active layer with the given id,
// or -1.
func (s *Slide) findActiveLayer(id uuid.UUID) int {
	for i := range s.Layers {
		if s.Layers[i].ID == id && s.Layers[i].Active() {
			return i
		}
	}
	return -1
}

// AddLayer constructs a new layer at the requested position. Fails with a
// Conflict error if another active layer already holds that position, or a
// Validation error from the layer factory. On success all active layers are
// renormalized and the slide timestamp bumps.
func (s *Slide) AddLayer(id uuid.UUID, in LayerInput, now time.Time) error {
	if err := ensureUniquePosition(s.layerHandles(), in.Position, uuid.Nil); err != nil {
		return err
	}
	layer, err := newLayer(id, s.ID, in, now)
	if err != nil {
		return err
	}
	s.Layers = append(s.Layers, layer)
	renormalize(s.layerHandles(), now)
	s.touch(now)
	return nil
}

// UpdateLayer overwrites an active layer's fields. Fails NotFound if the id
// does not resolve to an active layer of this slide.
func (s *Slide) UpdateLayer(layerID uuid.UUID, in LayerInput, now time.Time) error {
	idx := s.findActiveLayer(layerID)
	if idx < 0 {
		return notFoundErr("layer %s not found on slide %s", layerID, s.ID)
	}
	if err := ensureUniquePosition(s.layerHandles(), in.Position, layerID); err != nil {
		return err
	}
	if err := s.Layers[idx].update(in, now); err != nil {
		return err
	}
	renormalize(s.layerHandles(), now)
	s.touch(now)
	return nil
}

// DeleteLayer soft-deletes an active layer and closes the position gap it
// leaves behind.
func (s *Slide) DeleteLayer(layerID uuid.UUID, now time.Time) error {
	idx := s.findActiveLayer(layerID)
	if idx < 0 {
		return notFoundErr("layer %s not found on slide %s", layerID, s.ID)
	}
	markDeleted(&s.Layers[idx].SoftDelete, now)
	renormalize(s.layerHandles(), now)
	s.touch(now)
	return nil
}

// RestoreLayer brings a soft-deleted layer back into the active set. The
// restored layer keeps its old position as a sort hint; renormalization
// folds it back into the contiguous range.
func (s *Slide) RestoreLayer(layerID uuid.UUID, now time.Time) error {
	for i := range s.Layers {
		if s.Layers[i].ID == layerID {
			markRestored(&s.Layers[i].SoftDelete)
			renormalize(s.layerHandles(), now)
			s.touch(now)
			return nil
		}
	}
	return notFoundErr("layer %s not found on slide %s", layerID, s.ID)
}

// ReorderLayers applies a batch of (layer id, requested position) pairs.
// All ids are resolved before any position changes, so one unresolvable id
// leaves every layer untouched. Renormalization runs once after the whole
// batch, not per pair.
func (s *Slide) ReorderLayers(entries []ReorderEntry, now time.Time) error {
	indexes := make([]int, len(entries))
	for i, e := range entries {
		idx := s.findActiveLayer(e.ID)
		if idx < 0 {
			return notFoundErr("layer %s not found on slide %s", e.ID, s.ID)
		}
		indexes[i] = idx
	}
	for i, e := range entries {
		s.Layers[indexes[i]].reorder(e.Position, now)
	}
	renormalize(s.layerHandles(), now)
	s.touch(now)
	return nil
}

// ReplaceHighlights converges the slide's highlight set to the desired
// final state, matching purely by display position:
//
//   - an active highlight whose position is absent from the desired set is
//     soft-deleted;
//   - an active highlight whose position is present is overwritten in
//     place (timestamp bumps even when nothing changed);
//   - every desired position left uncovered gets a new highlight,
//     constructed with the caller-supplied id of that entry.
//
// Desired positions are taken as given. They are the reconciliation
// identity, so they are not renormalized; a caller who wants a different
// numbering supplies it in the desired list.
func (s *Slide) ReplaceHighlights(desired []HighlightInput, now time.Time) error {
	// Validate the whole desired set up front so a bad entry cannot leave
	// the reconciliation half-applied.
	byPos := make(map[int]HighlightInput, len(desired))
	for _, in := range desired {
		in, err := in.validate()
		if err != nil {
			return err
		}
		byPos[in.Position] = in
	}

	// Converge existing active highlights: delete the unwanted, overwrite
	// the matched.
	for i := range s.Highlights {
		h := &s.Highlights[i]
		if !h.Active() {
			continue
		}
		in, ok := byPos[h.Position]
		if !ok {
			markDeleted(&h.SoftDelete, now)
			continue
		}
		// Inputs were validated above; update cannot fail here.
		if err := h.update(in, now); err != nil {
			return err
		}
	}

	// Create highlights for desired positions still uncovered.
	covered := make(map[int]bool, len(s.Highlights))
	for i := range s.Highlights {
		if s.Highlights[i].Active() {
			covered[s.Highlights[i].Position] = true
		}
	}
	for pos, in := range byPos {
		if covered[pos] {
			continue
		}
		h, err := newHighlight(in.ID, s.ID, in, now)
		if err != nil {
			return err
		}
		s.Highlights = append(s.Highlights, h)
	}

	s.touch(now)
	return nil
}
