// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Highlight is a small labelled badge attached to a slide ("New", "-20%").
// Unlike layers, highlights carry no stable reconciliation identity of
// their own: the display position is the identity used when a caller
// replaces the whole set (see Slide.ReplaceHighlights).
type Highlight struct {
	ID        uuid.UUID `json:"id"`
	SlideID   uuid.UUID `json:"slide_id"`
	Position  int       `json:"position"`
	Text      string    `json:"text"`
	Variant   string    `json:"variant"` // free-text style tag, e.g. "primary"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	SoftDelete
}

// HighlightInput carries the caller-supplied fields for one highlight.
// ID is used only when reconciliation has to construct a new highlight.
type HighlightInput struct {
	ID       uuid.UUID
	Text     string
	Variant  string
	Position int
}

func (in HighlightInput) validate() (HighlightInput, error) {
	in.Text = strings.TrimSpace(in.Text)
	in.Variant = strings.TrimSpace(in.Variant)
	if in.Text == "" {
		return in, validationErr("highlight text is required")
	}
	if in.Variant == "" {
		return in, validationErr("highlight variant is required")
	}
	// Desired positions bypass renormalization, so the lower bound has to
	// be enforced here.
	if in.Position < 0 {
		return in, validationErr("highlight position must not be negative, got %d", in.Position)
	}
	return in, nil
}

// newHighlight is the validating factory for highlights.
func newHighlight(id, slideID uuid.UUID, in HighlightInput, now time.Time) (Highlight, error) {
	in, err := in.validate()
	if err != nil {
		return Highlight{}, err
	}
	return Highlight{
		ID:        id,
		SlideID:   slideID,
		Position:  in.Position,
		Text:      in.Text,
		Variant:   in.Variant,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// update overwrites text, variant and position. The timestamp bumps even
// when the new values equal the old ones; reconciliation relies on that
// being harmless.
func (h *Highlight) update(in HighlightInput, now time.Time) error {
	in, err := in.validate()
	if err != nil {
		return err
	}
	h.Text = in.Text
	h.Variant = in.Variant
	h.Position = in.Position
	h.UpdatedAt = now
	return nil
}

// orderable implementation.

func (h *Highlight) entityID() uuid.UUID       { return h.ID }
func (h *Highlight) displayOrder() int         { return h.Position }
func (h *Highlight) createdInstant() time.Time { return h.CreatedAt }
func (h *Highlight) orderActive() bool         { return h.Active() }
func (h *Highlight) setDisplayOrder(pos int, now time.Time) {
	h.Position = pos
	h.UpdatedAt = now
}
