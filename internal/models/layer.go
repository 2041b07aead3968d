// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// LayerType distinguishes the kinds of visual elements a slide can stack.
type LayerType string

const (
	LayerTypeText   LayerType = "text"
	LayerTypeImage  LayerType = "image"
	LayerTypeButton LayerType = "button"
	LayerTypeBadge  LayerType = "badge"
	LayerTypeCustom LayerType = "custom"
)

// AnimationOrigin is the direction a layer enters the viewport from.
type AnimationOrigin string

const (
	AnimateFromLeft   AnimationOrigin = "left"
	AnimateFromRight  AnimationOrigin = "right"
	AnimateFromTop    AnimationOrigin = "top"
	AnimateFromBottom AnimationOrigin = "bottom"
	AnimateFromFade   AnimationOrigin = "fade"
	AnimateFromZoom   AnimationOrigin = "zoom"
)

// Layer is a single visual element inside a slide: a headline, an image,
// a button. Layers are ordered by Position among the active layers of the
// owning slide; mutation goes through the slide's methods only.
type Layer struct {
	ID          uuid.UUID       `json:"id"`
	SlideID     uuid.UUID       `json:"slide_id"`
	Position    int             `json:"position"`
	Type        LayerType       `json:"type"`
	Content     string          `json:"content"`
	MediaURL    *string         `json:"media_url,omitempty"`
	X           float64         `json:"x"` // fractional horizontal offset, percent
	Y           float64         `json:"y"` // fractional vertical offset, percent
	Width       string          `json:"width"` // CSS width token, e.g. "32%"
	AnimateFrom AnimationOrigin `json:"animate_from"`
	DelayMs     int             `json:"delay_ms"`
	DurationMs  int             `json:"duration_ms"`
	Easing      string          `json:"easing"`
	Visibility  string          `json:"visibility"` // responsive-visibility token
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	SoftDelete
}

// LayerInput carries the caller-supplied fields for creating or fully
// updating a layer.
type LayerInput struct {
	Position    int
	Type        LayerType
	Content     string
	MediaURL    *string
	X           float64
	Y           float64
	Width       string
	AnimateFrom AnimationOrigin
	DelayMs     int
	DurationMs  int
	Easing      string
	Visibility  string
}

// validate trims the required string fields and rejects blank ones. It
// returns the trimmed input so callers assign only sanitized values.
func (in LayerInput) validate() (LayerInput, error) {
	in.Content = strings.TrimSpace(in.Content)
	in.Width = strings.TrimSpace(in.Width)
	in.Easing = strings.TrimSpace(in.Easing)
	in.Visibility = strings.TrimSpace(in.Visibility)
	if in.MediaURL != nil {
		u := strings.TrimSpace(*in.MediaURL)
		in.MediaURL = &u
	}

	switch {
	case in.Content == "":
		return in, validationErr("layer content is required")
	case in.Width == "":
		return in, validationErr("layer width is required")
	case in.Easing == "":
		return in, validationErr("layer easing is required")
	case in.Visibility == "":
		return in, validationErr("layer visibility is required")
	}
	return in, nil
}

// newLayer is the validating factory for layers. The identifier is
// supplied by the caller, never generated here.
func newLayer(id, slideID uuid.UUID, in LayerInput, now time.Time) (Layer, error) {
	in, err := in.validate()
	if err != nil {
		return Layer{}, err
	}
	return Layer{
		ID:          id,
		SlideID:     slideID,
		Position:    in.Position,
		Type:        in.Type,
		Content:     in.Content,
		MediaURL:    in.MediaURL,
		X:           in.X,
		Y:           in.Y,
		Width:       in.Width,
		AnimateFrom: in.AnimateFrom,
		DelayMs:     in.DelayMs,
		DurationMs:  in.DurationMs,
		Easing:      in.Easing,
		Visibility:  in.Visibility,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// update overwrites all mutable fields. Validation completes before the
// first assignment so a rejected update leaves the layer untouched.
func (l *Layer) update(in LayerInput, now time.Time) error {
	in, err := in.validate()
	if err != nil {
		return err
	}
	l.Position = in.Position
	l.Type = in.Type
	l.Content = in.Content
	l.MediaURL = in.MediaURL
	l.X = in.X
	l.Y = in.Y
	l.Width = in.Width
	l.AnimateFrom = in.AnimateFrom
	l.DelayMs = in.DelayMs
	l.DurationMs = in.DurationMs
	l.Easing = in.Easing
	l.Visibility = in.Visibility
	l.UpdatedAt = now
	return nil
}

// reorder changes only the position and timestamp, with no content
// validation. Used by renormalization and explicit bulk reorder.
func (l *Layer) reorder(pos int, now time.Time) {
	l.Position = pos
	l.UpdatedAt = now
}

// orderable implementation.

func (l *Layer) entityID() uuid.UUID        { return l.ID }
func (l *Layer) displayOrder() int          { return l.Position }
func (l *Layer) createdInstant() time.Time  { return l.CreatedAt }
func (l *Layer) orderActive() bool          { return l.Active() }
func (l *Layer) setDisplayOrder(pos int, now time.Time) { l.reorder(pos, now) }
