// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// mkHighlight builds a raw highlight for ordering-policy tests without
// going through a parent slide.
func mkHighlight(pos int, createdAt time.Time) *Highlight {
	return &Highlight{
		ID:        uuid.New(),
		Position:  pos,
		Text:      "t",
		Variant:   "primary",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// TestEnsureUniquePosition verifies conflict detection skips deleted
// siblings and the excluded identifier.
func TestEnsureUniquePosition(t *testing.T) {
	a := mkHighlight(0, baseTime)
	b := mkHighlight(1, baseTime)
	deleted := mkHighlight(2, baseTime)
	markDeleted(&deleted.SoftDelete, baseTime)
	siblings := []orderable{a, b, deleted}

	tests := []struct {
		name      string
		pos       int
		excluding uuid.UUID
		wantErr   bool
	}{
		{name: "free position", pos: 5, excluding: uuid.Nil, wantErr: false},
		{name: "occupied position", pos: 1, excluding: uuid.Nil, wantErr: true},
		{name: "occupied by excluded sibling", pos: 1, excluding: b.ID, wantErr: false},
		{name: "occupied only by deleted sibling", pos: 2, excluding: uuid.Nil, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ensureUniquePosition(siblings, tt.pos, tt.excluding)
			if tt.wantErr && !errors.Is(err, ErrConflict) {
				t.Errorf("ensureUniquePosition(%d) = %v, want ErrConflict", tt.pos, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ensureUniquePosition(%d) = %v, want nil", tt.pos, err)
			}
		})
	}
}

// TestRenormalizeClosesGaps verifies that renormalize rewrites active
// siblings to the contiguous range 0..N-1, preserving relative order.
func TestRenormalizeClosesGaps(t *testing.T) {
	a := mkHighlight(3, baseTime)
	b := mkHighlight(7, baseTime)
	c := mkHighlight(5, baseTime)
	later := baseTime.Add(time.Minute)

	renormalize([]orderable{a, b, c}, later)

	if a.Position != 0 || c.Position != 1 || b.Position != 2 {
		t.Fatalf("positions after renormalize = %d,%d,%d, want 0,1,2 for a,c,b",
			a.Position, c.Position, b.Position)
	}
	if !a.UpdatedAt.Equal(later) {
		t.Errorf("moved sibling UpdatedAt = %v, want %v", a.UpdatedAt, later)
	}
}

// TestRenormalizeNoSpuriousBump verifies that siblings already at their
// computed index keep their timestamp.
func TestRenormalizeNoSpuriousBump(t *testing.T) {
	a := mkHighlight(0, baseTime)
	b := mkHighlight(1, baseTime)
	later := baseTime.Add(time.Minute)

	renormalize([]orderable{a, b}, later)

	if !a.UpdatedAt.Equal(baseTime) || !b.UpdatedAt.Equal(baseTime) {
		t.Errorf("contiguous siblings were touched: a=%v b=%v, want %v",
			a.UpdatedAt, b.UpdatedAt, baseTime)
	}
}

// TestRenormalizeTieBreakByCreation verifies that siblings sharing a
// position are ordered by creation time.
func TestRenormalizeTieBreakByCreation(t *testing.T) {
	older := mkHighlight(4, baseTime)
	newer := mkHighlight(4, baseTime.Add(time.Second))

	renormalize([]orderable{newer, older}, baseTime.Add(time.Minute))

	if older.Position != 0 || newer.Position != 1 {
		t.Errorf("tie-break positions = older:%d newer:%d, want older:0 newer:1",
			older.Position, newer.Position)
	}
}

// TestRenormalizeSkipsDeleted verifies that soft-deleted siblings are
// neither counted nor renumbered.
func TestRenormalizeSkipsDeleted(t *testing.T) {
	a := mkHighlight(0, baseTime)
	gone := mkHighlight(1, baseTime)
	markDeleted(&gone.SoftDelete, baseTime)
	b := mkHighlight(2, baseTime)

	renormalize([]orderable{a, gone, b}, baseTime.Add(time.Minute))

	if a.Position != 0 || b.Position != 1 {
		t.Errorf("active positions = %d,%d, want 0,1", a.Position, b.Position)
	}
	if gone.Position != 1 {
		t.Errorf("deleted sibling position = %d, want untouched 1", gone.Position)
	}
}

// TestSoftDeleteLifecycle verifies the two lifecycle transitions and their
// field-level idempotence.
func TestSoftDeleteLifecycle(t *testing.T) {
	h := mkHighlight(0, baseTime)
	if !h.Active() {
		t.Fatal("new highlight should be active")
	}

	markDeleted(&h.SoftDelete, baseTime)
	if h.Active() || h.DeletedAt == nil || !h.DeletedAt.Equal(baseTime) {
		t.Fatalf("after delete: active=%v deletedAt=%v", h.Active(), h.DeletedAt)
	}

	// Deleting again is a field-level no-op apart from the timestamp.
	markDeleted(&h.SoftDelete, baseTime.Add(time.Hour))
	if h.Active() {
		t.Fatal("double delete should stay deleted")
	}

	markRestored(&h.SoftDelete)
	if !h.Active() || h.DeletedAt != nil {
		t.Fatalf("after restore: active=%v deletedAt=%v", h.Active(), h.DeletedAt)
	}

	markRestored(&h.SoftDelete)
	if !h.Active() {
		t.Fatal("double restore should stay active")
	}
}
