// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// orderable is the ordering contract shared by slides, layers and
// highlights. Implemented with pointer receivers so renormalize can
// rewrite positions in place.
type orderable interface {
	entityID() uuid.UUID
	displayOrder() int
	createdInstant() time.Time
	orderActive() bool
	setDisplayOrder(pos int, now time.Time)
}

// ReorderEntry is the input shape of bulk reorder operations: one child
// identifier paired with its requested display position.
type ReorderEntry struct {
	ID       uuid.UUID
	Position int
}

// sortByOrder sorts sibling handles by (position, creation time) ascending.
func sortByOrder[T orderable](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].displayOrder() != items[j].displayOrder() {
			return items[i].displayOrder() < items[j].displayOrder()
		}
		return items[i].createdInstant().Before(items[j].createdInstant())
	})
}

// ensureUniquePosition fails with a Conflict error if any active sibling
// other than excluding already occupies pos. Soft-deleted siblings never
// participate.
func ensureUniquePosition(siblings []orderable, pos int, excluding uuid.UUID) error {
	for _, s := range siblings {
		if !s.orderActive() || s.entityID() == excluding {
			continue
		}
		if s.displayOrder() == pos {
			return conflictErr("position %d is already occupied by %s", pos, s.entityID())
		}
	}
	return nil
}

// renormalize reassigns contiguous positions 0..N-1 to the active siblings,
// ordered by (current position, creation time). Only siblings whose
// computed index differs from their stored position are rewritten, so an
// already-contiguous collection gets no spurious timestamp bumps.
// Soft-deleted siblings are excluded and never renumbered.
func renormalize(siblings []orderable, now time.Time) {
	active := make([]orderable, 0, len(siblings))
	for _, s := range siblings {
		if s.orderActive() {
			active = append(active, s)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		if active[i].displayOrder() != active[j].displayOrder() {
			return active[i].displayOrder() < active[j].displayOrder()
		}
		return active[i].createdInstant().Before(active[j].createdInstant())
	})

	for idx, s := range active {
		if s.displayOrder() != idx {
			s.setDisplayOrder(idx, now)
		}
	}
}
