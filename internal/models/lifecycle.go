// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// SoftDelete is the shared lifecycle field-set embedded in every slider
// entity. Deletion is always soft: the row stays addressable by identifier
// for restore, but is excluded from ordering, uniqueness and traversal.
// Hard deletion is a persistence concern (FK cascade), never a domain one.
type SoftDelete struct {
	IsDeleted bool       `json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Active returns true if the entity has not been soft-deleted.
func (sd *SoftDelete) Active() bool {
	return !sd.IsDeleted
}

// markDeleted flips the entity into the deleted state. Idempotent at the
// field level; callers guard with existence checks.
func markDeleted(sd *SoftDelete, at time.Time) {
	t := at
	sd.IsDeleted = true
	sd.DeletedAt = &t
}

// markRestored brings a soft-deleted entity back into the active set.
func markRestored(sd *SoftDelete) {
	sd.IsDeleted = false
	sd.DeletedAt = nil
}
