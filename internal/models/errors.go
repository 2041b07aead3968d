// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
)

// The slider engine raises exactly three error kinds, all before any field
// is mutated. Callers match them with errors.Is.
var (
	// ErrValidation marks caller-fixable input problems: blank required
	// fields or numeric values outside their stated bounds.
	ErrValidation = errors.New("validation")

	// ErrConflict marks a requested display position already occupied by
	// another active sibling.
	ErrConflict = errors.New("conflict")

	// ErrNotFound marks an identifier that does not resolve to a
	// currently-active child of the expected parent. A soft-deleted child
	// is not found for update/delete purposes.
	ErrNotFound = errors.New("not found")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func conflictErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func notFoundErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}
