// Package repository declares the typed data access contracts, one accessor per entity.
// Implementations live in subpackages (postgres). Accessors are read-oriented,
// stateless and safe for concurrent use; they hold no business logic.
package repository

import (
	"errors"
	"time"
)

var (
	// ErrInvalidArgument marks a malformed request rejected before any query runs.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDuplicate marks an insert rejected by a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
)

// DateRange is an inclusive [From, To] range of calendar dates.
type DateRange struct {
	From time.Time `validate:"required"`
	To   time.Time `validate:"required,gtefield=From"`
}

// TimeRange is an inclusive [From, To] range of instants.
type TimeRange struct {
	From time.Time `validate:"required"`
	To   time.Time `validate:"required,gtefield=From"`
}
