// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between failure scenarios and pick an HTTP
// status. The taxonomy is deliberately shallow: entities are either
// missing, in a state that forbids the operation, or out of capacity.
package repository

import "errors"

// ErrNotFound is returned when a referenced entity is absent or does
// not belong to the expected parent. Handlers translate this into 404.
var ErrNotFound = errors.New("not found")

// ErrInvalidState is returned when a precondition on status or flags is
// violated, such as transferring a checked-in registration or printing
// on an inactive station. Handlers translate this into 400.
var ErrInvalidState = errors.New("invalid state")

// ErrCapacityExceeded is returned when a ticket type does not have
// enough unsold inventory to satisfy the operation.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// ErrLocked is returned when a badge template update touches design
// fields while the template is locked. Handlers translate this into 403
// together with the lock timestamp and generated-badge count.
var ErrLocked = errors.New("template locked")

// ErrReprintNotAllowed is returned when a second print is attempted on
// a station that forbids reprints.
var ErrReprintNotAllowed = errors.New("reprint not allowed")

// ErrReprintLimitExceeded is returned when the computed print number
// exceeds the station's reprint ceiling.
var ErrReprintLimitExceeded = errors.New("reprint limit exceeded")

// ErrForbidden is returned when the caller attempts an operation on a
// resource they may not touch. Handlers translate this into 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict signals that an operation cannot proceed due to existing
// dependent records (e.g. deleting an event that still has
// registrations). Handlers translate this into 409.
var ErrConflict = errors.New("conflict")
