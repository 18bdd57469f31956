// Package accessgate implements the coarse read/write authorization check
// consulted before any mutating store operation.
package accessgate

import (
	"errors"

	"github.com/google/uuid"
)

// Operation is the kind of access being requested.
type Operation string

const (
	OpRead  Operation = "read"
	OpWrite Operation = "write"
)

// Principal is the caller identity supplied by the external identity system.
// The zero value is an anonymous, non-admin principal.
type Principal struct {
	ID      uuid.UUID
	IsAdmin bool
}

// ErrWriteForbidden is returned when a non-administrator attempts a write.
var ErrWriteForbidden = errors.New("write operations require an administrator")

// Authorize checks whether the principal may perform the operation.
// Reads are always allowed; writes require the administrator flag.
func Authorize(op Operation, p Principal) error {
	if op == OpWrite && !p.IsAdmin {
		return ErrWriteForbidden
	}
	return nil
}
