package domain

import (
	"github.com/allisson/fieldvault/internal/errors"
)

// Record-specific error definitions.
var (
	// ErrRecordNotFound indicates no active record exists with the given name.
	ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "record not found")

	// ErrRecordAlreadyExists indicates an active record with the same name already exists.
	ErrRecordAlreadyExists = errors.Wrap(errors.ErrConflict, "record already exists")
)
