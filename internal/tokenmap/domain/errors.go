package domain

import (
	"github.com/allisson/redactor/internal/errors"
)

var (
	// ErrMapNotFound indicates no token map exists for the document.
	ErrMapNotFound = errors.Wrap(errors.ErrNotFound, "token map not found")

	// ErrMapCorrupted indicates the map file exists but cannot be parsed.
	ErrMapCorrupted = errors.Wrap(errors.ErrCorrupted, "token map corrupted")
)
