package domain

import (
	"github.com/allisson/redactor/internal/errors"
)

var (
	// ErrServiceUnavailable indicates the detection service could not be
	// reached or answered with a non-success status. The client never retries;
	// retry policy belongs to callers.
	ErrServiceUnavailable = errors.Wrap(errors.ErrUnavailable, "detection service unavailable")
)
