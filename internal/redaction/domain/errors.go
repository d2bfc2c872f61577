package domain

import (
	apperrors "github.com/allisson/redactor/internal/errors"
)

// ErrDetectorOffline is returned when an operation is requested while the
// cached health state reports the detection service as unreachable. The
// operation is refused before any network call or file write happens.
var ErrDetectorOffline = apperrors.Wrap(apperrors.ErrUnavailable, "detection service is offline")
