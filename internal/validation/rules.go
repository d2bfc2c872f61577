// Package validation provides custom validation rules for the application.
package validation

import (
	"net"
	"net/url"
	"strings"
	"unicode"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/redactor/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty or whitespace-only.
var NotBlank = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_not_blank", "must be a string")
	}
	if isBlank(s) {
		return validation.NewError("validation_not_blank", "cannot be blank")
	}
	return nil
})

// isBlank reports whether the string is empty or contains only whitespace.
func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// localHostnames are names always accepted as local detector addresses.
var localHostnames = map[string]struct{}{
	"localhost": {},
}

// LocalAddress validates that a URL points at a loopback address. Document
// text is posted to the detection service, so the address must stay on this
// machine unless the operator explicitly opts out of the check.
var LocalAddress = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_local_address", "must be a string")
	}
	if !IsLocalAddress(s) {
		return validation.NewError(
			"validation_local_address",
			"must be a loopback address (localhost or 127.0.0.0/8)",
		)
	}
	return nil
})

// IsLocalAddress reports whether the given base URL targets a loopback host.
// Invalid URLs are treated as non-local.
func IsLocalAddress(baseURL string) bool {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := u.Hostname()
	if host == "" {
		return false
	}
	if _, ok := localHostnames[strings.ToLower(host)]; ok {
		return true
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return false
	}
	return ip.IsLoopback()
}
