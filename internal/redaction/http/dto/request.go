// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/redactor/internal/validation"
)

// RedactDocumentRequest contains the parameters for redacting a whole document.
type RedactDocumentRequest struct {
	Document string `json:"document" binding:"required"`
	DeepScan bool   `json:"deep_scan"`
}

// Validate checks if the redact document request is valid.
func (r *RedactDocumentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Document,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// RestoreDocumentRequest contains the parameters for restoring a redacted document.
type RestoreDocumentRequest struct {
	Document string `json:"document" binding:"required"`
}

// Validate checks if the restore document request is valid.
func (r *RestoreDocumentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Document,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

// RedactFragmentRequest contains the parameters for redacting a text fragment
// against a document's token map.
type RedactFragmentRequest struct {
	Document string `json:"document" binding:"required"`
	Fragment string `json:"fragment" binding:"required"`
	DeepScan bool   `json:"deep_scan"`
}

// Validate checks if the redact fragment request is valid.
func (r *RedactFragmentRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Document,
			validation.Required,
			customValidation.NotBlank,
		),
		validation.Field(&r.Fragment,
			validation.Required,
		),
	)
}
