package repository

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	apperrors "github.com/allisson/redactor/internal/errors"
)

// FilesystemRepository stores redacted and restored document artifacts as
// plain files under two configured directories. Artifacts keep the source
// document's name and are overwritten on every run.
type FilesystemRepository struct {
	redactedPath string
	restoredPath string
}

// NewFilesystemRepository returns a new FilesystemRepository.
func NewFilesystemRepository(redactedPath, restoredPath string) *FilesystemRepository {
	return &FilesystemRepository{redactedPath: redactedPath, restoredPath: restoredPath}
}

// ReadSource reads the original document at path.
func (f *FilesystemRepository) ReadSource(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperrors.Wrapf(apperrors.ErrNotFound, "document %q", path)
		}
		return "", apperrors.Wrapf(apperrors.ErrPersistence, "read document %q: %v", path, err)
	}
	return string(data), nil
}

// ReadRedacted reads the redacted artifact previously written for document.
func (f *FilesystemRepository) ReadRedacted(_ context.Context, document string) (string, error) {
	path := filepath.Join(f.redactedPath, document)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", apperrors.Wrapf(apperrors.ErrNotFound, "redacted artifact %q", path)
		}
		return "", apperrors.Wrapf(apperrors.ErrPersistence, "read redacted artifact %q: %v", path, err)
	}
	return string(data), nil
}

// SaveRedacted writes the redacted text for document, replacing any previous
// artifact, and returns the artifact path.
func (f *FilesystemRepository) SaveRedacted(_ context.Context, document, text string) (string, error) {
	return f.save(f.redactedPath, document, text)
}

// SaveRestored writes the restored text for document, replacing any previous
// artifact, and returns the artifact path.
func (f *FilesystemRepository) SaveRestored(_ context.Context, document, text string) (string, error) {
	return f.save(f.restoredPath, document, text)
}

func (f *FilesystemRepository) save(dir, document, text string) (string, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", apperrors.Wrapf(apperrors.ErrPersistence, "create artifact directory %q: %v", dir, err)
	}
	path := filepath.Join(dir, document)
	if err := os.WriteFile(path, []byte(text), 0o640); err != nil {
		return "", apperrors.Wrapf(apperrors.ErrPersistence, "write artifact %q: %v", path, err)
	}
	return path, nil
}
