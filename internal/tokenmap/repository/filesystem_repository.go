// Package repository implements token map persistence on the local
// filesystem: one JSON file per source document, written atomically.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	apperrors "github.com/allisson/redactor/internal/errors"
	tokenmapDomain "github.com/allisson/redactor/internal/tokenmap/domain"
)

// mapFileSuffix is appended to the document name to form the map file name.
const mapFileSuffix = ".map.json"

// FilesystemRepository stores token maps as `<document-name>.map.json` files
// under a single configured directory.
type FilesystemRepository struct {
	basePath string
}

// NewFilesystemRepository creates a repository rooted at basePath.
func NewFilesystemRepository(basePath string) *FilesystemRepository {
	return &FilesystemRepository{basePath: basePath}
}

// Path returns the map file path for the given document name.
func (r *FilesystemRepository) Path(document string) string {
	return filepath.Join(r.basePath, document+mapFileSuffix)
}

// Get loads the token map for the given document. A missing file maps to
// ErrMapNotFound; an unparsable file maps to ErrMapCorrupted.
func (r *FilesystemRepository) Get(ctx context.Context, document string) (*tokenmapDomain.TokenMap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.Path(document))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, tokenmapDomain.ErrMapNotFound
		}
		return nil, apperrors.Wrap(err, "failed to read token map")
	}

	var m tokenmapDomain.TokenMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, apperrors.Wrap(tokenmapDomain.ErrMapCorrupted, err.Error())
	}
	if m.Tokens == nil {
		m.Tokens = map[string]string{}
	}

	return &m, nil
}

// Save persists the token map atomically: the JSON document is written to a
// temporary file in the same directory and renamed over the final path, so a
// concurrent reader never observes a half-written map.
func (r *FilesystemRepository) Save(ctx context.Context, m *tokenmapDomain.TokenMap) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(r.basePath, 0o750); err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err.Error())
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err.Error())
	}

	final := r.Path(m.File)
	tmp, err := os.CreateTemp(r.basePath, fmt.Sprintf(".%s.tmp-*", m.File))
	if err != nil {
		return apperrors.Wrap(apperrors.ErrPersistence, err.Error())
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return apperrors.Wrap(apperrors.ErrPersistence, err.Error())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return apperrors.Wrap(apperrors.ErrPersistence, err.Error())
	}

	if err := os.Rename(tmp.Name(), final); err != nil {
		_ = os.Remove(tmp.Name())
		return apperrors.Wrap(apperrors.ErrPersistence, err.Error())
	}

	return nil
}
