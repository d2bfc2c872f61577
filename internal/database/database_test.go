package database

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("opens database and creates parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "test.db")

		db, err := Connect(Config{
			Path:               path,
			MaxOpenConnections: 1,
			MaxIdleConnections: 1,
			ConnMaxLifetime:    time.Minute,
		})
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		_, err = db.Exec("CREATE TABLE t (id INTEGER PRIMARY KEY)")
		assert.NoError(t, err)
	})

	t.Run("fails when path is a directory", func(t *testing.T) {
		_, err := Connect(Config{
			Path:               t.TempDir(),
			MaxOpenConnections: 1,
			MaxIdleConnections: 1,
			ConnMaxLifetime:    time.Minute,
		})
		assert.Error(t, err)
	})
}
