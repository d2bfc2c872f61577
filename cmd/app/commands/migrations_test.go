package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunMigrations(t *testing.T) {
	t.Run("missing-migrations-directory", func(t *testing.T) {
		// The migrations directory is resolved relative to the working
		// directory, which is the package directory under go test.
		err := RunMigrations(testLogger(), t.TempDir()+"/redactor.db")
		require.Error(t, err)
	})
}
