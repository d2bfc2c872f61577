package httputil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithQuery(t *testing.T, query string) *gin.Context {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/operations?"+query, nil)
	return c
}

func TestParsePagination(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		offset, limit, err := ParsePagination(contextWithQuery(t, ""))

		require.NoError(t, err)
		assert.Equal(t, 0, offset)
		assert.Equal(t, 50, limit)
	})

	t.Run("explicit values", func(t *testing.T) {
		offset, limit, err := ParsePagination(contextWithQuery(t, "offset=20&limit=10"))

		require.NoError(t, err)
		assert.Equal(t, 20, offset)
		assert.Equal(t, 10, limit)
	})

	t.Run("negative offset rejected", func(t *testing.T) {
		_, _, err := ParsePagination(contextWithQuery(t, "offset=-1"))
		assert.Error(t, err)
	})

	t.Run("limit above maximum rejected", func(t *testing.T) {
		_, _, err := ParsePagination(contextWithQuery(t, "limit=101"))
		assert.Error(t, err)
	})

	t.Run("non-numeric values rejected", func(t *testing.T) {
		_, _, err := ParsePagination(contextWithQuery(t, "offset=abc"))
		assert.Error(t, err)

		_, _, err = ParsePagination(contextWithQuery(t, "limit=xyz"))
		assert.Error(t, err)
	})
}
