package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/redactor/internal/errors"
)

func TestWrapValidationError(t *testing.T) {
	t.Run("wraps non-nil error as ErrInvalidInput", func(t *testing.T) {
		err := WrapValidationError(apperrors.New("field is required"))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrInvalidInput))
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.NoError(t, WrapValidationError(nil))
	})
}

func TestNotBlank(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"non-blank string", "hello", false},
		{"empty string", "", true},
		{"whitespace only", "   \t\n", true},
		{"leading whitespace", "  hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NotBlank.Validate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsLocalAddress(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    bool
	}{
		{"localhost with port", "http://localhost:8765", true},
		{"localhost uppercase", "http://LOCALHOST:8765", true},
		{"loopback IPv4", "http://127.0.0.1:8765", true},
		{"loopback IPv4 non-canonical", "http://127.0.0.2:8765", true},
		{"loopback IPv6", "http://[::1]:8765", true},
		{"https loopback", "https://localhost:8765", true},
		{"remote host", "http://detector.example.com:8765", false},
		{"remote IP", "http://192.168.0.10:8765", false},
		{"missing scheme", "localhost:8765", false},
		{"non-http scheme", "ftp://localhost", false},
		{"empty", "", false},
		{"garbage", "://not a url", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLocalAddress(tt.baseURL))
		})
	}
}

func TestLocalAddress(t *testing.T) {
	assert.NoError(t, LocalAddress.Validate("http://localhost:8765"))
	assert.Error(t, LocalAddress.Validate("http://pii-exfil.example.com"))
	assert.Error(t, LocalAddress.Validate(42))
}
