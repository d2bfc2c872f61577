package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/redactor/internal/metrics"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type stubDetectorState struct {
	online bool
}

func (s *stubDetectorState) Online() bool {
	return s.online
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func performRequest(handler http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	handler.ServeHTTP(w, req)
	return w
}

func TestServer_HealthEndpoint(t *testing.T) {
	server := NewServer(ServerConfig{Host: "127.0.0.1", Port: 8080}, &stubDetectorState{}, testLogger())

	w := performRequest(server.GetHandler(), http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
}

func TestServer_ReadinessEndpoint(t *testing.T) {
	t.Run("Success_DetectorOnline", func(t *testing.T) {
		server := NewServer(ServerConfig{}, &stubDetectorState{online: true}, testLogger())

		w := performRequest(server.GetHandler(), http.MethodGet, "/ready")

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ready", body["status"])
		assert.Equal(t, true, body["detector_online"])
	})

	t.Run("Success_DetectorOffline", func(t *testing.T) {
		server := NewServer(ServerConfig{}, &stubDetectorState{online: false}, testLogger())

		w := performRequest(server.GetHandler(), http.MethodGet, "/ready")

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ready", body["status"])
		assert.Equal(t, false, body["detector_online"])
	})
}

func TestServer_RequestIDHeader(t *testing.T) {
	server := NewServer(ServerConfig{}, &stubDetectorState{}, testLogger())

	w := performRequest(server.GetHandler(), http.MethodGet, "/health")

	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
}

func TestServer_RateLimit(t *testing.T) {
	cfg := ServerConfig{
		RateLimitEnabled: true,
		RateLimitRPS:     1,
		RateLimitBurst:   2,
	}
	server := NewServer(cfg, &stubDetectorState{}, testLogger())

	assert.Equal(t, http.StatusOK, performRequest(server.GetHandler(), http.MethodGet, "/health").Code)
	assert.Equal(t, http.StatusOK, performRequest(server.GetHandler(), http.MethodGet, "/health").Code)

	w := performRequest(server.GetHandler(), http.MethodGet, "/health")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestServer_CORSHeaders(t *testing.T) {
	cfg := ServerConfig{
		CORSEnabled:      true,
		CORSAllowOrigins: "http://localhost:3000",
	}
	server := NewServer(cfg, &stubDetectorState{}, testLogger())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RouterRegistration(t *testing.T) {
	server := NewServer(ServerConfig{}, &stubDetectorState{}, testLogger())
	server.Router().GET("/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})

	w := performRequest(server.GetHandler(), http.MethodGet, "/v1/ping")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMetricsServer_MetricsEndpoint(t *testing.T) {
	provider, err := metrics.NewProvider("redactor_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(t.Context()) })

	server := NewMetricsServer("127.0.0.1", 9090, testLogger(), provider)

	w := performRequest(server.GetHandler(), http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, w.Code)
}
