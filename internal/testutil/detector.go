package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// FakeEntity is a value the fake detection service recognizes.
type FakeEntity struct {
	Value    string
	Category string
}

// FakeDetector is an in-process stand-in for the detection service. It speaks
// the real wire contract (POST /redact, POST /restore, GET /status) and
// replaces every configured entity value it finds with a category token.
type FakeDetector struct {
	server   *httptest.Server
	entities []FakeEntity
}

// NewFakeDetector starts a fake detection service recognizing the given
// entities. The server is closed automatically when the test finishes.
func NewFakeDetector(t *testing.T, entities ...FakeEntity) *FakeDetector {
	t.Helper()

	d := &FakeDetector{entities: entities}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /redact", d.redactHandler)
	mux.HandleFunc("POST /restore", d.restoreHandler)
	mux.HandleFunc("GET /status", d.statusHandler)

	d.server = httptest.NewServer(mux)
	t.Cleanup(d.server.Close)

	return d
}

// URL returns the base address of the fake service.
func (d *FakeDetector) URL() string {
	return d.server.URL
}

// Close stops the fake service so probes and calls against it fail.
func (d *FakeDetector) Close() {
	d.server.Close()
}

func (d *FakeDetector) redactHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text     string `json:"text"`
		DeepScan bool   `json:"deep_scan"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	redacted := req.Text
	tokens := map[string]string{}
	counts := map[string]int{}
	for _, entity := range d.entities {
		if !strings.Contains(redacted, entity.Value) {
			continue
		}
		counts[entity.Category]++
		token := fmt.Sprintf("[%s_%d]", entity.Category, counts[entity.Category])
		redacted = strings.ReplaceAll(redacted, entity.Value, token)
		tokens[token] = entity.Value
	}

	writeDetectorJSON(w, map[string]any{
		"redacted_text": redacted,
		"map":           tokens,
		"entity_counts": counts,
	})
}

func (d *FakeDetector) restoreHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string            `json:"text"`
		Map  map[string]string `json:"map"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	restored := req.Text
	for token, value := range req.Map {
		restored = strings.ReplaceAll(restored, token, value)
	}

	writeDetectorJSON(w, map[string]any{"restored_text": restored})
}

func (d *FakeDetector) statusHandler(w http.ResponseWriter, _ *http.Request) {
	writeDetectorJSON(w, map[string]any{
		"status": "ok",
		"spacy":  true,
		"phi3":   false,
		"model":  nil,
	})
}

func writeDetectorJSON(w http.ResponseWriter, value any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(value)
}
