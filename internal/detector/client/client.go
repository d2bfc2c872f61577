// Package client implements the HTTP client for the local PII detection
// service. The wire contract is fixed: POST /redact, POST /restore and
// GET /status against a single configured base address.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/allisson/redactor/internal/errors"

	detectorDomain "github.com/allisson/redactor/internal/detector/domain"
)

// redactRequest is the wire format of POST /redact.
type redactRequest struct {
	Text     string `json:"text"`
	DeepScan bool   `json:"deep_scan"`
}

// redactResponse is the wire format of the /redact response.
type redactResponse struct {
	RedactedText string            `json:"redacted_text"`
	Map          map[string]string `json:"map"`
	EntityCounts map[string]int    `json:"entity_counts"`
}

// restoreRequest is the wire format of POST /restore.
type restoreRequest struct {
	Text string            `json:"text"`
	Map  map[string]string `json:"map"`
}

// restoreResponse is the wire format of the /restore response.
type restoreResponse struct {
	RestoredText string `json:"restored_text"`
}

// statusResponse is the wire format of GET /status.
type statusResponse struct {
	Status string  `json:"status"`
	Spacy  bool    `json:"spacy"`
	Phi3   bool    `json:"phi3"`
	Model  *string `json:"model"`
}

// HTTPClient talks to the detection service over HTTP. It performs no retries
// and enforces no local payload size limit; both are caller/service concerns.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient creates a detection service client for the given base URL.
// The transport is tuned for repeated calls to a single local endpoint.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Detect sends the raw text for redaction. The deepScan flag selects whether
// the service's heavier language-model pass runs.
func (c *HTTPClient) Detect(ctx context.Context, text string, deepScan bool) (*detectorDomain.RedactionResult, error) {
	var resp redactResponse
	err := c.postJSON(ctx, "/redact", redactRequest{Text: text, DeepScan: deepScan}, &resp)
	if err != nil {
		return nil, err
	}

	result := &detectorDomain.RedactionResult{
		RedactedText: resp.RedactedText,
		Tokens:       resp.Map,
		EntityCounts: resp.EntityCounts,
	}
	if result.Tokens == nil {
		result.Tokens = map[string]string{}
	}
	if result.EntityCounts == nil {
		result.EntityCounts = map[string]int{}
	}
	return result, nil
}

// Restore sends text plus the full token map; the service substitutes every
// occurrence of a known token back to its original value. Unknown tokens are
// left unchanged by the service.
func (c *HTTPClient) Restore(ctx context.Context, text string, tokens map[string]string) (*detectorDomain.RestorationResult, error) {
	if tokens == nil {
		tokens = map[string]string{}
	}

	var resp restoreResponse
	err := c.postJSON(ctx, "/restore", restoreRequest{Text: text, Map: tokens}, &resp)
	if err != nil {
		return nil, err
	}

	return &detectorDomain.RestorationResult{RestoredText: resp.RestoredText}, nil
}

// CheckStatus performs the cheap liveness probe. A reachable service always
// reports ServiceUp; detector and deep-scan readiness depend on which models
// the service managed to load.
func (c *HTTPClient) CheckStatus(ctx context.Context) (*detectorDomain.ServiceStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/status", nil)
	if err != nil {
		return nil, apperrors.Wrap(detectorDomain.ErrServiceUnavailable, err.Error())
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(detectorDomain.ErrServiceUnavailable, err.Error())
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	if httpResp.StatusCode != http.StatusOK {
		return nil, apperrors.Wrapf(
			detectorDomain.ErrServiceUnavailable,
			"status probe returned %d",
			httpResp.StatusCode,
		)
	}

	var resp statusResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, apperrors.Wrap(detectorDomain.ErrServiceUnavailable, "malformed status response")
	}

	status := &detectorDomain.ServiceStatus{
		ServiceUp:     true,
		DetectorReady: resp.Spacy,
		DeepScanReady: resp.Phi3,
	}
	if resp.Model != nil {
		status.DeepScanModel = *resp.Model
	}
	return status, nil
}

// postJSON executes a JSON POST against the given path and decodes the
// response into out. Any transport error, timeout or non-2xx status maps to
// ErrServiceUnavailable.
func (c *HTTPClient) postJSON(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return apperrors.Wrap(err, "failed to encode request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return apperrors.Wrap(detectorDomain.ErrServiceUnavailable, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(detectorDomain.ErrServiceUnavailable, err.Error())
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return apperrors.Wrapf(
			detectorDomain.ErrServiceUnavailable,
			"%s returned %d",
			path,
			httpResp.StatusCode,
		)
	}

	if err := json.NewDecoder(httpResp.Body).Decode(out); err != nil {
		return apperrors.Wrap(
			detectorDomain.ErrServiceUnavailable,
			fmt.Sprintf("malformed response from %s", path),
		)
	}
	return nil
}
