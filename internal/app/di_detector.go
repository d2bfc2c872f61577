package app

import (
	"fmt"
	"log/slog"
	"net"
	"net/url"

	detectorClient "github.com/allisson/redactor/internal/detector/client"
	"github.com/allisson/redactor/internal/health"
)

// DetectorClient returns the HTTP client for the PII detection service.
func (c *Container) DetectorClient() (*detectorClient.HTTPClient, error) {
	var err error
	c.detectorClientInit.Do(func() {
		c.detectorClient, err = c.initDetectorClient()
		if err != nil {
			c.initErrors["detectorClient"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["detectorClient"]; exists {
		return nil, storedErr
	}
	return c.detectorClient, nil
}

// HealthMonitor returns the detection service health monitor. The monitor is
// created stopped; callers start the polling loop with Start.
func (c *Container) HealthMonitor() (*health.Monitor, error) {
	var err error
	c.healthMonitorInit.Do(func() {
		c.healthMonitor, err = c.initHealthMonitor()
		if err != nil {
			c.initErrors["healthMonitor"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["healthMonitor"]; exists {
		return nil, storedErr
	}
	return c.healthMonitor, nil
}

// initDetectorClient creates the detection service client after validating
// the configured address. Document text is posted to the detection service,
// so non-loopback addresses are refused unless explicitly allowed.
func (c *Container) initDetectorClient() (*detectorClient.HTTPClient, error) {
	if err := c.validateDetectorAddress(); err != nil {
		return nil, err
	}
	return detectorClient.NewHTTPClient(c.config.DetectorBaseURL, c.config.DetectorTimeout), nil
}

// initHealthMonitor creates the health monitor probing the detector client.
func (c *Container) initHealthMonitor() (*health.Monitor, error) {
	client, err := c.DetectorClient()
	if err != nil {
		return nil, fmt.Errorf("failed to get detector client for health monitor: %w", err)
	}
	return health.NewMonitor(client, c.config.HealthCheckInterval, c.Logger()), nil
}

// validateDetectorAddress enforces the loopback-only policy for the detection
// service address.
func (c *Container) validateDetectorAddress() error {
	parsed, err := url.Parse(c.config.DetectorBaseURL)
	if err != nil {
		return fmt.Errorf("invalid detector base url %q: %w", c.config.DetectorBaseURL, err)
	}

	host := parsed.Hostname()
	if isLoopbackHost(host) {
		return nil
	}

	if !c.config.DetectorAllowRemote {
		return fmt.Errorf(
			"detector base url %q is not a loopback address; set DETECTOR_ALLOW_REMOTE=true to permit sending document text to a remote detection service",
			c.config.DetectorBaseURL,
		)
	}

	c.Logger().Warn(
		"detection service address is not loopback, document text will leave this machine",
		slog.String("detector_base_url", c.config.DetectorBaseURL),
	)
	return nil
}

// isLoopbackHost reports whether host names the local machine.
func isLoopbackHost(host string) bool {
	if host == "localhost" {
		return true
	}
	if ip := net.ParseIP(host); ip != nil {
		return ip.IsLoopback()
	}
	return false
}
