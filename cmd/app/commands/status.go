package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// RunStatus probes the detection service and prints its diagnostic. An
// unreachable service is reported as a status, not a command failure.
func RunStatus(
	ctx context.Context,
	prober StatusProber,
	logger *slog.Logger,
	out io.Writer,
	format string,
) error {
	status, err := prober.CheckNow(ctx)
	if err != nil {
		logger.Warn("detection service probe failed", slog.Any("error", err))
	}

	serviceUp := false
	detectorReady := false
	deepScanReady := false
	deepScanModel := ""
	if status != nil {
		serviceUp = status.ServiceUp
		detectorReady = status.DetectorReady
		deepScanReady = status.DeepScanReady
		deepScanModel = status.DeepScanModel
	}

	if format == "json" {
		return writeJSON(out, map[string]any{
			"service_up":      serviceUp,
			"detector_ready":  detectorReady,
			"deep_scan_ready": deepScanReady,
			"deep_scan_model": deepScanModel,
			"state":           string(prober.State()),
		})
	}

	fmt.Fprintf(out, "Detection service: %s\n", prober.State())
	fmt.Fprintf(out, "Detector ready: %t\n", detectorReady)
	fmt.Fprintf(out, "Deep scan ready: %t\n", deepScanReady)
	if deepScanModel != "" {
		fmt.Fprintf(out, "Deep scan model: %s\n", deepScanModel)
	}
	return nil
}
