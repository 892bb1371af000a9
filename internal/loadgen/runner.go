package loadgen

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/secondwind/planner/pkg/logger"
)

// Run executes a complete load run: health check, generation, concurrent
// submission with verification, and a final stats report.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting planner load run",
		logger.String("baseURL", config.BaseURL),
		logger.Int("requests", config.NumRequests),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()))

	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	requests := generateRequests(ctx, config, stats)

	if err := submitRequests(ctx, config, requests, stats); err != nil {
		return fmt.Errorf("request submission failed: %w", err)
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(ctx, stats)

	if stats.VerifyFailures > 0 {
		return fmt.Errorf("%d responses failed verification", stats.VerifyFailures)
	}

	logger.Get().Info(ctx, "load run completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	client := newHTTPClient(config.Timeout)

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

func displayFinalStats(ctx context.Context, stats *Stats) {
	logger.Get().Info(ctx, "load run finished",
		logger.Int("generated", stats.RequestsGenerated),
		logger.Int("submitted", stats.RequestsSubmitted),
		logger.Int("successful", stats.RequestsSuccessful),
		logger.Int("failed", stats.RequestsFailed),
		logger.Int("onTrack", stats.OnTrack),
		logger.Int("offTrack", stats.OffTrack),
		logger.Int("verifyFailures", stats.VerifyFailures),
		logger.String("duration", stats.Duration.String()))
}
