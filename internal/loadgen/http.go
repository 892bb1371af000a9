package loadgen

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	json "github.com/goccy/go-json"

	"github.com/secondwind/planner/pkg/logger"
)

// HTTPClient wraps http.Client with a timeout.
type HTTPClient struct {
	client *http.Client
}

func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{Timeout: timeout},
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with a JSON body and optional request id.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}, requestID string) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}
	return c.client.Do(req)
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer func() {
		_ = resp.Body.Close()
	}()
	return io.ReadAll(resp.Body)
}

// submitRequests submits analysis requests concurrently and verifies each
// response as it arrives.
func submitRequests(ctx context.Context, config *Config, requests []Request, stats *Stats) error {
	logger.Get().Info(ctx, "submitting analysis requests",
		logger.Int("count", len(requests)),
		logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/api/v1/financial/analyze"

	var (
		successful     int64
		failed         int64
		onTrack        int64
		verifyFailures int64
	)

	requestChan := make(chan Request, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for r := range requestChan {
				select {
				case <-ctx.Done():
					return
				default:
				}

				resp, err := client.Post(ctx, url, r, r.RequestID)
				if err != nil {
					atomic.AddInt64(&failed, 1)
					if config.Verbose {
						logger.Get().Warn(ctx, "request failed", logger.Error(err))
					}
					continue
				}
				body, err := readResponseBody(resp)
				if err != nil || resp.StatusCode != http.StatusOK {
					atomic.AddInt64(&failed, 1)
					continue
				}

				var parsed Response
				if err := json.Unmarshal(body, &parsed); err != nil {
					atomic.AddInt64(&failed, 1)
					continue
				}

				atomic.AddInt64(&successful, 1)
				if parsed.Analysis.Status.IsOnTrack {
					atomic.AddInt64(&onTrack, 1)
				}
				if err := verifyResponse(r, &parsed); err != nil {
					atomic.AddInt64(&verifyFailures, 1)
					logger.Get().Warn(ctx, "verification failed", logger.Error(err))
				}
			}
		}()
	}

	for _, r := range requests {
		requestChan <- r
	}
	close(requestChan)
	wg.Wait()

	stats.RequestsSubmitted = len(requests)
	stats.RequestsSuccessful = int(successful)
	stats.RequestsFailed = int(failed)
	stats.OnTrack = int(onTrack)
	stats.OffTrack = int(successful - onTrack)
	stats.VerifyFailures = int(verifyFailures)

	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(requests))
	}
	return nil
}
