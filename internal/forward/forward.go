// Package forward delivers completed surveys to the external
// spreadsheet-script endpoint. The transfer is one way: the response
// body is discarded and the payload is idempotent, so a retry after a
// transport failure is always safe.
package forward

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ssoksound/surveywizard/internal/model"
)

// Client submits a completed survey payload.
type Client interface {
	Submit(ctx context.Context, payload model.SubmissionPayload) error
}

// HTTPClient posts payloads as JSON to a fixed endpoint.
type HTTPClient struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger
}

// NewHTTPClient creates a forwarder for the given endpoint. An empty
// endpoint disables forwarding: Submit logs and reports success.
func NewHTTPClient(endpoint string, logger *slog.Logger) *HTTPClient {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

// Submit posts the payload. Only transport-level failures return an
// error; the HTTP status is logged but not consulted, matching the
// endpoint's opaque-response contract.
func (c *HTTPClient) Submit(ctx context.Context, payload model.SubmissionPayload) error {
	if c.endpoint == "" {
		c.logger.Info("forwarding disabled, submission not sent", "brand", payload.BrandName)
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post submission: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	c.logger.Info("submission forwarded", "brand", payload.BrandName, "status", resp.StatusCode)
	return nil
}
