package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang-trade-pilot/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// statusError is returned when the upstream answers with a non-OK status.
type statusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// jsonClient is a rate limited JSON over HTTP client shared by the upstream adapters.
type jsonClient struct {
	name                string
	baseURL             string
	maxRequestPerMinute int
	log                 *logger.Logger
	httpClient          *http.Client
	requestLimiter      *rate.Limiter
}

func newJSONClient(name, baseURL string, maxRequestPerMinute int, timeout time.Duration, log *logger.Logger) *jsonClient {
	limit := rate.Inf
	if maxRequestPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(maxRequestPerMinute))
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &jsonClient{
		name:                name,
		baseURL:             baseURL,
		maxRequestPerMinute: maxRequestPerMinute,
		log:                 log,
		httpClient:          &http.Client{Timeout: timeout},
		requestLimiter:      rate.NewLimiter(limit, 1),
	}
}

func (c *jsonClient) do(ctx context.Context, method, path string, payload interface{}, out interface{}) error {
	url := c.baseURL + path
	fields := []zap.Field{
		zap.String("upstream", c.name),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("max_request_per_minute", c.maxRequestPerMinute),
	}

	if err := c.requestLimiter.Wait(ctx); err != nil {
		fields = append(fields, zap.Error(err))
		c.log.ErrorContext(ctx, "Failed to wait for request limit", fields...)
		return err
	}

	var body io.Reader
	if payload != nil {
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(jsonPayload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		c.log.ErrorContext(ctx, "Failed to create new http request", fields...)
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		fields = append(fields, zap.Error(err))
		c.log.ErrorContext(ctx, "Failed to send request", fields...)
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		fields = append(fields, zap.Error(err))
		c.log.ErrorContext(ctx, "Failed to read response body", fields...)
		return err
	}

	if resp.StatusCode != http.StatusOK {
		fields = append(fields, zap.Int("status_code", resp.StatusCode))
		c.log.WarnContext(ctx, "Received non-OK response", fields...)
		return &statusError{URL: url, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		fields = append(fields, zap.Error(err))
		c.log.ErrorContext(ctx, "Failed to decode response body", fields...)
		return err
	}
	return nil
}
