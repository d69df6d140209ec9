package findwork

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"findwork-assistant/internal/domain"
	"findwork-assistant/pkg/logging"
)

const (
	defaultBaseURL     = "https://findwork.dev/api/jobs/"
	defaultTimeout     = 5 * time.Second
	defaultMaxAttempts = 3
	defaultBackoff     = 2 * time.Second
)

// ErrExhausted is returned after the full attempt budget fails. Its text
// is part of the tool contract and surfaces verbatim in payloads.
var ErrExhausted = errors.New("Failed to fetch job listings after multiple attempts.")

// NewClient instantiates a Findwork API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("findwork: api key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	retry := cfg.Retry
	if retry.MaxAttempts <= 0 {
		retry.MaxAttempts = defaultMaxAttempts
	}
	if retry.Backoff <= 0 {
		retry.Backoff = defaultBackoff
	}
	if retry.Retriable == nil {
		retry.Retriable = func(int, error) bool { return true }
	}

	sleep := cfg.Sleep
	if sleep == nil {
		sleep = waitFor
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		timeout:    timeout,
		retry:      retry,
		sleep:      sleep,
		limiter:    cfg.Limiter,
		logger:     logger,
	}, nil
}

// SearchJobs issues one GET against the listings endpoint with bounded
// retry. Transport errors and non-2xx statuses are retried identically
// until the attempt budget runs out, then ErrExhausted is returned.
func (c *Client) SearchJobs(ctx context.Context, params domain.SearchParameters) (domain.ListingResponse, error) {
	if c == nil {
		return domain.ListingResponse{}, fmt.Errorf("findwork: client is nil")
	}

	params = params.Normalized()

	u, err := c.buildSearchURL(params)
	if err != nil {
		return domain.ListingResponse{}, err
	}

	var lastErr error
	for attempt := 1; attempt <= c.retry.MaxAttempts; attempt++ {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return domain.ListingResponse{}, err
			}
		}

		c.logger.Info("findwork request",
			"attempt", attempt,
			"search", params.Search,
			"location", params.Location,
			"page", params.Page,
		)

		resp, status, err := c.attempt(ctx, u)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		c.logger.Error("findwork request failed",
			"attempt", attempt,
			"status", status,
			"err", err,
		)

		if !c.retry.Retriable(status, err) {
			return domain.ListingResponse{}, err
		}

		if attempt < c.retry.MaxAttempts {
			if err := c.sleep(ctx, c.retry.Backoff); err != nil {
				return domain.ListingResponse{}, err
			}
		}
	}

	c.logger.Error("findwork attempts exhausted",
		"attempts", c.retry.MaxAttempts,
		"err", lastErr,
	)

	return domain.ListingResponse{}, ErrExhausted
}

// attempt performs a single request. status is 0 on transport errors.
func (c *Client) attempt(ctx context.Context, rawURL string) (domain.ListingResponse, int, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return domain.ListingResponse{}, 0, fmt.Errorf("findwork: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Token "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ListingResponse{}, 0, fmt.Errorf("findwork: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return domain.ListingResponse{}, resp.StatusCode,
			fmt.Errorf("findwork: API error (%d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload domain.ListingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.ListingResponse{}, resp.StatusCode, fmt.Errorf("findwork: decode response: %w", err)
	}

	return payload, resp.StatusCode, nil
}

func (c *Client) buildSearchURL(params domain.SearchParameters) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("findwork: parse base url: %w", err)
	}

	values := url.Values{}
	values.Set("search", params.Search)
	if params.Location != "" {
		values.Set("location", params.Location)
	}
	values.Set("sort_by", params.SortBy)
	values.Set("page", strconv.Itoa(params.Page))

	u.RawQuery = values.Encode()
	return u.String(), nil
}

// waitFor is the production sleeper: a context-aware time.After.
func waitFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
