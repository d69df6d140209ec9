package findwork

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"findwork-assistant/pkg/logging"
)

// RetryPolicy bounds how often a failed request is reissued.
type RetryPolicy struct {
	// MaxAttempts is the total attempt budget, first try included.
	MaxAttempts int
	// Backoff is the fixed wait between attempts.
	Backoff time.Duration
	// Retriable decides whether a failed attempt is retried. status is 0
	// for transport errors. The default retries everything: transport
	// errors and all non-2xx statuses are treated alike.
	Retriable func(status int, err error) bool
}

// Sleeper waits out a backoff. Injected so tests never really sleep.
type Sleeper func(ctx context.Context, d time.Duration) error

// Config defines Findwork API client settings.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	// Timeout applies per attempt, not across the whole retry budget.
	Timeout time.Duration
	Retry   RetryPolicy
	Sleep   Sleeper
	// Limiter optionally throttles outgoing attempts client-side.
	Limiter *rate.Limiter
	Logger  *logging.Logger
}

// Client queries the Findwork job search API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retry      RetryPolicy
	sleep      Sleeper
	limiter    *rate.Limiter
	logger     *logging.Logger
}
