// Package assistant runs the parse -> fetch -> format pipeline behind the
// find_jobs tool. Each call is stateless and independent.
package assistant

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"findwork-assistant/internal/domain"
	"findwork-assistant/internal/format"
	"findwork-assistant/internal/query"
	"findwork-assistant/pkg/logging"
)

// ListingFetcher is the subset of the Findwork client the pipeline uses.
type ListingFetcher interface {
	SearchJobs(ctx context.Context, params domain.SearchParameters) (domain.ListingResponse, error)
}

// Input carries either a free-text request or explicit parameters.
// Explicit parameters bypass the text parser.
type Input struct {
	text   string
	params *domain.SearchParameters
}

// Query wraps a free-text request.
func Query(text string) Input {
	return Input{text: text}
}

// Structured wraps already-built search parameters.
func Structured(params domain.SearchParameters) Input {
	return Input{params: &params}
}

// Result is one pipeline run. Rendered is always set; Err carries the
// degraded fetch failure, it is never raised past the tool boundary.
type Result struct {
	Params   domain.SearchParameters
	Response domain.ListingResponse
	Rendered string
	Err      error
}

// Option configures Service.
type Option func(*config)

type config struct {
	fetcher ListingFetcher
	logger  *logging.Logger
}

// WithFetcher sets the listing source.
func WithFetcher(fetcher ListingFetcher) Option {
	return func(c *config) {
		c.fetcher = fetcher
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(logger *logging.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Service is the callable unit exposed to the agent loop.
type Service struct {
	fetcher ListingFetcher
	logger  *logging.Logger
}

// NewService builds a Service from options.
func NewService(opts ...Option) (*Service, error) {
	cfg := &config{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.fetcher == nil {
		return nil, fmt.Errorf("assistant.Service: listing fetcher is required")
	}

	return &Service{
		fetcher: cfg.fetcher,
		logger:  cfg.logger,
	}, nil
}

// NewServiceWithDeps creates a Service with direct dependencies
// (Wire-compatible).
func NewServiceWithDeps(fetcher ListingFetcher, logger *logging.Logger) (*Service, error) {
	return NewService(WithFetcher(fetcher), WithLogger(logger))
}

// FindJobs resolves the input into parameters, fetches listings, and
// renders them. Fetch failures degrade to the rendered no-listings
// message; Result.Err keeps the cause for callers that want it.
func (s *Service) FindJobs(ctx context.Context, in Input) Result {
	requestID := uuid.NewString()

	var params domain.SearchParameters
	if in.params != nil {
		params = in.params.Normalized()
	} else {
		params = query.Parse(in.text)
	}

	s.logger.Info("find_jobs pipeline",
		"request_id", requestID,
		"structured", in.params != nil,
		"search", params.Search,
		"location", params.Location,
		"sort_by", params.SortBy,
		"page", params.Page,
	)

	resp, err := s.fetcher.SearchJobs(ctx, params)
	if err != nil {
		s.logger.Error("find_jobs fetch failed",
			"request_id", requestID,
			"err", err,
		)
		return Result{
			Params:   params,
			Rendered: format.Listings(domain.ListingResponse{}),
			Err:      err,
		}
	}

	s.logger.Info("find_jobs pipeline complete",
		"request_id", requestID,
		"results", len(resp.Results),
	)

	return Result{
		Params:   params,
		Response: resp,
		Rendered: format.Listings(resp),
	}
}
