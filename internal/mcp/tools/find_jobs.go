package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"findwork-assistant/internal/assistant"
	"findwork-assistant/internal/domain"
	"findwork-assistant/pkg/logging"
)

// FindJobsParams defines the arguments for the find_jobs tool. Either
// provide free-form input, or explicit parameters which skip the text
// parser entirely. Setting any explicit field (search, location, sort_by
// or page) selects the structured path and input is ignored.
type FindJobsParams struct {
	Input    string `json:"input,omitempty" jsonschema:"Free-text job search request, e.g. 'Looking for a developer in Austin'"`
	Search   string `json:"search,omitempty" jsonschema:"Role keywords; when set the text parser is bypassed"`
	Location string `json:"location,omitempty" jsonschema:"Location filter"`
	SortBy   string `json:"sort_by,omitempty" jsonschema:"Sort order, 'date' or 'relevance'"`
	Page     int    `json:"page,omitempty" jsonschema:"Result page, starting at 1"`
}

// FindJobsPayload is the structured tool result alongside the rendered
// text. Error carries the degraded fetch failure; Results mirrors the
// listing response so clients can pattern-match on it.
type FindJobsPayload struct {
	Results []domain.JobListing `json:"results,omitempty"`
	Count   int                 `json:"count"`
	Error   string              `json:"error,omitempty"`
}

type findJobsTool struct {
	svc    *assistant.Service
	logger *logging.Logger
}

// WithFindJobs registers the find_jobs tool.
func WithFindJobs(svc *assistant.Service, logger *logging.Logger) Option {
	return func(reg *registry) {
		handler := findJobsTool{svc: svc, logger: logger}
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        "find_jobs",
			Description: "Search job listings on the Findwork API. Provide keywords, location, sorting preference, and page number, or just the user's request verbatim.",
		}, handler.handle)
	}
}

// structured reports whether the caller supplied explicit parameters.
func (p *FindJobsParams) structured() bool {
	return p.Search != "" || p.Location != "" || p.SortBy != "" || p.Page != 0
}

func (t findJobsTool) handle(ctx context.Context, req *sdkmcp.CallToolRequest, params *FindJobsParams) (*sdkmcp.CallToolResult, any, error) {
	_ = req

	if params == nil {
		params = &FindJobsParams{}
	}

	var in assistant.Input
	if params.structured() {
		in = assistant.Structured(domain.SearchParameters{
			Search:   params.Search,
			Location: params.Location,
			SortBy:   params.SortBy,
			Page:     params.Page,
		})
	} else {
		in = assistant.Query(params.Input)
	}

	if t.logger != nil {
		t.logger.Info("find_jobs called",
			"structured", params.structured(),
			"input", params.Input,
		)
	}

	res := t.svc.FindJobs(ctx, in)

	payload := FindJobsPayload{
		Results: res.Response.Results,
		Count:   len(res.Response.Results),
	}
	if res.Err != nil {
		payload.Error = res.Err.Error()
	}

	return textResult(res.Rendered), payload, nil
}
