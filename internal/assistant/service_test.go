package assistant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findwork-assistant/internal/domain"
	"findwork-assistant/internal/format"
	"findwork-assistant/pkg/findwork"
)

// fakeFetcher records the parameters it was called with.
type fakeFetcher struct {
	gotParams domain.SearchParameters
	calls     int
	resp      domain.ListingResponse
	err       error
}

func (f *fakeFetcher) SearchJobs(_ context.Context, params domain.SearchParameters) (domain.ListingResponse, error) {
	f.calls++
	f.gotParams = params
	return f.resp, f.err
}

func newTestService(t *testing.T, fetcher ListingFetcher) *Service {
	t.Helper()

	svc, err := NewService(WithFetcher(fetcher))
	require.NoError(t, err)
	return svc
}

func TestNewServiceRequiresFetcher(t *testing.T) {
	_, err := NewService()
	require.Error(t, err)
}

func TestFindJobsParsesFreeText(t *testing.T) {
	fetcher := &fakeFetcher{resp: domain.ListingResponse{Results: []domain.JobListing{
		{CompanyName: "Acme", Role: "Developer", Location: "Austin"},
	}}}
	svc := newTestService(t, fetcher)

	res := svc.FindJobs(context.Background(), Query("Looking for a developer in Austin"))

	assert.Equal(t, domain.SearchParameters{
		Search:   "developer",
		Location: "Austin",
		SortBy:   "date",
		Page:     1,
	}, fetcher.gotParams)
	require.NoError(t, res.Err)
	assert.Contains(t, res.Rendered, "🏢 **Acme** - Developer")
}

func TestFindJobsStructuredBypassesParser(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := newTestService(t, fetcher)

	// Multi-word search the text parser could never produce.
	svc.FindJobs(context.Background(), Structured(domain.SearchParameters{
		Search:   "software engineer",
		Location: "Toronto",
	}))

	assert.Equal(t, domain.SearchParameters{
		Search:   "software engineer",
		Location: "Toronto",
		SortBy:   "date",
		Page:     1,
	}, fetcher.gotParams)
}

func TestFindJobsEmptyInputYieldsNoListingsMessage(t *testing.T) {
	fetcher := &fakeFetcher{}
	svc := newTestService(t, fetcher)

	res := svc.FindJobs(context.Background(), Query(""))

	assert.Equal(t, domain.DefaultSearchParameters(), fetcher.gotParams)
	assert.Equal(t, format.NoListingsMessage, res.Rendered)
}

func TestFindJobsFetchFailureDegradesToMessage(t *testing.T) {
	fetcher := &fakeFetcher{err: findwork.ErrExhausted}
	svc := newTestService(t, fetcher)

	res := svc.FindJobs(context.Background(), Query("for a developer"))

	assert.Equal(t, format.NoListingsMessage, res.Rendered)
	assert.ErrorIs(t, res.Err, findwork.ErrExhausted)
	assert.Equal(t, 1, fetcher.calls)
}
