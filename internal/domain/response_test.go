package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyString(t *testing.T) {
	res := Classify("plain answer")

	assert.Equal(t, ResponsePlainText, res.Kind)
	assert.Equal(t, "plain answer", res.Text)
}

func TestClassifyListingResponse(t *testing.T) {
	res := Classify(ListingResponse{Results: []JobListing{{CompanyName: "Acme"}}})

	require.Equal(t, ResponseListings, res.Kind)
	require.Len(t, res.Listings, 1)
	assert.Equal(t, "Acme", res.Listings[0].CompanyName)
}

func TestClassifyResultsMap(t *testing.T) {
	// Shape produced by JSON-decoding a tool payload.
	payload := map[string]any{
		"results": []any{
			map[string]any{
				"company_name": "Acme",
				"role":         "Go Developer",
				"location":     "Austin",
				"remote":       true,
				"date_posted":  "2026-08-01",
				"url":          "https://findwork.dev/jobs/1",
			},
		},
	}

	res := Classify(payload)

	require.Equal(t, ResponseListings, res.Kind)
	require.Len(t, res.Listings, 1)
	assert.Equal(t, JobListing{
		CompanyName: "Acme",
		Role:        "Go Developer",
		Location:    "Austin",
		Remote:      true,
		DatePosted:  "2026-08-01",
		URL:         "https://findwork.dev/jobs/1",
	}, res.Listings[0])
}

func TestClassifyUnrecognized(t *testing.T) {
	cases := map[string]any{
		"nil":                nil,
		"number":             42,
		"map without result": map[string]any{"error": "boom"},
		"results not array":  map[string]any{"results": "oops"},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, ResponseUnrecognized, Classify(input).Kind)
		})
	}
}
