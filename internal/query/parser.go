// Package query maps free-text job search requests onto structured
// Findwork search parameters with a small set of fixed patterns.
package query

import (
	"regexp"
	"strings"

	"findwork-assistant/internal/domain"
)

var (
	locationPattern = regexp.MustCompile(`(?i)in (\w+)`)
	rolePattern     = regexp.MustCompile(`(?i)for a (\w+)`)
	openJobsPattern = regexp.MustCompile(`\b(\d+) open jobs\b`)
)

// Parse extracts search parameters from a free-text request. Pure and
// deterministic; unparseable input yields the default parameter set, never
// an error. Rules, in order:
//
//  1. "in <word>" sets the location.
//  2. "for a <word>" sets the search term. Single word only.
//  3. the word "remote" anywhere overwrites the search term with "remote".
//  4. "<N> open jobs" forces page 1; N itself is not used.
func Parse(text string) domain.SearchParameters {
	params := domain.DefaultSearchParameters()

	if m := locationPattern.FindStringSubmatch(text); m != nil {
		params.Location = m[1]
	}

	if m := rolePattern.FindStringSubmatch(text); m != nil {
		params.Search = m[1]
	}

	if strings.Contains(strings.ToLower(text), "remote") {
		params.Search = "remote"
	}

	if openJobsPattern.MatchString(text) {
		params.Page = 1
	}

	return params
}
