// Package format renders listing responses into the text blocks shown to
// the user. Rendering is total: any well-formed response produces text.
package format

import (
	"fmt"
	"strings"

	"findwork-assistant/internal/domain"
)

// MaxListings caps how many postings one answer shows.
const MaxListings = 5

// NoListingsMessage is returned whenever there is nothing to show.
const NoListingsMessage = "❌ No job listings found. Try different keywords or location."

// Listings renders at most MaxListings entries in upstream order, joined
// by a blank line. Empty or absent results yield NoListingsMessage.
func Listings(resp domain.ListingResponse) string {
	if len(resp.Results) == 0 {
		return NoListingsMessage
	}

	limit := len(resp.Results)
	if limit > MaxListings {
		limit = MaxListings
	}

	blocks := make([]string, 0, limit)
	for _, job := range resp.Results[:limit] {
		blocks = append(blocks, listing(job))
	}

	return strings.Join(blocks, "\n\n")
}

func listing(job domain.JobListing) string {
	remote := "No"
	if job.Remote {
		remote = "Yes"
	}

	return fmt.Sprintf(
		"🏢 **%s** - %s\n"+
			"📍 **Location:** %s\n"+
			"🌍 **Remote:** %s\n"+
			"📅 **Posted:** %s\n"+
			"🔗 [View Job](%s)\n",
		job.CompanyName, job.Role, job.Location, remote, job.DatePosted, job.URL,
	)
}
