package domain

// ResponseKind enumerates what an agent turn ultimately produced.
type ResponseKind int

const (
	// ResponseListings carries job listings ready to render.
	ResponseListings ResponseKind = iota
	// ResponsePlainText carries a free-form assistant answer.
	ResponsePlainText
	// ResponseUnrecognized marks anything the presentation layer cannot
	// interpret; rendered as a generic fallback message.
	ResponseUnrecognized
)

// AgentResponse is the tagged result handed to the presentation layer,
// so its rendering switch is exhaustive instead of duck-typed.
type AgentResponse struct {
	Kind     ResponseKind
	Listings []JobListing
	Text     string
}

// Classify turns an untyped tool or agent payload into an AgentResponse.
// A map with a "results" array becomes Listings, a string becomes
// PlainText, everything else is Unrecognized.
func Classify(v any) AgentResponse {
	switch val := v.(type) {
	case string:
		return AgentResponse{Kind: ResponsePlainText, Text: val}
	case ListingResponse:
		return AgentResponse{Kind: ResponseListings, Listings: val.Results}
	case *ListingResponse:
		if val == nil {
			return AgentResponse{Kind: ResponseUnrecognized}
		}
		return AgentResponse{Kind: ResponseListings, Listings: val.Results}
	case map[string]any:
		raw, ok := val["results"]
		if !ok {
			return AgentResponse{Kind: ResponseUnrecognized}
		}
		items, ok := raw.([]any)
		if !ok {
			return AgentResponse{Kind: ResponseUnrecognized}
		}
		listings := make([]JobListing, 0, len(items))
		for _, item := range items {
			entry, ok := item.(map[string]any)
			if !ok {
				continue
			}
			listings = append(listings, listingFromMap(entry))
		}
		return AgentResponse{Kind: ResponseListings, Listings: listings}
	default:
		return AgentResponse{Kind: ResponseUnrecognized}
	}
}

func listingFromMap(m map[string]any) JobListing {
	listing := JobListing{
		CompanyName: stringField(m, "company_name"),
		Role:        stringField(m, "role"),
		Location:    stringField(m, "location"),
		DatePosted:  stringField(m, "date_posted"),
		URL:         stringField(m, "url"),
	}
	if remote, ok := m["remote"].(bool); ok {
		listing.Remote = remote
	}
	return listing
}

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
