package domain

const (
	defaultSortBy = "date"
	defaultPage   = 1
)

// SearchParameters is the structured query sent to the Findwork API.
// Built fresh per request and never mutated afterwards.
type SearchParameters struct {
	Search   string `json:"search"`
	Location string `json:"location,omitempty"` // empty means no location filter
	SortBy   string `json:"sort_by"`
	Page     int    `json:"page"`
}

// DefaultSearchParameters returns the all-defaults parameter set:
// empty search, no location, sorted by date, first page.
func DefaultSearchParameters() SearchParameters {
	return SearchParameters{
		SortBy: defaultSortBy,
		Page:   defaultPage,
	}
}

// Normalized fills gaps left by structured callers so the invariants
// sort_by != "" and page >= 1 hold before the request goes out.
func (p SearchParameters) Normalized() SearchParameters {
	if p.SortBy == "" {
		p.SortBy = defaultSortBy
	}
	if p.Page < 1 {
		p.Page = defaultPage
	}
	return p
}

// JobListing is a single posting as returned by the Findwork API.
type JobListing struct {
	CompanyName string `json:"company_name"`
	Role        string `json:"role"`
	Location    string `json:"location"`
	Remote      bool   `json:"remote"`
	DatePosted  string `json:"date_posted"`
	URL         string `json:"url"`
}

// ListingResponse wraps one API response. Transient: lives for a single
// request/response cycle and is never cached.
type ListingResponse struct {
	Results []JobListing `json:"results"`
}

// Role tags who produced a conversation entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationEntry is one line of the session transcript.
type ConversationEntry struct {
	Role    Role
	Content string
}
