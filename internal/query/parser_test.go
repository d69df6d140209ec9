package query

import (
	"testing"

	"findwork-assistant/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.SearchParameters
	}{
		{
			name: "no patterns yields defaults",
			text: "show me something interesting",
			want: domain.SearchParameters{Search: "", Location: "", SortBy: "date", Page: 1},
		},
		{
			name: "empty input yields defaults",
			text: "",
			want: domain.SearchParameters{SortBy: "date", Page: 1},
		},
		{
			name: "role and location",
			text: "Looking for a developer in Austin",
			want: domain.SearchParameters{Search: "developer", Location: "Austin", SortBy: "date", Page: 1},
		},
		{
			name: "location only",
			text: "any jobs in Toronto?",
			want: domain.SearchParameters{Location: "Toronto", SortBy: "date", Page: 1},
		},
		{
			name: "role capture is a single word",
			text: "for a software engineer position",
			want: domain.SearchParameters{Search: "software", SortBy: "date", Page: 1},
		},
		{
			name: "remote overrides role",
			text: "for a developer but remote please",
			want: domain.SearchParameters{Search: "remote", SortBy: "date", Page: 1},
		},
		{
			name: "remote is case-insensitive",
			text: "REMOTE data science roles",
			want: domain.SearchParameters{Search: "remote", SortBy: "date", Page: 1},
		},
		{
			name: "patterns are case-insensitive",
			text: "FOR A designer IN berlin",
			want: domain.SearchParameters{Search: "designer", Location: "berlin", SortBy: "date", Page: 1},
		},
		{
			name: "open jobs phrase keeps page at one",
			text: "show 20 open jobs for a tester",
			want: domain.SearchParameters{Search: "tester", SortBy: "date", Page: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.text)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseIsIdempotent(t *testing.T) {
	inputs := []string{
		"Looking for a developer in Austin",
		"remote anything",
		"",
		"50 open jobs in London for a barista",
	}

	for _, text := range inputs {
		first := Parse(text)
		second := Parse(text)
		if first != second {
			t.Errorf("Parse(%q) not stable: %+v vs %+v", text, first, second)
		}
	}
}
