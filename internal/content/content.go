// Package content holds the static teaching material shown alongside
// the calculator. Sections are compiled in so the tool works offline.
package content

import (
	"errors"
	"strings"
)

// ErrSectionNotFound is returned when a section key matches nothing.
var ErrSectionNotFound = errors.New("content section not found")

// Section is one documentation panel. Body is Markdown.
type Section struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Sections returns every panel in display order.
func Sections() []Section {
	return []Section{
		{Key: "basics", Title: "CAPM Basics", Body: Basics},
		{Key: "theory", Title: "Theory", Body: Theory},
		{Key: "tutorial", Title: "Interactive Tutorial", Body: Tutorial},
		{Key: "disclaimer", Title: "Disclaimer", Body: Disclaimer},
	}
}

// Lookup finds a section by key (case-insensitive).
func Lookup(key string) (Section, error) {
	want := strings.ToLower(strings.TrimSpace(key))
	for _, s := range Sections() {
		if s.Key == want {
			return s, nil
		}
	}
	return Section{}, ErrSectionNotFound
}
