package grid

import (
	"slices"
	"strings"
)

// MatchText reports whether text contains query, ignoring case.
// An empty query matches everything.
func MatchText(text, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}

// MatchIDSet is the faceted filter predicate. An empty selection is an
// inactive filter and matches every row. With an active selection a row
// whose reference is absent never matches; there is no "(none)" option.
func MatchIDSet(id *string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	if id == nil || *id == "" {
		return false
	}
	return slices.Contains(selected, *id)
}
