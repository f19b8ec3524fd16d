package client

import (
	"sort"
	"strings"

	"ticketly/internal/events"
)

type SortMode string

const (
	SortDateAsc  SortMode = "dateAsc"
	SortDateDesc SortMode = "dateDesc"
)

// CategoryAll disables category filtering.
const CategoryAll = "all"

// Filter is the list page's client-side pipeline: category filter, free-text
// search, date sort. Pure function of its inputs; the input slice is not
// mutated.
func Filter(list []events.EventSummary, query, category string, mode SortMode) []events.EventSummary {
	filtered := make([]events.EventSummary, 0, len(list))

	for _, summary := range list {
		if category != "" && category != CategoryAll {
			if summary.Category == nil || *summary.Category != category {
				continue
			}
		}
		if !matchesQuery(summary, query) {
			continue
		}
		filtered = append(filtered, summary)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if mode == SortDateDesc {
			return filtered[j].EventDate.Before(filtered[i].EventDate)
		}
		return filtered[i].EventDate.Before(filtered[j].EventDate)
	})

	return filtered
}

// matchesQuery does a case-insensitive substring search over title, venue
// name and organizer name.
func matchesQuery(summary events.EventSummary, query string) bool {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(summary.Title), needle) ||
		strings.Contains(strings.ToLower(summary.VenueName), needle) ||
		strings.Contains(strings.ToLower(summary.OrganizerName), needle)
}

// Categories returns the sorted unique non-empty categories, for the filter
// dropdown.
func Categories(list []events.EventSummary) []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, summary := range list {
		if summary.Category == nil || *summary.Category == "" {
			continue
		}
		if _, ok := seen[*summary.Category]; ok {
			continue
		}
		seen[*summary.Category] = struct{}{}
		categories = append(categories, *summary.Category)
	}
	sort.Strings(categories)
	return categories
}
