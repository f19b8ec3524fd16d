package client

import (
	"testing"
	"time"

	"ticketly/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []events.EventSummary {
	music := "Music"
	art := "Art"
	return []events.EventSummary{
		{
			EventID:       1,
			Title:         "A Expo",
			EventDate:     time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
			Category:      &music,
			VenueName:     "Grand Arena",
			OrganizerName: "Northlight Productions",
		},
		{
			EventID:       2,
			Title:         "B Fair",
			EventDate:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			Category:      &art,
			VenueName:     "Riverside Pavilion",
			OrganizerName: "Bright Stage Group",
		},
	}
}

func titles(list []events.EventSummary) []string {
	out := make([]string, len(list))
	for i, e := range list {
		out[i] = e.Title
	}
	return out
}

func TestFilterByCategory(t *testing.T) {
	filtered := Filter(sampleEvents(), "", "Music", SortDateAsc)
	assert.Equal(t, []string{"A Expo"}, titles(filtered))
}

func TestFilterAllCategoryMatchesEverything(t *testing.T) {
	assert.Len(t, Filter(sampleEvents(), "", CategoryAll, SortDateAsc), 2)
	assert.Len(t, Filter(sampleEvents(), "", "", SortDateAsc), 2)
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	filtered := Filter(sampleEvents(), "expo", "", SortDateAsc)
	assert.Equal(t, []string{"A Expo"}, titles(filtered))

	filtered = Filter(sampleEvents(), "EXPO", "", SortDateAsc)
	assert.Equal(t, []string{"A Expo"}, titles(filtered))
}

func TestFilterSearchCoversVenueAndOrganizer(t *testing.T) {
	filtered := Filter(sampleEvents(), "riverside", "", SortDateAsc)
	assert.Equal(t, []string{"B Fair"}, titles(filtered))

	filtered = Filter(sampleEvents(), "northlight", "", SortDateAsc)
	assert.Equal(t, []string{"A Expo"}, titles(filtered))
}

func TestFilterSortModes(t *testing.T) {
	asc := Filter(sampleEvents(), "", "", SortDateAsc)
	require.Len(t, asc, 2)
	assert.Equal(t, []string{"B Fair", "A Expo"}, titles(asc))

	desc := Filter(sampleEvents(), "", "", SortDateDesc)
	assert.Equal(t, []string{"A Expo", "B Fair"}, titles(desc))
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	list := sampleEvents()
	Filter(list, "", "", SortDateDesc)
	assert.Equal(t, "A Expo", list[0].Title)
}

func TestCategories(t *testing.T) {
	list := sampleEvents()
	list = append(list, events.EventSummary{EventID: 3, Title: "No Category"})

	assert.Equal(t, []string{"Art", "Music"}, Categories(list))
}
