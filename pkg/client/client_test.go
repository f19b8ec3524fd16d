package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticketly/internal/tickets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/events", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"EventID":1,"Title":"A Expo","VenueName":"Hall","OrganizerName":"Org"}]`))
	}))
	defer server.Close()

	api := New(server.URL + "/api")
	summaries, err := api.FetchEvents(context.Background())

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 1, summaries[0].EventID)
	assert.Equal(t, "A Expo", summaries[0].Title)
}

func TestFetchEventByIDSurfacesBodyText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/999", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Event not found"}`))
	}))
	defer server.Close()

	api := New(server.URL + "/api")
	bundle, err := api.FetchEventByID(context.Background(), 999)

	assert.Nil(t, bundle)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.Message, "Event not found")
}

func TestFetchEventByIDEmptyBodyFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	api := New(server.URL + "/api")
	_, err := api.FetchEventByID(context.Background(), 1)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "failed to load event", apiErr.Message)
}

func TestCreateTicket(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/events/5/tickets", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var payload tickets.CreateTicketRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Alice", payload.BuyerName)
		assert.Equal(t, 2, payload.Quantity)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"message":"Ticket created successfully","ticket":{"TicketID":9,"TicketNo":"T-5-1","Quantity":2,"EventID":5}}`))
	}))
	defer server.Close()

	api := New(server.URL + "/api")
	ticket, err := api.CreateTicket(context.Background(), 5, tickets.CreateTicketRequest{
		BuyerName:  "Alice",
		BuyerEmail: "alice@example.com",
		Quantity:   2,
	})

	require.NoError(t, err)
	assert.Equal(t, 9, ticket.TicketID)
	assert.Equal(t, "T-5-1", ticket.TicketNo)
	assert.Equal(t, 2, ticket.Quantity)
}

func TestFetchEventByIDDecodesBundle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"event":{"EventID":7,"Title":"Autumn Jazz Night","SeatsTotal":300},
			"tickets":[{"TicketID":2,"Quantity":1},{"TicketID":1,"Quantity":2}],
			"stats":{"ticketsCount":3,"organizerEvents":[{"EventID":7},{"EventID":9}]}
		}`))
	}))
	defer server.Close()

	api := New(server.URL + "/api")
	bundle, err := api.FetchEventByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 7, bundle.Event.EventID)
	assert.Len(t, bundle.Tickets, 2)
	assert.Equal(t, 3, bundle.Stats.TicketsCount)
	assert.Len(t, bundle.Stats.OrganizerEvents, 2)
}
