package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticketly/internal/shared/apperrors"
	"ticketly/internal/tickets"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	summaries []EventSummary
	listErr   error
	bundle    *DetailBundle
	bundleErr error
}

func (s *stubService) ListEvents(ctx context.Context) ([]EventSummary, error) {
	return s.summaries, s.listErr
}

func (s *stubService) GetEventDetail(ctx context.Context, eventID int) (*DetailBundle, error) {
	if s.bundleErr != nil {
		return nil, s.bundleErr
	}
	return s.bundle, nil
}

func newTestRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := engine.Group("/api")
	SetupEventRoutes(api, NewController(svc))
	return engine
}

func TestGetAllEventsHandler(t *testing.T) {
	music := "Music"
	svc := &stubService{summaries: []EventSummary{
		{
			EventID:       1,
			Title:         "Autumn Jazz Night",
			EventDate:     time.Date(2026, 9, 14, 19, 0, 0, 0, time.UTC),
			Category:      &music,
			BasePrice:     45,
			VenueName:     "City Concert Hall",
			OrganizerName: "Northlight Productions",
		},
	}}
	engine := newTestRouter(svc)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, float64(1), body[0]["EventID"])
	assert.Equal(t, "Autumn Jazz Night", body[0]["Title"])
	assert.Equal(t, "City Concert Hall", body[0]["VenueName"])
	assert.Equal(t, "Northlight Productions", body[0]["OrganizerName"])
}

func TestGetAllEventsHandlerStoreError(t *testing.T) {
	svc := &stubService{listErr: apperrors.NewQuery("list events", assert.AnError)}
	engine := newTestRouter(svc)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}

func TestGetEventHandlerInvalidID(t *testing.T) {
	engine := newTestRouter(&stubService{})

	for _, id := range []string{"abc", "0", "-1"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/"+id, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)
		assert.JSONEq(t, `{"error":"Invalid event ID"}`, w.Body.String())
	}
}

func TestGetEventHandlerNotFound(t *testing.T) {
	svc := &stubService{bundleErr: apperrors.ErrNotFound}
	engine := newTestRouter(svc)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/999", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Event not found"}`, w.Body.String())
}

func TestGetEventHandlerBundleShape(t *testing.T) {
	svc := &stubService{bundle: &DetailBundle{
		Event:   EventDetail{EventID: 7, Title: "Autumn Jazz Night", SeatsTotal: 300},
		Tickets: []tickets.Ticket{{TicketID: 1, Quantity: 2}},
		Stats: DetailStats{
			TicketsCount:    2,
			OrganizerEvents: []OrganizerEvent{{EventID: 7}, {EventID: 9}},
		},
	}}
	engine := newTestRouter(svc)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/events/7", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "event")
	assert.Contains(t, body, "tickets")
	assert.Contains(t, body, "stats")

	var stats map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body["stats"], &stats))
	assert.Contains(t, stats, "ticketsCount")
	assert.Contains(t, stats, "organizerEvents")
}
