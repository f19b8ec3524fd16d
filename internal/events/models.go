package events

import (
	"time"

	"ticketly/internal/tickets"
)

// Event is immutable after creation for this system's purposes: the API only
// reads events, it never creates or mutates them.
type Event struct {
	EventID     int       `json:"EventID" gorm:"column:event_id;primaryKey;autoIncrement"`
	Title       string    `json:"Title" gorm:"column:title;not null;size:255"`
	EventDate   time.Time `json:"EventDate" gorm:"column:event_date;not null;index"`
	Category    *string   `json:"Category" gorm:"column:category;size:100"`
	BasePrice   float64   `json:"BasePrice" gorm:"column:base_price;not null;check:base_price >= 0"`
	SeatsTotal  int       `json:"SeatsTotal" gorm:"column:seats_total;not null;check:seats_total > 0"`
	Description *string   `json:"Description" gorm:"column:description;type:text"`
	VenueID     int       `json:"VenueID" gorm:"column:venue_id;not null;index"`
	OrganizerID int       `json:"OrganizerID" gorm:"column:organizer_id;not null;index"`
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}

// EventSummary is the list-page projection: one row per event joined with its
// venue and organizer names.
type EventSummary struct {
	EventID       int       `json:"EventID"`
	Title         string    `json:"Title"`
	EventDate     time.Time `json:"EventDate"`
	Category      *string   `json:"Category"`
	BasePrice     float64   `json:"BasePrice"`
	VenueName     string    `json:"VenueName"`
	OrganizerName string    `json:"OrganizerName"`
}

// EventDetail extends the summary with the columns the detail page shows.
// OrganizerID is carried for the organizer-events lookup but stays off the wire.
type EventDetail struct {
	EventID        int       `json:"EventID"`
	Title          string    `json:"Title"`
	EventDate      time.Time `json:"EventDate"`
	Category       *string   `json:"Category"`
	BasePrice      float64   `json:"BasePrice"`
	SeatsTotal     int       `json:"SeatsTotal"`
	Description    *string   `json:"Description"`
	VenueName      string    `json:"VenueName"`
	VenueAddress   *string   `json:"VenueAddress"`
	VenueCapacity  *int      `json:"VenueCapacity"`
	OrganizerName  string    `json:"OrganizerName"`
	OrganizerEmail *string   `json:"OrganizerEmail"`
	OrganizerPhone *string   `json:"OrganizerPhone"`
	OrganizerID    int       `json:"-"`
}

// OrganizerEvent is one row of the events_by_organizer routine.
type OrganizerEvent struct {
	EventID    int       `json:"EventID"`
	Title      string    `json:"Title"`
	EventDate  time.Time `json:"EventDate"`
	Category   *string   `json:"Category"`
	BasePrice  float64   `json:"BasePrice"`
	SeatsTotal int       `json:"SeatsTotal"`
}

// DetailStats holds the store-computed derived values; this layer trusts them
// and never recomputes ticketsCount locally.
type DetailStats struct {
	TicketsCount    int              `json:"ticketsCount"`
	OrganizerEvents []OrganizerEvent `json:"organizerEvents"`
}

// DetailBundle is the aggregate shape the detail endpoint returns. It is
// assembled per request and never persisted.
type DetailBundle struct {
	Event   EventDetail      `json:"event"`
	Tickets []tickets.Ticket `json:"tickets"`
	Stats   DetailStats      `json:"stats"`
}
