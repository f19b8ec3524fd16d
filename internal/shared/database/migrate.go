package database

import (
	"ticketly/internal/events"
	"ticketly/internal/organizers"
	"ticketly/internal/tickets"
	"ticketly/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&venues.Venue{},
		&organizers.Organizer{},
		&events.Event{},
		&tickets.Ticket{},
	)
}
