package events

import (
	"context"
	"errors"

	"ticketly/internal/shared/apperrors"

	"gorm.io/gorm"
)

type Repository interface {
	// ListSummaries returns every event joined with venue and organizer
	// names, ordered by event date ascending.
	ListSummaries(ctx context.Context) ([]EventSummary, error)
	// GetDetail returns the single event joined with its venue and
	// organizer, or apperrors.ErrNotFound.
	GetDetail(ctx context.Context, eventID int) (*EventDetail, error)
	// EventsByOrganizer wraps the events_by_organizer routine: the full set
	// of an organizer's events, this one included.
	EventsByOrganizer(ctx context.Context, organizerID int) ([]OrganizerEvent, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListSummaries(ctx context.Context) ([]EventSummary, error) {
	var summaries []EventSummary
	err := r.db.WithContext(ctx).
		Table("events").
		Select(`events.event_id, events.title, events.event_date, events.category, events.base_price,
			venues.name AS venue_name, organizers.name AS organizer_name`).
		Joins("JOIN venues ON venues.venue_id = events.venue_id").
		Joins("JOIN organizers ON organizers.organizer_id = events.organizer_id").
		Order("events.event_date ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, apperrors.NewQuery("list events", err)
	}
	return summaries, nil
}

func (r *repository) GetDetail(ctx context.Context, eventID int) (*EventDetail, error) {
	var detail EventDetail
	err := r.db.WithContext(ctx).
		Table("events").
		Select(`events.event_id, events.title, events.event_date, events.category, events.base_price,
			events.seats_total, events.description, events.organizer_id,
			venues.name AS venue_name, venues.address AS venue_address, venues.capacity AS venue_capacity,
			organizers.name AS organizer_name, organizers.email AS organizer_email, organizers.phone AS organizer_phone`).
		Joins("JOIN venues ON venues.venue_id = events.venue_id").
		Joins("JOIN organizers ON organizers.organizer_id = events.organizer_id").
		Where("events.event_id = ?", eventID).
		Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewQuery("get event detail", err)
	}
	return &detail, nil
}

func (r *repository) EventsByOrganizer(ctx context.Context, organizerID int) ([]OrganizerEvent, error) {
	var organizerEvents []OrganizerEvent
	err := r.db.WithContext(ctx).
		Raw("SELECT * FROM events_by_organizer(?)", organizerID).
		Scan(&organizerEvents).Error
	if err != nil {
		return nil, apperrors.NewQuery("events_by_organizer", err)
	}
	return organizerEvents, nil
}
