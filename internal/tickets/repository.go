package tickets

import (
	"context"
	"errors"

	"ticketly/internal/shared/apperrors"

	"gorm.io/gorm"
)

type Repository interface {
	// Create invokes the create_ticket routine and returns the new ticket id.
	// The routine is the sole writer of tickets.
	Create(ctx context.Context, eventID int, buyerName, buyerEmail string, quantity int) (int, error)
	GetByID(ctx context.Context, ticketID int) (*Ticket, error)
	// ListByEvent returns an event's tickets, most recent purchase first.
	ListByEvent(ctx context.Context, eventID int) ([]Ticket, error)
	// SoldCount wraps the tickets_sold_count routine: the sum of quantities
	// for one event, computed by the store.
	SoldCount(ctx context.Context, eventID int) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, eventID int, buyerName, buyerEmail string, quantity int) (int, error) {
	var ticketID int
	err := r.db.WithContext(ctx).
		Raw("SELECT create_ticket(?, ?, ?, ?)", eventID, buyerName, buyerEmail, quantity).
		Scan(&ticketID).Error
	if err != nil {
		return 0, apperrors.NewQuery("create_ticket", err)
	}
	return ticketID, nil
}

func (r *repository) GetByID(ctx context.Context, ticketID int) (*Ticket, error) {
	var ticket Ticket
	err := r.db.WithContext(ctx).Where("ticket_id = ?", ticketID).First(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewQuery("get ticket", err)
	}
	return &ticket, nil
}

func (r *repository) ListByEvent(ctx context.Context, eventID int) ([]Ticket, error) {
	var tickets []Ticket
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("purchase_date DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, apperrors.NewQuery("list tickets", err)
	}
	return tickets, nil
}

func (r *repository) SoldCount(ctx context.Context, eventID int) (int, error) {
	var count int
	err := r.db.WithContext(ctx).
		Raw("SELECT tickets_sold_count(?)", eventID).
		Scan(&count).Error
	if err != nil {
		return 0, apperrors.NewQuery("tickets_sold_count", err)
	}
	return count, nil
}
