package tickets

import (
	"context"
	"log/slog"
	"strings"

	"ticketly/internal/notifications"
	"ticketly/internal/shared/apperrors"
	"ticketly/pkg/logger"
)

type Service interface {
	// Service dependency injection
	SetProducer(producer notifications.Producer)
	// CreateTicket validates input, invokes the create_ticket routine and
	// reads the created row back. Exactly one ticket row exists after a
	// successful call, zero after a failed one.
	CreateTicket(ctx context.Context, eventID int, req CreateTicketRequest) (*Ticket, error)
}

type service struct {
	repo     Repository
	producer notifications.Producer
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// SetProducer wires the optional ticket-created notification producer.
func (s *service) SetProducer(producer notifications.Producer) {
	s.producer = producer
}

func (s *service) CreateTicket(ctx context.Context, eventID int, req CreateTicketRequest) (*Ticket, error) {
	buyerName := strings.TrimSpace(req.BuyerName)
	buyerEmail := strings.TrimSpace(req.BuyerEmail)

	// Fail fast before touching the store.
	switch {
	case eventID <= 0:
		return nil, apperrors.NewValidation("event id must be a positive integer")
	case buyerName == "":
		return nil, apperrors.NewValidation("buyer name is required")
	case buyerEmail == "":
		return nil, apperrors.NewValidation("buyer email is required")
	case req.Quantity < 1:
		return nil, apperrors.NewValidation("quantity must be at least 1")
	}

	// The routine owns seat accounting, ticket numbers and pricing; the row
	// is re-read, never reconstructed here.
	ticketID, err := s.repo.Create(ctx, eventID, buyerName, buyerEmail, req.Quantity)
	if err != nil {
		return nil, err
	}

	ticket, err := s.repo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	logger.GetDefault().LogTicketCreated(ctx, ticket.TicketNo, ticket.EventID, ticket.Quantity)
	s.publishCreated(ctx, ticket)

	return ticket, nil
}

// publishCreated is best-effort: a dropped notification never fails a purchase.
func (s *service) publishCreated(ctx context.Context, ticket *Ticket) {
	if s.producer == nil {
		return
	}
	notification := &notifications.TicketCreatedNotification{
		TicketID:   ticket.TicketID,
		TicketNo:   ticket.TicketNo,
		EventID:    ticket.EventID,
		BuyerEmail: ticket.BuyerEmail,
		Quantity:   ticket.Quantity,
	}
	if err := s.producer.PublishTicketCreated(ctx, notification); err != nil {
		logger.GetDefault().Warn("failed to publish ticket notification",
			slog.String("ticket_no", ticket.TicketNo),
			slog.Any("error", err),
		)
	}
}
