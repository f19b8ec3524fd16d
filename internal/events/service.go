package events

import (
	"context"

	"ticketly/internal/tickets"
)

type Service interface {
	// ListEvents returns every event summary, sorted by event date
	// ascending. No pagination, no server-side filtering.
	ListEvents(ctx context.Context) ([]EventSummary, error)
	// GetEventDetail assembles the detail bundle: the event joined with its
	// venue and organizer, its tickets (most recent purchase first), and the
	// store-computed stats.
	GetEventDetail(ctx context.Context, eventID int) (*DetailBundle, error)
}

type service struct {
	repo       Repository
	ticketRepo tickets.Repository
}

func NewService(repo Repository, ticketRepo tickets.Repository) Service {
	return &service{repo: repo, ticketRepo: ticketRepo}
}

func (s *service) ListEvents(ctx context.Context) ([]EventSummary, error) {
	summaries, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	if summaries == nil {
		summaries = []EventSummary{}
	}
	return summaries, nil
}

func (s *service) GetEventDetail(ctx context.Context, eventID int) (*DetailBundle, error) {
	// All follow-up reads reuse the ids resolved here.
	detail, err := s.repo.GetDetail(ctx, eventID)
	if err != nil {
		return nil, err
	}

	eventTickets, err := s.ticketRepo.ListByEvent(ctx, detail.EventID)
	if err != nil {
		return nil, err
	}
	if eventTickets == nil {
		eventTickets = []tickets.Ticket{}
	}

	ticketsCount, err := s.ticketRepo.SoldCount(ctx, detail.EventID)
	if err != nil {
		return nil, err
	}

	organizerEvents, err := s.repo.EventsByOrganizer(ctx, detail.OrganizerID)
	if err != nil {
		return nil, err
	}
	if organizerEvents == nil {
		organizerEvents = []OrganizerEvent{}
	}

	return &DetailBundle{
		Event:   *detail,
		Tickets: eventTickets,
		Stats: DetailStats{
			TicketsCount:    ticketsCount,
			OrganizerEvents: organizerEvents,
		},
	}, nil
}
