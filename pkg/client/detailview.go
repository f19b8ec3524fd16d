package client

import (
	"context"
	"sort"
	"strings"
	"sync"

	"ticketly/internal/events"
	"ticketly/internal/shared/apperrors"
	"ticketly/internal/tickets"
)

// DetailView is the detail page's view-model: one fetch on load, three states
// (loading, error, success), derived free seats and sibling events, and an
// optimistic local update after a successful purchase.
type DetailView struct {
	api     *Client
	eventID int

	mu        sync.Mutex
	loading   bool
	cancelled bool
	err       error
	bundle    *events.DetailBundle
}

func NewDetailView(api *Client, eventID int) *DetailView {
	return &DetailView{
		api:     api,
		eventID: eventID,
		loading: true,
	}
}

// Load fetches the bundle once. Cancellation is cooperative: a bundle that
// arrives after Cancel is discarded, not aborted in flight.
func (v *DetailView) Load(ctx context.Context) error {
	if v.eventID <= 0 {
		err := apperrors.NewValidation("invalid event id")
		v.commit(nil, err)
		return err
	}

	bundle, err := v.api.FetchEventByID(ctx, v.eventID)
	v.commit(bundle, err)
	return err
}

func (v *DetailView) commit(bundle *events.DetailBundle, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancelled {
		return
	}
	v.bundle = bundle
	v.err = err
	v.loading = false
}

// Cancel marks the view unmounted; a still-in-flight fetch will be discarded.
func (v *DetailView) Cancel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cancelled = true
}

func (v *DetailView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *DetailView) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

func (v *DetailView) Bundle() *events.DetailBundle {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.bundle
}

// FreeSeats derives the remaining capacity, clamped at zero so the UI never
// shows a negative count.
func (v *DetailView) FreeSeats() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.bundle == nil {
		return 0
	}
	free := v.bundle.Event.SeatsTotal - v.bundle.Stats.TicketsCount
	if free < 0 {
		return 0
	}
	return free
}

// CanPurchase reports whether the purchase form should be enabled. Advisory
// only: the store decides whether a purchase actually succeeds.
func (v *DetailView) CanPurchase() bool {
	return v.FreeSeats() > 0
}

// OtherOrganizerEvents returns the organizer's other events, current event
// excluded, sorted by date ascending.
func (v *DetailView) OtherOrganizerEvents() []events.OrganizerEvent {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.bundle == nil {
		return nil
	}

	others := make([]events.OrganizerEvent, 0, len(v.bundle.Stats.OrganizerEvents))
	for _, organizerEvent := range v.bundle.Stats.OrganizerEvents {
		if organizerEvent.EventID == v.bundle.Event.EventID {
			continue
		}
		others = append(others, organizerEvent)
	}

	sort.SliceStable(others, func(i, j int) bool {
		return others[i].EventDate.Before(others[j].EventDate)
	})
	return others
}

// SubmitPurchase validates the form, creates the ticket and applies the
// optimistic local update.
func (v *DetailView) SubmitPurchase(ctx context.Context, payload tickets.CreateTicketRequest) (*tickets.Ticket, error) {
	payload.BuyerName = strings.TrimSpace(payload.BuyerName)
	payload.BuyerEmail = strings.TrimSpace(payload.BuyerEmail)

	if payload.BuyerName == "" || payload.BuyerEmail == "" {
		return nil, apperrors.NewValidation("buyer name and email are required")
	}
	if payload.Quantity < 1 {
		return nil, apperrors.NewValidation("quantity must be at least 1")
	}

	ticket, err := v.api.CreateTicket(ctx, v.eventID, payload)
	if err != nil {
		return nil, err
	}

	v.ApplyTicket(*ticket)
	return ticket, nil
}

// ApplyTicket prepends the new ticket and bumps ticketsCount by its quantity.
// This is a client-only optimistic update, never re-synced against the store
// within the session.
func (v *DetailView) ApplyTicket(ticket tickets.Ticket) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.bundle == nil {
		return
	}
	v.bundle.Tickets = append([]tickets.Ticket{ticket}, v.bundle.Tickets...)
	v.bundle.Stats.TicketsCount += ticket.Quantity
}
