package notifications

import (
	"encoding/json"
	"time"
)

// TicketCreatedNotification is published after each successful purchase.
type TicketCreatedNotification struct {
	NotificationID string    `json:"notification_id"`
	TicketID       int       `json:"ticket_id"`
	TicketNo       string    `json:"ticket_no"`
	EventID        int       `json:"event_id"`
	BuyerEmail     string    `json:"buyer_email"`
	Quantity       int       `json:"quantity"`
	CreatedAt      time.Time `json:"created_at"`
}

func (n *TicketCreatedNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// GetPartitionKey routes all of a buyer's notifications to one partition.
func (n *TicketCreatedNotification) GetPartitionKey() string {
	return n.BuyerEmail
}
