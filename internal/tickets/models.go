package tickets

import "time"

// Ticket is a purchase record against an event. Rows are created only through
// the create_ticket routine; ids and ticket numbers come from the store.
type Ticket struct {
	TicketID     int       `json:"TicketID" gorm:"column:ticket_id;primaryKey;autoIncrement"`
	TicketNo     string    `json:"TicketNo" gorm:"column:ticket_no;not null;size:64"`
	BuyerName    string    `json:"BuyerName" gorm:"column:buyer_name;not null;size:255"`
	BuyerEmail   string    `json:"BuyerEmail" gorm:"column:buyer_email;not null;size:255"`
	Quantity     int       `json:"Quantity" gorm:"column:quantity;not null;check:quantity > 0"`
	Price        float64   `json:"Price" gorm:"column:price;not null"`
	PurchaseDate time.Time `json:"PurchaseDate" gorm:"column:purchase_date;not null;index"`
	EventID      int       `json:"EventID" gorm:"column:event_id;not null;index"`
}

// TableName specifies the table name for GORM
func (Ticket) TableName() string {
	return "tickets"
}

type CreateTicketRequest struct {
	BuyerName  string `json:"buyerName" binding:"required"`
	BuyerEmail string `json:"buyerEmail" binding:"required"`
	Quantity   int    `json:"quantity"`
}

type CreateTicketResponse struct {
	Message string `json:"message"`
	Ticket  Ticket `json:"ticket"`
}
