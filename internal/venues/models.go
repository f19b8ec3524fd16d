package venues

// Venue is referenced by events and never mutated through this API.
type Venue struct {
	VenueID  int     `json:"VenueID" gorm:"column:venue_id;primaryKey;autoIncrement"`
	Name     string  `json:"Name" gorm:"column:name;not null;size:255"`
	Address  *string `json:"Address" gorm:"column:address;size:500"`
	Capacity *int    `json:"Capacity" gorm:"column:capacity"`
}

// TableName specifies the table name for GORM
func (Venue) TableName() string {
	return "venues"
}
