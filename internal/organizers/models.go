package organizers

// Organizer is referenced by events and never mutated through this API.
type Organizer struct {
	OrganizerID int     `json:"OrganizerID" gorm:"column:organizer_id;primaryKey;autoIncrement"`
	Name        string  `json:"Name" gorm:"column:name;not null;size:255"`
	Email       *string `json:"Email" gorm:"column:email;size:255"`
	Phone       *string `json:"Phone" gorm:"column:phone;size:50"`
}

// TableName specifies the table name for GORM
func (Organizer) TableName() string {
	return "organizers"
}
