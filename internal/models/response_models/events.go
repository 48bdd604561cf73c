package response_models

import "time"

// EventWithCategory is one joined listing row: every event column plus the
// name and description of its category.
type EventWithCategory struct {
	ID                  int64     `gorm:"column:id" json:"id"`
	CategoryID          int64     `gorm:"column:category_id" json:"category_id"`
	Name                string    `gorm:"column:name" json:"name"`
	Location            string    `gorm:"column:location" json:"location"`
	DateTime            time.Time `gorm:"column:date_time" json:"date_time"`
	ShortDescription    string    `gorm:"column:short_description" json:"short_description"`
	FullDescription     string    `gorm:"column:full_description" json:"full_description,omitempty"`
	Address             string    `gorm:"column:address" json:"address,omitempty"`
	MaxAttendees        *int      `gorm:"column:max_attendees" json:"max_attendees,omitempty"`
	TicketType          string    `gorm:"column:ticket_type" json:"ticket_type"`
	TicketPrice         float64   `gorm:"column:ticket_price" json:"ticket_price"`
	GoalAmount          float64   `gorm:"column:goal_amount" json:"goal_amount"`
	CurrentAmount       float64   `gorm:"column:current_amount" json:"current_amount"`
	IsActive            bool      `gorm:"column:is_active" json:"is_active"`
	CategoryName        string    `gorm:"column:category_name" json:"category_name"`
	CategoryDescription string    `gorm:"column:category_description" json:"category_description"`
}

// AppliedFilters echoes the raw filter values of a listing request back to
// the caller, absent ones included as empty strings.
type AppliedFilters struct {
	Category string `json:"category"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Active   string `json:"active"`
}
