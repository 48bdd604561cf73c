package db_models

import "time"

const (
	TicketTypeFree = "free"
	TicketTypePaid = "paid"
)

type Event struct {
	ID               int64     `gorm:"primaryKey"`
	CategoryID       int64     `gorm:"not null;index"`
	Name             string    `gorm:"not null"`
	Location         string    `gorm:"not null"`
	DateTime         time.Time `gorm:"column:date_time;not null;index"`
	ShortDescription string    `gorm:"not null"`
	FullDescription  string
	Address          string
	MaxAttendees     *int
	TicketType       string  `gorm:"not null;default:free"`
	TicketPrice      float64 `gorm:"not null;default:0"`
	GoalAmount       float64 `gorm:"not null;default:0"`
	CurrentAmount    float64 `gorm:"not null;default:0"`
	IsActive         bool    `gorm:"not null;default:true"`

	Category Category `gorm:"foreignKey:CategoryID"`
}
