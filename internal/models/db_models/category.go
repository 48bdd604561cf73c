package db_models

// Category is immutable reference data; every event belongs to exactly one.
type Category struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string

	Events []Event `gorm:"foreignKey:CategoryID"`
}
