package models

import "time"

// Company is the salon's profile. The application keeps a single row.
type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	Logo      *string   `json:"logo,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}
