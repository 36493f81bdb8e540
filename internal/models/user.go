package models

import "time"

// Fixed role names, seeded at migration time.
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

type Role struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Users []User `gorm:"foreignKey:RoleID" json:"-"`
}

type User struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	RoleID         uint    `gorm:"index;not null" json:"roleId"`
	Role           Role    `json:"role"`
	FirstName      string  `gorm:"not null" json:"firstName"`
	LastName       string  `gorm:"not null" json:"lastName"`
	SecondLastName *string `json:"secondLastName,omitempty"`
	NationalID     string  `gorm:"uniqueIndex;not null" json:"nationalId"`
	Email          string  `gorm:"uniqueIndex;not null" json:"email"`
	Address        string  `json:"address"`
	Password       string  `gorm:"not null" json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
