package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus holds the delivery flag for exactly one order. Estado is false
// while the order is pending and true once delivered. The row is created
// together with its order and is only ever mutated through the status
// workflow.
type OrderStatus struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Estado    bool      `gorm:"not null;default:false" json:"estado"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Order owns its items (cascade delete) and references its status, user and
// products without owning them. Total is fixed at creation time and always
// equals the sum of item price times quantity.
type Order struct {
	ID       uint            `gorm:"primaryKey" json:"id"`
	UserID   uint            `gorm:"index;not null" json:"userId"`
	User     User            `json:"user,omitempty"`
	Date     time.Time       `gorm:"index;not null" json:"date"`
	Total    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	StatusID uint            `gorm:"index;not null" json:"statusId"`
	Status   OrderStatus     `gorm:"foreignKey:StatusID" json:"status"`
	Items    []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}

// OrderItem carries a price snapshot: Price is copied from the product when
// the order is created and never recomputed, so later catalog price changes
// do not alter historical orders.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"index;not null" json:"orderId"`
	ProductID uint            `gorm:"index;not null" json:"productId"`
	Product   Product         `json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
}
